package sample

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders the age of t as "Nm ago" below one hour and as
// "Nh ago" otherwise. Times in the future count as "0m ago".
func FormatTimeAgo(now, t time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	}
	return fmt.Sprintf("%dh ago", int(d/time.Hour))
}
