package feed

import (
	"strings"

	"github.com/nao1215/osintnexus/internal/api"
)

// FilterInvestigations keeps the investigations whose target or module
// contains query, ignoring case. A blank query keeps everything.
func FilterInvestigations(list []api.Investigation, query string) []api.Investigation {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	var out []api.Investigation
	for _, inv := range list {
		if strings.Contains(strings.ToLower(inv.Target), q) ||
			strings.Contains(strings.ToLower(inv.Module), q) {
			out = append(out, inv)
		}
	}
	return out
}

// MarkRead marks the notification with id as read in place and reports
// whether it was found.
func MarkRead(list []api.Notification, id string) bool {
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead marks every notification as read in place.
func MarkAllRead(list []api.Notification) {
	for i := range list {
		list[i].Read = true
	}
}

// UnreadCount returns the number of unread notifications.
func UnreadCount(list []api.Notification) int {
	n := 0
	for _, item := range list {
		if !item.Read {
			n++
		}
	}
	return n
}
