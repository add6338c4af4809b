package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/model"
)

var alertTitles = []string{
	"Suspicious Domain Activity Detected",
	"New Dark Web Mention Found",
	"Social Media Profile Changes",
	"Network Anomaly Detected",
	"Cryptocurrency Transaction Alert",
	"Geolocation Data Breach",
	"Email Exposure in Data Leak",
}

var severities = []model.Severity{model.SeverityHigh, model.SeverityMedium, model.SeverityLow}

var activityModules = []string{"OSINT", "GEOINT", "SOCMINT", "HUMINT", "SIGINT", "Darknet", "Crypto", "Network"}

var activityStatuses = []model.ActivityStatus{model.StatusCompleted, model.StatusInProgress, model.StatusFailed}

// pick returns a random element of s.
func pick[T any](r *rand.Rand, s []T) T {
	return s[r.IntN(len(s))]
}

// between returns a random integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// RandomAlerts returns three alerts raised 5 to 120 minutes ago.
func RandomAlerts(now time.Time, r *rand.Rand, newID func() string) []api.Alert {
	alerts := make([]api.Alert, 0, 3)
	for range 3 {
		alerts = append(alerts, api.Alert{
			ID:          newID(),
			Title:       pick(r, alertTitles),
			Severity:    pick(r, severities),
			Description: "Alert description for " + strings.ToLower(pick(r, alertTitles)),
			Timestamp:   now.Add(-time.Duration(between(r, 5, 120)) * time.Minute),
		})
	}
	return alerts
}

// RandomActivities returns five activities from the last hour.
func RandomActivities(now time.Time, r *rand.Rand, newID func() string) []api.Activity {
	acts := make([]api.Activity, 0, 5)
	for range 5 {
		acts = append(acts, api.Activity{
			ID:        newID(),
			Module:    pick(r, activityModules),
			Target:    fmt.Sprintf("target_%d", between(r, 100, 999)),
			Status:    pick(r, activityStatuses),
			Timestamp: now.Add(-time.Duration(between(r, 1, 60)) * time.Minute),
		})
	}
	return acts
}

// RandomModuleStats returns stats for every catalog module with a last run
// 1 to 1440 minutes ago.
func RandomModuleStats(now time.Time, r *rand.Rand) []api.ModuleStat {
	stats := ModuleStats(now, r)
	for i := range stats {
		last := now.Add(-time.Duration(between(r, 1, 1440)) * time.Minute)
		stats[i].LastRun = &last
		stats[i].TotalRuns = between(r, 50, 500)
	}
	return stats
}

// RandomOverview bundles the generators into one dashboard overview.
func RandomOverview(now time.Time, r *rand.Rand, newID func() string) api.Overview {
	return api.Overview{
		Alerts:           RandomAlerts(now, r, newID),
		RecentActivities: RandomActivities(now, r, newID),
		ModuleStats:      RandomModuleStats(now, r),
	}
}
