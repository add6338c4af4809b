package sample

import (
	"math/rand/v2"
	"time"

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/model"
)

// Alerts returns the three fallback alerts.
func Alerts(now time.Time) []api.Alert {
	return []api.Alert{
		{
			ID:          "1",
			Title:       "Network Anomaly Detected",
			Severity:    model.SeverityHigh,
			Description: "Suspicious traffic patterns from Eastern Europe",
			Timestamp:   now.Add(-15 * time.Minute),
		},
		{
			ID:          "2",
			Title:       "New Dark Web Mention Found",
			Severity:    model.SeverityMedium,
			Description: "Target organization mentioned in underground forums",
			Timestamp:   now.Add(-45 * time.Minute),
		},
		{
			ID:          "3",
			Title:       "Social Media Profile Changes",
			Severity:    model.SeverityLow,
			Description: "Key person of interest updated LinkedIn profile",
			Timestamp:   now.Add(-120 * time.Minute),
		},
	}
}

// Activities returns the five fallback activity entries, newest first.
func Activities(now time.Time) []api.Activity {
	return []api.Activity{
		{ID: "1", Module: "OSINT", Target: "example.com", Status: model.StatusCompleted, Timestamp: now.Add(-30 * time.Minute)},
		{ID: "2", Module: "SOCMINT", Target: "@suspicious_account", Status: model.StatusInProgress, Timestamp: now.Add(-60 * time.Minute)},
		{ID: "3", Module: "Darknet", Target: "forum.onion", Status: model.StatusCompleted, Timestamp: now.Add(-90 * time.Minute)},
		{ID: "4", Module: "GEOINT", Target: "40.7128,-74.0060", Status: model.StatusFailed, Timestamp: now.Add(-120 * time.Minute)},
		{ID: "5", Module: "Network", Target: "192.168.1.0/24", Status: model.StatusInProgress, Timestamp: now.Add(-150 * time.Minute)},
	}
}

// ModuleStats returns a stat line per catalog module with a success rate
// in [0.70, 0.95), 50 to 499 runs and a last run within the past day.
func ModuleStats(now time.Time, r *rand.Rand) []api.ModuleStat {
	mods := catalog.All()
	stats := make([]api.ModuleStat, 0, len(mods))
	for _, m := range mods {
		last := now.Add(-time.Duration(r.Int64N(int64(24 * time.Hour))))
		stats = append(stats, api.ModuleStat{
			Module:      m.ShortName(),
			SuccessRate: 0.70 + r.Float64()*0.25,
			TotalRuns:   50 + r.IntN(450),
			LastRun:     &last,
		})
	}
	return stats
}

// Overview bundles the fallback dashboard data.
func Overview(now time.Time, r *rand.Rand) api.Overview {
	return api.Overview{
		Alerts:           Alerts(now),
		RecentActivities: Activities(now),
		ModuleStats:      ModuleStats(now, r),
	}
}

// Investigations returns the two fallback investigations.
func Investigations(now time.Time) []api.Investigation {
	return []api.Investigation{
		{
			ID:        "1",
			Module:    "OSINT",
			Target:    "example.com",
			Status:    model.StatusCompleted,
			CreatedAt: now.Add(-2 * time.Hour),
			UpdatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        "2",
			Module:    "SOCMINT",
			Target:    "@username",
			Status:    model.StatusInProgress,
			CreatedAt: now.Add(-45 * time.Minute),
			UpdatedAt: now.Add(-5 * time.Minute),
		},
	}
}

// Notifications returns the two fallback notifications, both unread.
func Notifications(now time.Time) []api.Notification {
	return []api.Notification{
		{
			ID:        "1",
			Title:     "Investigation Complete",
			Message:   "Your OSINT investigation on example.com has finished",
			Type:      model.NotificationSuccess,
			Timestamp: now.Add(-15 * time.Minute),
		},
		{
			ID:        "2",
			Title:     "New Threat Alert",
			Message:   "Suspicious activity detected in dark web monitoring",
			Type:      model.NotificationWarning,
			Timestamp: now.Add(-time.Hour),
		},
	}
}

// Profile returns the fallback analyst profile.
func Profile(now time.Time) api.Profile {
	return api.Profile{
		ID:                  "1",
		Username:            "analyst_001",
		Email:               "analyst@osintnexus.com",
		Avatar:              "https://i.pravatar.cc/150?img=1",
		CreatedAt:           now.AddDate(0, 0, -30),
		InvestigationsCount: 47,
		SuccessRate:         0.92,
	}
}

// Widget is a home screen panel that can be switched on or off.
type Widget struct {
	Name        string
	Description string
	Enabled     bool
}

// Widgets returns the configurable widgets with their initial state.
func Widgets() []Widget {
	return []Widget{
		{Name: "Threat Summary Widget", Description: "Display real-time threat alerts on your home screen", Enabled: true},
		{Name: "Investigation Status", Description: "Quick view of active investigations", Enabled: true},
	}
}
