package api

import (
	"time"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/model"
)

// Health is the response of GET /api/health.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Alert is a threat alert shown on the dashboard.
type Alert struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Severity    model.Severity `json:"severity"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID        string               `json:"id"`
	Module    string               `json:"module"`
	Target    string               `json:"target"`
	Status    model.ActivityStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
}

// ModuleStat summarizes how a module has been performing.
type ModuleStat struct {
	Module      string     `json:"module"`
	SuccessRate float64    `json:"success_rate"`
	TotalRuns   int        `json:"total_runs"`
	LastRun     *time.Time `json:"last_run,omitempty"`
}

// Overview is the response of GET /api/dashboard/overview.
type Overview struct {
	Alerts           []Alert      `json:"alerts"`
	RecentActivities []Activity   `json:"recent_activities"`
	ModuleStats      []ModuleStat `json:"module_stats"`
}

// ModuleList is the response of GET /api/modules.
type ModuleList struct {
	Modules []catalog.Module `json:"modules"`
}

// Investigation is a tracked tool run.
type Investigation struct {
	ID        string               `json:"id"`
	Module    string               `json:"module"`
	Target    string               `json:"target"`
	Tool      string               `json:"tool,omitempty"`
	Status    model.ActivityStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// InvestigationList is the response of GET /api/investigations.
type InvestigationList struct {
	Investigations []Investigation `json:"investigations"`
}

// Notification is a message for the analyst.
type Notification struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      model.NotificationKind `json:"type"`
	Read      bool                   `json:"read"`
	Timestamp time.Time              `json:"timestamp"`
}

// NotificationList is the response of GET /api/notifications.
type NotificationList struct {
	Notifications []Notification `json:"notifications"`
}

// Profile is the analyst account shown on the profile page.
type Profile struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	Avatar              string    `json:"avatar"`
	CreatedAt           time.Time `json:"created_at"`
	InvestigationsCount int       `json:"investigations_count"`
	SuccessRate         float64   `json:"success_rate"`
}

// ExecuteRequest is the body of POST /api/modules/{id}/execute.
type ExecuteRequest struct {
	Tool   string `json:"tool"`
	Target string `json:"target"`
}

// ExecuteResponse is the reply of POST /api/modules/{id}/execute.
// Results holds the module specific payload as decoded JSON.
type ExecuteResponse struct {
	Status     string         `json:"status"`
	TargetType string         `json:"target_type,omitempty"`
	Results    map[string]any `json:"results"`
}
