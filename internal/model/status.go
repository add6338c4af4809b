package model

// ActivityStatus is the lifecycle state of an investigation or activity.
type ActivityStatus string

const (
	// StatusCompleted means the run finished.
	StatusCompleted ActivityStatus = "completed"
	// StatusInProgress means the run is still going.
	StatusInProgress ActivityStatus = "in-progress"
	// StatusFailed means the run stopped with an error.
	StatusFailed ActivityStatus = "failed"
)

// Valid reports whether s is one of the known activity statuses.
func (s ActivityStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusFailed:
		return true
	default:
		return false
	}
}

// ToolStatus is the maturity of a catalog tool.
type ToolStatus string

const (
	// ToolActive marks a tool that is generally available.
	ToolActive ToolStatus = "active"
	// ToolBeta marks a tool that is still experimental.
	ToolBeta ToolStatus = "beta"
)

// NotificationKind classifies a notification for display.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationInfo    NotificationKind = "info"
	NotificationError   NotificationKind = "error"
)
