package model

import "strings"

// Severity ranks a dashboard alert.
// The zero value is SeverityUnknown so that payloads with an unexpected
// severity string still decode instead of failing the whole overview.
type Severity int

const (
	// SeverityUnknown is used for severities the client does not recognize.
	SeverityUnknown Severity = iota

	// SeverityLow marks informational alerts such as profile changes.
	SeverityLow

	// SeverityMedium marks alerts that deserve a look, e.g. a new dark web mention.
	SeverityMedium

	// SeverityHigh marks alerts that need immediate attention.
	SeverityHigh
)

// String returns the wire representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a wire string into a Severity.
// Matching is case-insensitive; anything unrecognized yields SeverityUnknown.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow
	case "medium":
		return SeverityMedium
	case "high":
		return SeverityHigh
	default:
		return SeverityUnknown
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It never fails; unknown strings decode to SeverityUnknown.
func (s *Severity) UnmarshalText(text []byte) error {
	*s = ParseSeverity(string(text))
	return nil
}
