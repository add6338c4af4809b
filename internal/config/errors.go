package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers match them with errors.Is.
var (
	// ErrInvalidBackendURL is returned when the backend base URL is not an
	// absolute http or https URL.
	ErrInvalidBackendURL = errors.New("invalid backend URL: expected http(s)://host[:port]")

	// ErrInvalidTimeout is returned when the request timeout is negative.
	// Zero is valid and means requests never time out.
	ErrInvalidTimeout = errors.New("invalid timeout: must be non-negative")

	// ErrInvalidLatencyScale is returned when the mock server latency scale is negative.
	ErrInvalidLatencyScale = errors.New("invalid latency scale: must be non-negative")

	// ErrInvalidConcurrency is returned when the batch concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown are set.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingTransport is returned when both an explicit proxy and the
	// embedded Tor daemon are requested.
	ErrConflictingTransport = errors.New("conflicting transport: --proxy and --tor cannot be used together")
)
