package api

import "errors"

var (
	// ErrInvalidBaseURL is returned when the backend URL is not absolute http(s).
	ErrInvalidBaseURL = errors.New("backend URL must be an absolute http or https URL")

	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrMissingResults is returned when an execute response has no results object.
	ErrMissingResults = errors.New("execute response has no results")
)
