// Package execution runs module tools against a target.
//
// A Session models the tool modal of the dashboard: it is opened for one
// tool, takes a free text target, issues at most one request at a time and
// forgets everything when it is closed. When the backend call fails for any
// reason, the session does not surface the error. It logs a warning and
// fabricates a placeholder result instead, marked with Placeholder so that
// screens and reports can label it.
//
// RunBatch applies the same behavior to many targets at once for the
// command line.
package execution
