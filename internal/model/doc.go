// Package model defines the small enumerations shared by the API client,
// the mock server and the dashboard.
//
// The types here are deliberately thin: alert severity, activity status,
// tool maturity and notification kind. Each one marshals to the lowercase
// string used on the wire so that payloads produced by the mock server and
// payloads consumed by the client stay interchangeable.
package model
