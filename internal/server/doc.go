// Package server implements the mock OSINT Nexus backend.
//
// It serves the HTTP API the dashboard consumes: random dashboard
// overviews, the module catalog, canned tool results behind a simulated
// latency, and a short list of investigations, notifications and the
// analyst profile. Tool runs can be recorded in an investigation store so
// that they show up on the investigations page.
package server
