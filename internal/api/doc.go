// Package api is the HTTP client for the OSINT Nexus backend.
//
// The backend exposes a handful of read-only JSON endpoints for the
// dashboard pages and one POST endpoint that runs a module tool. The client
// returns typed values and wrapped errors; deciding what to show when a
// call fails is left to the caller (see package feed and package execution).
//
// Requests can be routed through a SOCKS5 proxy by passing the transport
// of a tor.Dialer with WithTransport.
package api
