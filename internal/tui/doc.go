// Package tui renders the OSINT Nexus dashboard in the terminal.
//
// The Model is a single bubbletea program. Pages are picked by nav.Resolve,
// page data comes from a feed.Feed and tool runs go through an
// execution.Session. Anything that blocks (backend calls, the simulated
// biometric delay, report export) runs as a tea.Cmd and reports back with a
// message, so the update loop never waits.
package tui
