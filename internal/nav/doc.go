// Package nav maps dashboard paths to pages.
//
// Paths use the familiar web form (/dashboard, /module/osint) so that deep
// links given on the command line read naturally. Resolve applies the two
// guards of the shell: an unfinished onboarding captures every path, and an
// unknown module id falls back to the dashboard.
package nav
