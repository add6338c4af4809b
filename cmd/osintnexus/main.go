// Package main provides the entry point for the OSINT Nexus CLI.
//
// OSINT Nexus is a mock intelligence dashboard. It runs as a full-screen
// terminal UI backed by an HTTP API, and ships a mock backend that answers
// that API with canned data.
//
// Usage:
//
//	osintnexus serve
//	osintnexus dashboard
//	osintnexus exec osint theHarvester example.com
//
// See --help for all available options.
package main

func main() {
	Execute()
}
