// Package sample holds the demo data of OSINT Nexus.
//
// There are two kinds of data here. The canned sets (Alerts, Activities,
// Investigations, Notifications, Profile) are what the dashboard shows when
// the backend cannot be reached. The Random* generators produce the
// shuffled values the mock server returns. Every function takes the current
// time, and the random ones take a *rand.Rand, so tests can pin both.
package sample
