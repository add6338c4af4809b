// Package feed loads the data behind the dashboard pages.
//
// Every page asks the backend first and falls back to the canned data of
// package sample on any failure. The failure is logged at Warn level and
// the returned Result is marked as Fallback, so a screen can say that it
// shows demo data. The user never sees an error from a page load.
package feed
