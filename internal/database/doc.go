// Package database provides SQLite-based storage for OSINT Nexus.
//
// The mock backend records every tool execution here so that the
// investigations page shows real history instead of the canned list once
// something has been run. The store is a single file opened through
// modernc.org/sqlite, which keeps the binary CGO-free.
package database
