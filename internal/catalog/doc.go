// Package catalog holds the static table of intelligence modules and their tools.
//
// The catalog is compiled into the binary and never changes during a session.
// Each tool belongs to exactly one module. Routing uses Lookup to check
// /module/{id} paths, and the mock server uses it to answer /api/modules.
package catalog
