// Package report renders tool execution results.
//
// Three writers implement the Writer interface:
//   - SimpleWriter: plain text for the terminal
//   - JSONWriter: structured JSON for other tools
//   - MarkdownWriter: a shareable document with tables and a mermaid chart
//
// Placeholder results (produced when the backend could not be reached) are
// labelled as such in every format.
package report
