// Package target guesses what kind of thing an investigation target is.
//
// Targets stay free text everywhere in the application. Classify is only a
// hint: the dashboard shows it under the input field, and the mock server
// echoes it back as target_type.
package target
