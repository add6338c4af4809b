// Package prefs persists the user's display preferences and onboarding state.
//
// Preferences live in a small YAML file under the XDG config directory with
// three keys: onboarding-complete, theme and color-scheme. The file has no
// version field and no migrations; unknown or missing values fall back to
// defaults. A Store is loaded once at startup, handed to whoever needs it and
// saved whenever a value changes.
package prefs
