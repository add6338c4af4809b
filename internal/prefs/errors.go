package prefs

import "errors"

var (
	// ErrUnknownColorScheme is returned by SetColorScheme for names outside ColorSchemes.
	ErrUnknownColorScheme = errors.New("unknown color scheme")

	// ErrInvalidTheme is returned by SetTheme and ParseTheme for values other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme: must be light or dark")
)
