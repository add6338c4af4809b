package prefs

import (
	"fmt"
	"strings"
)

// ThemeMode selects the light or dark palette.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseTheme validates a theme string.
func ParseTheme(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggle returns the opposite mode.
func (t ThemeMode) Toggle() ThemeMode {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ColorScheme is a named accent color.
type ColorScheme struct {
	Name    string
	Primary string
}

// ColorSchemes lists the selectable accent colors.
var ColorSchemes = []ColorScheme{
	{Name: "Pixel Purple", Primary: "#6750A4"},
	{Name: "Pixel Blue", Primary: "#1976D2"},
	{Name: "Pixel Red", Primary: "#D32F2F"},
	{Name: "Pixel Green", Primary: "#388E3C"},
	{Name: "Pixel Orange", Primary: "#F57C00"},
	{Name: "Pixel Deep Purple", Primary: "#7B1FA2"},
}

// LookupColorScheme finds a scheme by name, ignoring case.
func LookupColorScheme(name string) (ColorScheme, bool) {
	for _, cs := range ColorSchemes {
		if strings.EqualFold(cs.Name, strings.TrimSpace(name)) {
			return cs, true
		}
	}
	return ColorScheme{}, false
}

// NextColorScheme returns the scheme after name in ColorSchemes, wrapping around.
// An unknown name yields the first scheme.
func NextColorScheme(name string) ColorScheme {
	for i, cs := range ColorSchemes {
		if cs.Name == name {
			return ColorSchemes[(i+1)%len(ColorSchemes)]
		}
	}
	return ColorSchemes[0]
}

// Preferences is the persisted application state.
type Preferences struct {
	// OnboardingComplete gates every later start: once true the onboarding
	// flow is skipped for good.
	OnboardingComplete bool `yaml:"onboarding-complete"`

	Theme ThemeMode `yaml:"theme,omitempty"`

	// ColorScheme is the name of an entry in ColorSchemes.
	ColorScheme string `yaml:"color-scheme,omitempty"`
}

// Scheme resolves the preference's color scheme, defaulting to the first one.
func (p Preferences) Scheme() ColorScheme {
	if cs, ok := LookupColorScheme(p.ColorScheme); ok {
		return cs
	}
	return ColorSchemes[0]
}
