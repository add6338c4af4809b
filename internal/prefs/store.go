package prefs

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Store loads and saves Preferences at a fixed path.
// A Store is not safe for concurrent use; the dashboard only touches it from
// its update loop.
type Store struct {
	path  string
	prefs Preferences

	darkBackground func() bool
	pick           func(n int) int
}

// Option configures a Store.
type Option func(*Store)

// WithDarkBackground overrides terminal background detection, used to pick
// the theme when none is saved.
func WithDarkBackground(f func() bool) Option {
	return func(s *Store) {
		s.darkBackground = f
	}
}

// WithPicker overrides the random choice of the initial color scheme.
// f receives the number of schemes and returns an index.
func WithPicker(f func(n int) int) Option {
	return func(s *Store) {
		s.pick = f
	}
}

// NewStore creates a Store for path. Call Load before reading values.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:           path,
		darkBackground: lipgloss.HasDarkBackground,
		pick:           rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.prefs = s.defaults()
	return s
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) defaults() Preferences {
	theme := ThemeLight
	if s.darkBackground() {
		theme = ThemeDark
	}
	return Preferences{
		Theme:       theme,
		ColorScheme: ColorSchemes[s.pick(len(ColorSchemes))].Name,
	}
}

// Load reads the preferences file. A missing file is not an error: the
// defaults are used and nothing is written until the first change.
// A malformed file returns the defaults together with the parse error.
func (s *Store) Load() (Preferences, error) {
	def := s.defaults()
	s.prefs = def

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.prefs, nil
		}
		return s.prefs, fmt.Errorf("failed to read preferences: %w", err)
	}

	var loaded Preferences
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return s.prefs, fmt.Errorf("failed to parse preferences %s: %w", s.path, err)
	}

	if _, err := ParseTheme(string(loaded.Theme)); err != nil {
		loaded.Theme = def.Theme
	}
	if _, ok := LookupColorScheme(loaded.ColorScheme); !ok {
		loaded.ColorScheme = def.ColorScheme
	}
	s.prefs = loaded
	return s.prefs, nil
}

// Current returns the in-memory preferences.
func (s *Store) Current() Preferences {
	return s.prefs
}

// Save writes the preferences atomically (temp file, then rename).
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary preferences file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}

// SetTheme changes and saves the theme.
func (s *Store) SetTheme(mode ThemeMode) error {
	if _, err := ParseTheme(string(mode)); err != nil {
		return err
	}
	s.prefs.Theme = mode
	return s.Save()
}

// ToggleTheme flips between light and dark and saves.
func (s *Store) ToggleTheme() (ThemeMode, error) {
	next := s.prefs.Theme.Toggle()
	s.prefs.Theme = next
	return next, s.Save()
}

// SetColorScheme changes and saves the accent color scheme.
func (s *Store) SetColorScheme(name string) error {
	cs, ok := LookupColorScheme(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColorScheme, name)
	}
	s.prefs.ColorScheme = cs.Name
	return s.Save()
}

// MarkOnboardingComplete records that onboarding finished and saves
// immediately. The flag is never cleared by the application.
func (s *Store) MarkOnboardingComplete() error {
	s.prefs.OnboardingComplete = true
	return s.Save()
}

// OnboardingComplete reports the persisted onboarding flag.
func (s *Store) OnboardingComplete() bool {
	return s.prefs.OnboardingComplete
}
