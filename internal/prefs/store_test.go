package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// newTestStore returns a store with deterministic defaults: dark background
// and the third color scheme.
func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	return NewStore(path,
		WithDarkBackground(func() bool { return true }),
		WithPicker(func(int) int { return 2 }),
	)
}

// TestStoreLoadDefaults tests that a missing file yields defaults without error.
func TestStoreLoadDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.yaml")
	s := newTestStore(t, path)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Preferences{Theme: ThemeDark, ColorScheme: "Pixel Red"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Load must not create the preferences file")
	}

	light := NewStore(path, WithDarkBackground(func() bool { return false }), WithPicker(func(int) int { return 0 }))
	got, _ = light.Load()
	if got.Theme != ThemeLight {
		t.Errorf("expected light theme on light background, got %q", got.Theme)
	}
}

// TestStoreRoundTrip tests that saved preferences are loaded back.
func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	s := newTestStore(t, path)
	if _, err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := s.SetTheme(ThemeLight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := s.SetColorScheme("pixel green"); err != nil {
		t.Fatalf("SetColorScheme: %v", err)
	}
	if err := s.MarkOnboardingComplete(); err != nil {
		t.Fatalf("MarkOnboardingComplete: %v", err)
	}

	reloaded := NewStore(path,
		WithDarkBackground(func() bool { return true }),
		WithPicker(func(int) int { return 5 }),
	)
	got, err := reloaded.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := Preferences{OnboardingComplete: true, Theme: ThemeLight, ColorScheme: "Pixel Green"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if !reloaded.OnboardingComplete() {
		t.Error("expected OnboardingComplete() to be true")
	}

	data, err := os.ReadFile(path) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, key := range []string{"onboarding-complete:", "theme:", "color-scheme:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected key %q in file:\n%s", key, data)
		}
	}
}

// TestStoreToggleTheme tests toggling between light and dark.
func TestStoreToggleTheme(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, filepath.Join(t.TempDir(), "preferences.yaml"))
	if _, err := s.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	mode, err := s.ToggleTheme()
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if mode != ThemeLight {
		t.Errorf("expected light after toggling dark, got %q", mode)
	}
	mode, _ = s.ToggleTheme()
	if mode != ThemeDark {
		t.Errorf("expected dark after second toggle, got %q", mode)
	}
}

// TestStoreRejectsInvalidValues tests sentinel errors for bad input.
func TestStoreRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, filepath.Join(t.TempDir(), "preferences.yaml"))

	if err := s.SetColorScheme("Neon Pink"); !errors.Is(err, ErrUnknownColorScheme) {
		t.Errorf("expected ErrUnknownColorScheme, got %v", err)
	}
	if err := s.SetTheme(ThemeMode("sepia")); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}
}

// TestStoreLoadSanitizes tests that unknown values in the file fall back to defaults.
func TestStoreLoadSanitizes(t *testing.T) {
	t.Parallel()

	t.Run("unknown theme and scheme", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "preferences.yaml")
		content := "onboarding-complete: true\ntheme: sepia\ncolor-scheme: Neon Pink\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := newTestStore(t, path).Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Preferences{OnboardingComplete: true, Theme: ThemeDark, ColorScheme: "Pixel Red"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "preferences.yaml")
		if err := os.WriteFile(path, []byte("theme: [dark"), 0600); err != nil {
			t.Fatalf("write: %v", err)
		}

		got, err := newTestStore(t, path).Load()
		if err == nil {
			t.Fatal("expected parse error")
		}
		if got.OnboardingComplete || got.Theme != ThemeDark {
			t.Errorf("expected defaults alongside the error, got %+v", got)
		}
	})
}

// TestColorSchemes tests the scheme helpers.
func TestColorSchemes(t *testing.T) {
	t.Parallel()

	if len(ColorSchemes) != 6 {
		t.Fatalf("expected 6 color schemes, got %d", len(ColorSchemes))
	}
	if got := NextColorScheme("Pixel Deep Purple"); got.Name != "Pixel Purple" {
		t.Errorf("expected wrap-around to Pixel Purple, got %q", got.Name)
	}
	if got := NextColorScheme("Pixel Purple"); got.Name != "Pixel Blue" {
		t.Errorf("expected Pixel Blue, got %q", got.Name)
	}
	if got := (Preferences{ColorScheme: "bogus"}).Scheme(); got.Primary != "#6750A4" {
		t.Errorf("expected fallback primary #6750A4, got %q", got.Primary)
	}
	if _, err := ParseTheme("DARK"); err != nil {
		t.Errorf("ParseTheme should ignore case: %v", err)
	}
}
