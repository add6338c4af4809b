package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/osintnexus/internal/prefs"
)

// TestPrefsCmd tests changing preferences from the command line.
func TestPrefsCmd(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "{}\n")
	prefsPath := filepath.Join(t.TempDir(), "preferences.yaml")
	run := func(args ...string) (string, error) {
		t.Helper()
		full := append(append([]string{"prefs"}, args...), "--config", cfgPath, "--prefs", prefsPath)
		out, _, err := executeCommand(t, full...)
		return out, err
	}

	if _, err := run("theme", "light"); err != nil {
		t.Fatalf("theme light: %v", err)
	}
	out, err := run("theme", "toggle")
	if err != nil {
		t.Fatalf("theme toggle: %v", err)
	}
	if !strings.Contains(out, "Theme set to dark") {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := run("color", "pixel green"); err != nil {
		t.Fatalf("color: %v", err)
	}

	store := prefs.NewStore(prefsPath)
	p, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Theme != prefs.ThemeDark || p.ColorScheme != "Pixel Green" {
		t.Errorf("saved preferences = %+v", p)
	}

	out, err = run()
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Theme:        dark", "Pixel Green", "Onboarded:    false"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	out, err = run("color")
	if err != nil {
		t.Fatalf("color list: %v", err)
	}
	if !strings.Contains(out, "* Pixel Green") || strings.Count(out, "\n") != len(prefs.ColorSchemes) {
		t.Errorf("unexpected scheme list:\n%s", out)
	}
}

// TestPrefsCmdErrors tests invalid preference values.
func TestPrefsCmdErrors(t *testing.T) {
	t.Parallel()

	cfgPath := writeConfig(t, "{}\n")
	prefsPath := filepath.Join(t.TempDir(), "preferences.yaml")

	_, _, err := executeCommand(t, "prefs", "theme", "sepia", "--config", cfgPath, "--prefs", prefsPath)
	if !errors.Is(err, prefs.ErrInvalidTheme) {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}

	_, _, err = executeCommand(t, "prefs", "color", "Neon", "--config", cfgPath, "--prefs", prefsPath)
	if !errors.Is(err, prefs.ErrUnknownColorScheme) {
		t.Errorf("expected ErrUnknownColorScheme, got %v", err)
	}
}
