package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/prefs"
)

// NewPrefsCmd creates the prefs command and its subcommands.
func NewPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change dashboard preferences",
		Long: `Prefs reads and writes the dashboard preferences file.

A running dashboard picks up changes made here immediately.

Examples:
  # Show the current preferences
  osintnexus prefs

  # Switch to the light theme
  osintnexus prefs theme light

  # Flip between light and dark
  osintnexus prefs theme toggle

  # Pick an accent color
  osintnexus prefs color "Pixel Green"`,
		Args: cobra.NoArgs,
		RunE: runPrefsShowCmd,
	}

	cmd.PersistentFlags().String("prefs", "", "Preferences file (default: XDG config directory)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "theme <light|dark|toggle>",
		Short:     "Set the color theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE:      runPrefsThemeCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "color [scheme]",
		Short: "Set the accent color scheme, or list the schemes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPrefsColorCmd,
	})

	return cmd
}

// openPrefs loads the preferences file selected by the configuration and
// the --prefs flag.
func openPrefs(cmd *cobra.Command) (*prefs.Store, error) {
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	if err := overrideString(cmd, &cfg.PrefsPath, "prefs"); err != nil {
		return nil, err
	}
	store := prefs.NewStore(cfg.PrefsPath)
	if _, err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func runPrefsShowCmd(cmd *cobra.Command, _ []string) error {
	store, err := openPrefs(cmd)
	if err != nil {
		return err
	}
	p := store.Current()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:         %s\n", store.Path())
	fmt.Fprintf(out, "Theme:        %s\n", p.Theme)
	fmt.Fprintf(out, "Color scheme: %s (%s)\n", p.ColorScheme, p.Scheme().Primary)
	fmt.Fprintf(out, "Onboarded:    %t\n", p.OnboardingComplete)
	return nil
}

func runPrefsThemeCmd(cmd *cobra.Command, args []string) error {
	store, err := openPrefs(cmd)
	if err != nil {
		return err
	}

	var mode prefs.ThemeMode
	if strings.EqualFold(strings.TrimSpace(args[0]), "toggle") {
		if mode, err = store.ToggleTheme(); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	} else {
		if mode, err = prefs.ParseTheme(args[0]); err != nil {
			return err
		}
		if err := store.SetTheme(mode); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
	return nil
}

func runPrefsColorCmd(cmd *cobra.Command, args []string) error {
	store, err := openPrefs(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		current := store.Current().ColorScheme
		for _, s := range prefs.ColorSchemes {
			marker := " "
			if s.Name == current {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-18s %s\n", marker, s.Name, s.Primary)
		}
		return nil
	}

	if err := store.SetColorScheme(args[0]); err != nil {
		if errors.Is(err, prefs.ErrUnknownColorScheme) {
			return fmt.Errorf("%w (run 'osintnexus prefs color' to list them)", err)
		}
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	fmt.Fprintf(out, "Color scheme set to %s\n", store.Current().ColorScheme)
	return nil
}
