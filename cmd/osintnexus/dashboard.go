package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/feed"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/nav"
	"github.com/nao1215/osintnexus/internal/prefs"
	"github.com/nao1215/osintnexus/internal/tui"
)

// NewDashboardCmd creates the dashboard command.
func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the intelligence dashboard",
		Long: `Dashboard opens the full-screen terminal UI.

On first start an onboarding carousel and a simulated biometric check are
shown. Afterwards the dashboard opens on the requested route.

Routes:
  /dashboard, /investigations, /widgets, /notifications, /profile,
  /module/{id} (see 'osintnexus modules' for ids)

Logs are written to a file because the terminal is taken by the UI.

Examples:
  # Open the dashboard against the default backend
  osintnexus dashboard

  # Jump straight to the darknet module
  osintnexus dashboard --route /module/darknet

  # Use a remote backend through Tor
  osintnexus dashboard --backend http://example.onion --tor`,
		Args: cobra.NoArgs,
		RunE: runDashboardCmd,
	}

	cmd.Flags().StringP("route", "r", nav.PathRoot, "Initial route")
	cmd.Flags().String("prefs", "", "Preferences file (default: XDG config directory)")
	cmd.Flags().String("report-dir", "", "Directory for exported reports (default: XDG data directory)")
	cmd.Flags().String("log-file", "", "Log file (default: XDG state directory)")

	return cmd
}

// runDashboardCmd executes the dashboard command.
func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, &cfg.PrefsPath, "prefs"); err != nil {
		return err
	}
	if err := overrideString(cmd, &cfg.ReportDir, "report-dir"); err != nil {
		return err
	}
	if err := overrideString(cmd, &cfg.LogFile, "log-file"); err != nil {
		return err
	}
	if err := validate(cfg); err != nil {
		return err
	}
	route, err := cmd.Flags().GetString("route")
	if err != nil {
		return err
	}

	logger, closer, err := applog.OpenFileLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := prefs.NewStore(cfg.PrefsPath)
	if _, err := store.Load(); err != nil {
		logger.Warn("using default preferences", "path", cfg.PrefsPath, "error", err)
	}

	var changes <-chan struct{}
	if watcher, err := prefs.NewWatcher(cfg.PrefsPath); err != nil {
		logger.Warn("preferences will not be reloaded on change", "error", err)
	} else {
		defer watcher.Close()
		changes = watcher.Changes()
	}

	client, err := newBackendClient(ctx, cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("starting dashboard", "route", route, "backend", client.BaseURL())
	if err := tui.Run(tui.Config{
		Context:      ctx,
		Store:        store,
		Feed:         feed.New(client, feed.WithLogger(logger)),
		Executor:     client,
		Logger:       logger,
		ReportDir:    cfg.ReportDir,
		Route:        route,
		PrefsChanges: changes,
	}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logs: "+cfg.LogFile)
	return nil
}

// overrideString overrides *dst with the named flag when it is set.
func overrideString(cmd *cobra.Command, dst *string, name string) error {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return err
	}
	if v != "" {
		*dst = v
	}
	return nil
}
