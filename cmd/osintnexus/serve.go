package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/config"
	"github.com/nao1215/osintnexus/internal/database"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mock intelligence backend",
		Long: `Serve starts the mock HTTP backend used by the dashboard.

Every endpoint returns canned or randomized data. Tool executions wait for a
per-module delay (scaled by --latency-scale) and are recorded in a SQLite
database, from which /api/investigations is answered.

Endpoints:
  GET  /api/health
  GET  /api/dashboard/overview
  GET  /api/modules
  POST /api/modules/{moduleId}/execute
  GET  /api/investigations
  GET  /api/notifications
  GET  /api/profile

Examples:
  # Listen on the default address
  osintnexus serve

  # Answer immediately and keep nothing on disk
  osintnexus serve --latency-scale 0 --no-db`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", config.DefaultListenAddress, "Listen address")
	cmd.Flags().Float64("latency-scale", config.DefaultLatencyScale,
		"Multiplier for the simulated execution latency (0 disables it)")
	cmd.Flags().String("db-dir", "", "Investigation database directory (default: XDG data directory)")
	cmd.Flags().Bool("no-db", false, "Do not record executions")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("listen") {
		if cfg.ListenAddress, err = flags.GetString("listen"); err != nil {
			return err
		}
	}
	if flags.Changed("latency-scale") {
		if cfg.LatencyScale, err = flags.GetFloat64("latency-scale"); err != nil {
			return err
		}
	}
	if err := overrideString(cmd, &cfg.DBDir, "db-dir"); err != nil {
		return err
	}
	noDB, err := flags.GetBool("no-db")
	if err != nil {
		return err
	}
	if noDB {
		cfg.SaveToDB = false
	}
	if err := validate(cfg); err != nil {
		return err
	}

	logger := applog.NewSecureJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []server.Option{
		server.WithLogger(logger),
		server.WithLatencyScale(cfg.LatencyScale),
	}
	if cfg.SaveToDB {
		db, err := database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "path", db.Path())
		opts = append(opts, server.WithStore(db))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OSINT Nexus mock backend listening on http://%s (Ctrl+C to stop)\n", cfg.ListenAddress)
	return server.New(opts...).ListenAndServe(ctx, cfg.ListenAddress)
}
