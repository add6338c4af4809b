package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/catalog"
	"github.com/nao1215/osintnexus/internal/config"
	"github.com/nao1215/osintnexus/internal/database"
	"github.com/nao1215/osintnexus/internal/execution"
	applog "github.com/nao1215/osintnexus/internal/log"
	"github.com/nao1215/osintnexus/internal/model"
	"github.com/nao1215/osintnexus/internal/report"
)

// errNoTargets is returned when exec gets a module and tool but no target.
var errNoTargets = errors.New("no targets provided (specify one or more targets after the tool name)")

// NewExecCmd creates the exec command.
func NewExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <module-id> <tool> <target>...",
		Short: "Run a tool against one or more targets",
		Long: `Exec runs a module tool against targets without opening the dashboard.

Each target is sent to the backend's execute endpoint. When a request fails,
a placeholder result is produced, exactly as in the dashboard, and marked as
such in the report. Results are also recorded in the local investigation
database unless --no-save is given.

Examples:
  # Run theHarvester against a domain
  osintnexus exec osint theHarvester example.com

  # Several targets, four at a time, as JSON
  osintnexus exec network Nmap 10.0.0.1 10.0.0.2 10.0.0.3 --json

  # Write a Markdown report
  osintnexus exec darknet "Hidden Services" example.onion --markdown -o report.md`,
		Args: cobra.MinimumNArgs(2),
		RunE: runExecCmd,
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().IntP("concurrency", "n", config.DefaultConcurrency,
		"Number of concurrent requests")
	cmd.Flags().Bool("no-save", false,
		"Do not record results in the investigation database")

	return cmd
}

// runExecCmd executes the exec command.
func runExecCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildExecConfig(cmd)
	if err != nil {
		return err
	}
	if err := validate(cfg); err != nil {
		return err
	}

	mod, tool, err := resolveTool(args[0], args[1])
	if err != nil {
		return err
	}
	targets := args[2:]
	if len(targets) == 0 {
		return errNoTargets
	}

	logger := applog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runExec(ctx, cfg, mod, tool, targets, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// buildExecConfig loads the shared configuration and applies the exec flags.
func buildExecConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
		return nil, err
	}
	noSave, err := flags.GetBool("no-save")
	if err != nil {
		return nil, err
	}
	if noSave {
		cfg.SaveToDB = false
	}
	return cfg, nil
}

// resolveTool finds the module and the canonical tool name. Module ids and
// tool names are matched ignoring case.
func resolveTool(moduleID, toolName string) (catalog.Module, string, error) {
	mod, err := lookupModule(moduleID)
	if err != nil {
		return catalog.Module{}, "", err
	}
	for _, name := range mod.ToolNames() {
		if strings.EqualFold(name, strings.TrimSpace(toolName)) {
			return mod, name, nil
		}
	}
	return catalog.Module{}, "", fmt.Errorf("module %s has no tool %q (available: %s)",
		mod.ID, toolName, strings.Join(mod.ToolNames(), ", "))
}

// runExec executes tool against targets and writes the report.
func runExec(ctx context.Context, cfg *config.Config, mod catalog.Module, tool string, targets []string, logger *slog.Logger, stdout, stderr io.Writer) error {
	var db *database.InvestigationDB
	if cfg.SaveToDB {
		var err error
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Info("database opened", "path", db.Path())
	}

	client, err := newBackendClient(ctx, cfg, logger, stderr)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Fprintf(stderr, "Running %s / %s on %d target(s) (concurrency: %d)...\n",
		mod.ShortName(), tool, len(targets), cfg.Concurrency)
	start := time.Now()

	results, err := execution.RunBatch(ctx, client, mod.ID, tool, targets, cfg.Concurrency,
		execution.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	fmt.Fprintf(stderr, "Completed in %s\n\n", time.Since(start).Round(time.Millisecond))

	if err := outputReport(cfg, results, stdout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := saveResults(ctx, db, mod, results, logger); err != nil {
		logger.Error("failed to save results", "error", err)
	}
	return nil
}

// outputReport writes results in the requested format to the report file,
// or to stdout when none is set.
func outputReport(cfg *config.Config, results []execution.Result, stdout io.Writer) error {
	output := stdout
	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		// Reports may name targets under investigation; keep them owner-only.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
	_, err := w.WriteBatch(results)
	return err
}

// saveResults records results in the investigation database.
// If db is nil, this function is a no-op.
func saveResults(ctx context.Context, db *database.InvestigationDB, mod catalog.Module, results []execution.Result, logger *slog.Logger) error {
	if db == nil {
		return nil
	}
	for _, res := range results {
		rec := recordOf(mod, res)
		if err := db.SaveInvestigation(ctx, rec); err != nil {
			return fmt.Errorf("failed to save %s: %w", res.Target, err)
		}
		logger.Debug("result saved", "id", rec.ID, "target", res.Target)
	}
	logger.Info("results saved to database", "count", len(results))
	return nil
}

// recordOf converts a result to a database record. Placeholder results are
// stored as failed runs.
func recordOf(mod catalog.Module, res execution.Result) database.Record {
	status := model.StatusCompleted
	if res.Placeholder {
		status = model.StatusFailed
	}
	results := res.Details
	if results == nil {
		findings := make([]any, len(res.Findings))
		for i, f := range res.Findings {
			findings[i] = f
		}
		results = map[string]any{"findings": findings}
	}
	return database.Record{
		ID:         uuid.NewString(),
		Module:     mod.ShortName(),
		Tool:       res.Tool,
		Target:     res.Target,
		TargetType: string(res.TargetType),
		Status:     status,
		Results:    results,
		CreatedAt:  res.ExecutedAt,
		UpdatedAt:  res.ExecutedAt,
	}
}
