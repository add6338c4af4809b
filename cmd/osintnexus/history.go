package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/database"
	"github.com/nao1215/osintnexus/internal/execution"
	"github.com/nao1215/osintnexus/internal/model"
)

// historyTimeLayout is used in the history table.
const historyTimeLayout = "2006-01-02 15:04"

// historyEntry is the JSON form of a stored investigation.
type historyEntry struct {
	ID         string               `json:"id"`
	Module     string               `json:"module"`
	Tool       string               `json:"tool"`
	Target     string               `json:"target"`
	TargetType string               `json:"target_type,omitempty"`
	Status     model.ActivityStatus `json:"status"`
	Results    map[string]any       `json:"results,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

func newHistoryEntry(rec database.Record, withResults bool) historyEntry {
	e := historyEntry{
		ID:         rec.ID,
		Module:     rec.Module,
		Tool:       rec.Tool,
		Target:     rec.Target,
		TargetType: rec.TargetType,
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	if withResults {
		e.Results = rec.Results
	}
	return e
}

// historyFilter selects records by module and target.
type historyFilter struct {
	module string
	target string
	limit  int
}

func (f historyFilter) apply(records []database.Record) []database.Record {
	var out []database.Record
	for _, rec := range records {
		if f.module != "" && !strings.EqualFold(rec.Module, f.module) {
			continue
		}
		if f.target != "" && !strings.Contains(strings.ToLower(rec.Target), strings.ToLower(f.target)) {
			continue
		}
		out = append(out, rec)
		if f.limit > 0 && len(out) == f.limit {
			break
		}
	}
	return out
}

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [investigation-id]",
		Short: "Show recorded investigations",
		Long: `History lists the investigations recorded in the local database, newest
first. Both 'osintnexus serve' and 'osintnexus exec' record into it.

With an investigation id (or a unique prefix of one), the stored tool output
of that investigation is shown.

Examples:
  # Latest investigations
  osintnexus history

  # Only darknet runs against a given host
  osintnexus history --module darknet --target example.onion

  # Show one investigation as JSON
  osintnexus history 3f2a --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of investigations to list (0 for all)")
	cmd.Flags().StringP("module", "M", "", "Only list investigations of this module (e.g. OSINT, Darknet)")
	cmd.Flags().StringP("target", "t", "", "Only list investigations whose target contains this text")
	cmd.Flags().BoolP("json", "j", false, "Output in JSON format")
	cmd.Flags().String("db-dir", "", "Investigation database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, os.LookupEnv)
	if err != nil {
		return err
	}
	if err := overrideString(cmd, &cfg.DBDir, "db-dir"); err != nil {
		return err
	}

	flags := cmd.Flags()
	jsonOutput, err := flags.GetBool("json")
	if err != nil {
		return err
	}
	var filter historyFilter
	if filter.limit, err = flags.GetInt("limit"); err != nil {
		return err
	}
	if filter.module, err = flags.GetString("module"); err != nil {
		return err
	}
	if filter.target, err = flags.GetString("target"); err != nil {
		return err
	}

	// Reading history must not create an empty database as a side effect.
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open database (run 'osintnexus serve' or 'osintnexus exec' first): %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		rec, err := findInvestigation(ctx, db, args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(out, newHistoryEntry(rec, true))
		}
		return printInvestigation(out, rec)
	}

	records, err := db.ListInvestigations(ctx, 0)
	if err != nil {
		return fmt.Errorf("failed to list investigations: %w", err)
	}
	records = filter.apply(records)

	if jsonOutput {
		entries := make([]historyEntry, len(records))
		for i, rec := range records {
			entries[i] = newHistoryEntry(rec, false)
		}
		return writeJSON(out, entries)
	}
	return printHistory(out, records)
}

// errAmbiguousID is returned when an id prefix matches several investigations.
var errAmbiguousID = errors.New("ambiguous investigation id")

// findInvestigation looks up an investigation by full id, falling back to a
// unique id prefix.
func findInvestigation(ctx context.Context, db *database.InvestigationDB, id string) (database.Record, error) {
	rec, err := db.GetInvestigation(ctx, id)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return database.Record{}, err
	}

	records, err := db.ListInvestigations(ctx, 0)
	if err != nil {
		return database.Record{}, fmt.Errorf("failed to list investigations: %w", err)
	}
	var matches []database.Record
	for _, r := range records {
		if strings.HasPrefix(r.ID, id) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return database.Record{}, fmt.Errorf("investigation %q: %w", id, database.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return database.Record{}, fmt.Errorf("%w: %q matches %d investigations", errAmbiguousID, id, len(matches))
	}
}

func printHistory(out io.Writer, records []database.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(out, "No investigations recorded.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tMODULE\tTOOL\tTARGET\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(rec.ID),
			rec.CreatedAt.Local().Format(historyTimeLayout),
			rec.Module, rec.Tool, rec.Target, rec.Status)
	}
	return tw.Flush()
}

func printInvestigation(out io.Writer, rec database.Record) error {
	fmt.Fprintf(out, "Investigation %s\n", rec.ID)
	fmt.Fprintf(out, "  Module:  %s / %s\n", rec.Module, rec.Tool)
	fmt.Fprintf(out, "  Target:  %s", rec.Target)
	if rec.TargetType != "" {
		fmt.Fprintf(out, " (%s)", rec.TargetType)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Status:  %s\n", rec.Status)
	fmt.Fprintf(out, "  Created: %s\n", rec.CreatedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "  Updated: %s\n\n", rec.UpdatedAt.Local().Format(time.RFC3339))

	lines := execution.Summarize(rec.Results)
	if len(lines) == 0 {
		fmt.Fprintln(out, "No results stored.")
		return nil
	}
	fmt.Fprintln(out, "Results:")
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
