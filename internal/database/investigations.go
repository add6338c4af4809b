package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/osintnexus/internal/api"
	"github.com/nao1215/osintnexus/internal/model"
)

// FileName is the name of the database file inside the database directory.
const FileName = "osintnexus.db"

// ErrNotFound is returned when an investigation does not exist.
var ErrNotFound = errors.New("investigation not found")

// InvestigationDB stores executed investigations.
type InvestigationDB struct {
	db     *sql.DB
	dbPath string
}

// Options configures InvestigationDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Record is one stored investigation together with the raw tool output.
type Record struct {
	ID         string
	Module     string
	Tool       string
	Target     string
	TargetType string
	Status     model.ActivityStatus
	Results    map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Investigation converts the record to its wire form.
func (r Record) Investigation() api.Investigation {
	return api.Investigation{
		ID:        r.ID,
		Module:    r.Module,
		Target:    r.Target,
		Tool:      r.Tool,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Open opens or creates the investigation store in dbDir.
// With CreateIfNotExists unset, a missing database file is an error.
func Open(dbDir string, opts Options) (*InvestigationDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a new file.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	idb := &InvestigationDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := idb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return idb, nil
}

// Path returns the database file path.
func (idb *InvestigationDB) Path() string {
	return idb.dbPath
}

// Close closes the database connection.
func (idb *InvestigationDB) Close() error {
	return idb.db.Close()
}

func (idb *InvestigationDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS investigations (
		id TEXT PRIMARY KEY,
		module TEXT NOT NULL,
		tool TEXT NOT NULL,
		target TEXT NOT NULL,
		target_type TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		results_json TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_investigations_created ON investigations(created_at);
	CREATE INDEX IF NOT EXISTS idx_investigations_module ON investigations(module);
	`

	_, err := idb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveInvestigation inserts rec, or replaces the row with the same ID.
// Zero timestamps are set to the current time.
func (idb *InvestigationDB) SaveInvestigation(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return errors.New("investigation id is required")
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}

	results := rec.Results
	if results == nil {
		results = map[string]any{}
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	query := `
	INSERT INTO investigations (id, module, tool, target, target_type, status, results_json, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		module = excluded.module,
		tool = excluded.tool,
		target = excluded.target,
		target_type = excluded.target_type,
		status = excluded.status,
		results_json = excluded.results_json,
		updated_at = excluded.updated_at
	`

	_, err = idb.db.ExecContext(ctx, query,
		rec.ID,
		rec.Module,
		rec.Tool,
		rec.Target,
		rec.TargetType,
		string(rec.Status),
		string(resultsJSON),
		formatTimestamp(rec.CreatedAt),
		formatTimestamp(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save investigation: %w", err)
	}
	return nil
}

// ListInvestigations returns up to limit investigations, newest first.
// A limit of zero or less returns every row.
func (idb *InvestigationDB) ListInvestigations(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}

	query := `
	SELECT id, module, tool, target, target_type, status, results_json, created_at, updated_at
	FROM investigations
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`

	rows, err := idb.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query investigations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetInvestigation returns the investigation with the given ID.
func (idb *InvestigationDB) GetInvestigation(ctx context.Context, id string) (Record, error) {
	query := `
	SELECT id, module, tool, target, target_type, status, results_json, created_at, updated_at
	FROM investigations
	WHERE id = ?
	`

	rec, err := scanRecord(idb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, err
}

// CountInvestigations returns the number of stored investigations.
func (idb *InvestigationDB) CountInvestigations(ctx context.Context) (int, error) {
	var n int
	if err := idb.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM investigations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count investigations: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var (
		rec         Record
		status      string
		resultsJSON string
		createdAt   string
		updatedAt   string
	)

	err := s.Scan(&rec.ID, &rec.Module, &rec.Tool, &rec.Target, &rec.TargetType,
		&status, &resultsJSON, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("failed to scan investigation: %w", err)
	}

	rec.Status = model.ActivityStatus(status)
	rec.CreatedAt = parseTimestamp(createdAt)
	rec.UpdatedAt = parseTimestamp(updatedAt)

	if err := json.Unmarshal([]byte(resultsJSON), &rec.Results); err != nil {
		rec.Results = map[string]any{}
	}
	return rec, nil
}

// storedTimestampFormat is fixed width so that text ordering matches time ordering.
const storedTimestampFormat = "2006-01-02 15:04:05.000000000"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(storedTimestampFormat)
}

// timestampFormats lists the layouts accepted when reading timestamps back.
var timestampFormats = []string{
	storedTimestampFormat,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// parseTimestamp returns the zero time when no layout matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
