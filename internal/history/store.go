// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records completed conversions. It keeps two sinks:
// an append-only plain-text log (the canonical record) and a SQLite
// index supporting queries and export.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/mdinline/pkg/types"
)

const dbFile = "history.db"

// Store manages the conversion history SQLite database.
type Store struct {
	db         *sql.DB
	historyDir string
	maxResults int
}

// NewStore opens or creates the history database at
// historyDir/history.db, creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		historyDir: cfg.HistoryDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			refs INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one conversion record. A zero ConvertedAt is replaced
// with the current time.
func (s *Store) Record(ctx context.Context, rec types.ConversionRecord) error {
	ts := rec.ConvertedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (source, output, refs, converted_at) VALUES (?, ?, ?, ?)`,
		rec.Source, rec.Output, rec.Refs, ts.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion record: %w", err)
	}
	return nil
}

// QueryOptions holds parameters for history queries.
type QueryOptions struct {
	// Source filters by input file path.
	Source string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Recent returns conversion records, newest first, with an optional
// source filter.
func (s *Store) Recent(ctx context.Context, opts QueryOptions) ([]types.ConversionRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, source, output, refs, converted_at FROM conversions WHERE 1=1`)

	if opts.Source != "" {
		qb.WriteString(` AND source = ?`)
		args = append(args, opts.Source)
	}

	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var (
			rec types.ConversionRecord
			ts  string
		)
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Output, &rec.Refs, &ts); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			rec.ConvertedAt = parsed
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
