// Package history persists lint run summaries to a SQLite database so
// CI and the watch daemon can track script health over time.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"ledgerhq/tycho/pkg/harness"
)

const schema = `
CREATE TABLE IF NOT EXISTS lint_runs (
    run_id      TEXT PRIMARY KEY,
    script      TEXT NOT NULL,
    blocks      INTEGER NOT NULL,
    failures    INTEGER NOT NULL,
    first_error TEXT NOT NULL DEFAULT '',
    started_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lint_runs_started_at ON lint_runs(started_at);
`

// Run is one recorded lint run.
type Run struct {
	RunID      string
	Script     string
	Blocks     int
	Failures   int
	FirstError string
	StartedAt  time.Time
}

// Store is a SQLite-backed history of lint runs.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (and if necessary creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %q: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	logger := slog.Default().With("component", "harness.history")
	logger.Debug("history database opened", "path", path)

	return &Store{db: db, logger: logger}, nil
}

// RecordReport stores the summary of one lint report.
func (s *Store) RecordReport(ctx context.Context, report *harness.Report) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lint_runs (run_id, script, blocks, failures, first_error, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.RunID,
		report.Script,
		len(report.Blocks),
		report.Failures(),
		report.FirstError(),
		report.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record lint run %s: %w", report.RunID, err)
	}
	return nil
}

// Recent returns up to limit runs, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, script, blocks, failures, first_error, started_at
		 FROM lint_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lint runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Script, &r.Blocks, &r.Failures, &r.FirstError, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lint run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lint runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
