// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a ledger of rename outcomes in SQLite. The
// ledger is an audit log only; it does not support undo.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdf-renamer/internal/rename"
	"github.com/pdiddy/pdf-renamer/pkg/types"
)

// Entry is one recorded outcome.
type Entry struct {
	ID         int64     `json:"id" yaml:"id"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
	Directory  string    `json:"directory" yaml:"directory"`
	OldName    string    `json:"old_name" yaml:"old_name"`
	NewName    string    `json:"new_name,omitempty" yaml:"new_name,omitempty"`
	Status     string    `json:"status" yaml:"status"`
	Reason     string    `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Store manages the ledger SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database, creating the schema if
// it does not exist. An empty DBPath selects DefaultDBPath.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// DefaultDBPath returns the ledger location under the user's state
// directory, or a working-directory fallback when no home is known.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pdf-renamer-history.db"
	}
	return filepath.Join(home, ".local", "state", "pdf-renamer", "history.db")
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS renames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			recorded_at TEXT NOT NULL,
			directory TEXT NOT NULL,
			old_name TEXT NOT NULL,
			new_name TEXT,
			status TEXT NOT NULL,
			reason TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renames_directory ON renames(directory)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends every outcome of a batch run to the ledger in one
// transaction.
func (s *Store) Record(ctx context.Context, dir string, outcomes []rename.Outcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO renames (recorded_at, directory, old_name, new_name, status, reason)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, o := range outcomes {
		if _, err := stmt.ExecContext(ctx, now, dir, o.OldName, o.NewName, string(o.Status), o.Reason); err != nil {
			return fmt.Errorf("recording %s: %w", o.OldName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ledger entries: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first, optionally
// filtered by directory. limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, limit int, dir string) ([]Entry, error) {
	query := `SELECT id, recorded_at, directory, old_name, new_name, status, reason
	          FROM renames`
	var args []any
	if dir != "" {
		query += ` WHERE directory = ?`
		args = append(args, dir)
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		var newName, reason sql.NullString
		if err := rows.Scan(&e.ID, &recordedAt, &e.Directory, &e.OldName, &newName, &e.Status, &reason); err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		e.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		e.NewName = newName.String
		e.Reason = reason.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
