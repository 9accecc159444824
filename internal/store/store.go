// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists converted pronunciation rows in SQLite and answers
// word lookups against them.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/moby-ipa/pkg/types"
)

const defaultMaxResults = 20

// Store manages the pronunciation SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the database at cfg.DB and creates the schema
// if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	path := cfg.DB
	if path == "" {
		path = types.DefaultDB
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS pronunciations (
			source TEXT NOT NULL,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			ipa TEXT NOT NULL,
			part_of_speech TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (source, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pronunciations_word ON pronunciations(word)`,
		`CREATE INDEX IF NOT EXISTS idx_pronunciations_pos ON pronunciations(part_of_speech)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			source TEXT PRIMARY KEY,
			file_mod_time TEXT NOT NULL,
			row_count INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestStatus says what Ingest did with a source.
type IngestStatus string

const (
	IngestIndexed IngestStatus = "indexed"
	IngestUpdated IngestStatus = "updated"
	IngestSkipped IngestStatus = "skipped"
)

// Ingest replaces the rows recorded for source. When modTime matches the
// time stored by the previous ingest of source, nothing is written and
// IngestSkipped is returned. Row order is kept in the position column.
func (s *Store) Ingest(ctx context.Context, source string, modTime time.Time, rows []types.Row) (IngestStatus, error) {
	stamp := modTime.UTC().Format(time.RFC3339Nano)

	var stored string
	err := s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM ingest_status WHERE source = ?`, source,
	).Scan(&stored)
	switch {
	case err == nil && stored == stamp:
		return IngestSkipped, nil
	case err != nil && err != sql.ErrNoRows:
		return "", fmt.Errorf("checking ingest status: %w", err)
	}
	status := IngestIndexed
	if err == nil {
		status = IngestUpdated
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pronunciations WHERE source = ?`, source); err != nil {
		return "", fmt.Errorf("deleting old rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO pronunciations (source, position, word, ipa, part_of_speech)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range rows {
		if _, err := stmt.ExecContext(ctx, source, i, r.Word, r.IPA, r.PartOfSpeech); err != nil {
			return "", fmt.Errorf("inserting %q: %w", r.Word, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (source, file_mod_time, row_count) VALUES (?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET
			file_mod_time=excluded.file_mod_time, row_count=excluded.row_count`,
		source, stamp, len(rows),
	)
	if err != nil {
		return "", fmt.Errorf("updating ingest status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return status, nil
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM pronunciations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rows: %w", err)
	}
	return n, nil
}
