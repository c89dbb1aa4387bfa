// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists render history in a local SQLite database.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/storyforge/bindery/pkg/types"
)

const dbFile = "bindery.db"

// Record is one row of render history.
type Record struct {
	ID         int64
	OutputPath string
	Format     string
	PageCount  int
	FileSize   int64
	Success    bool
	Error      string
	CreatedAt  time.Time
}

// Store manages the render history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at dir/bindery.db, creating the
// schema if it does not exist.
func Open(cfg types.LedgerConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS renders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		output_path TEXT NOT NULL,
		format TEXT,
		page_count INTEGER,
		file_size INTEGER,
		success INTEGER NOT NULL,
		error TEXT,
		created_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Append records the outcome of one render. The manifest format name is
// stored alongside the result so history shows what was asked for, not just
// what came out.
func (s *Store) Append(ctx context.Context, result types.RenderResult, format string) error {
	success := 0
	if result.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO renders (output_path, format, page_count, file_size, success, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.OutputPath, format, result.PageCount, result.FileSize,
		success, result.Error, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting render record: %w", err)
	}
	return nil
}

// List returns the most recent render records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, output_path, format, page_count, file_size, success, error, created_at
		 FROM renders ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying renders: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var success int
		var createdAt string
		if err := rows.Scan(&r.ID, &r.OutputPath, &r.Format, &r.PageCount,
			&r.FileSize, &success, &r.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning render record: %w", err)
		}
		r.Success = success != 0
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
