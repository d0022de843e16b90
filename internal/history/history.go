// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists recently used patterns to a local SQLite
// database so the REPL and the workbench can recall them across sessions.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS patterns (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    pattern    TEXT NOT NULL,
    profile_id TEXT NOT NULL DEFAULT '',
    used_at    TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_patterns_used_at ON patterns(used_at DESC);
`

// Entry is one remembered pattern.
type Entry struct {
	Pattern   string
	ProfileID string
	UsedAt    time.Time
}

// Store is the pattern history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Add records a pattern use. Immediately repeated patterns are collapsed
// into their latest use instead of piling up duplicate rows.
func (s *Store) Add(pattern, profileID string) error {
	if pattern == "" {
		return nil
	}

	var lastID int64
	var last string
	err := s.db.QueryRow(
		`SELECT id, pattern FROM patterns ORDER BY used_at DESC, id DESC LIMIT 1`,
	).Scan(&lastID, &last)
	if err == nil && last == pattern {
		_, err = s.db.Exec(
			`UPDATE patterns SET used_at = ?, profile_id = ? WHERE id = ?`,
			time.Now().UTC(), profileID, lastID,
		)
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO patterns (pattern, profile_id, used_at) VALUES (?, ?, ?)`,
		pattern, profileID, time.Now().UTC(),
	)
	return err
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT pattern, profile_id, used_at FROM patterns ORDER BY used_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Pattern, &e.ProfileID, &e.UsedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
