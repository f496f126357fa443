// Package store persists the player's per-reset action overrides.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/napolitain/fractaline-stonks/internal/models"
)

// Store keeps overrides per season. Only the index being written changes.
type Store interface {
	Overrides(ctx context.Context, season string) (models.Overrides, error)
	Set(ctx context.Context, season string, index int, action models.Action) error
	Clear(ctx context.Context, season string) error
	Toggle(ctx context.Context, season string, index, window int) (models.Action, error)
	Close() error
}

// SQLite is a Store backed by a sqlite file
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS overrides (
	season TEXT    NOT NULL,
	idx    INTEGER NOT NULL,
	action TEXT    NOT NULL CHECK (action IN ('invest', 'donate')),
	PRIMARY KEY (season, idx)
);`

const upsertOverride = `
INSERT INTO overrides (season, idx, action) VALUES (?, ?, ?)
ON CONFLICT (season, idx) DO UPDATE SET action = excluded.action`

// OpenSQLite opens (creating if needed) the override database at path
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Overrides returns every stored override for season
func (s *SQLite) Overrides(ctx context.Context, season string) (models.Overrides, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT idx, action FROM overrides WHERE season = ?`, season)
	if err != nil {
		return nil, fmt.Errorf("query overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(models.Overrides)
	for rows.Next() {
		var index int
		var raw string
		if err := rows.Scan(&index, &raw); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		action, err := models.ParseAction(raw)
		if err != nil {
			return nil, fmt.Errorf("stored override %d: %w", index, err)
		}
		overrides[index] = action
	}
	return overrides, rows.Err()
}

// Set upserts the override for one index
func (s *SQLite) Set(ctx context.Context, season string, index int, action models.Action) error {
	if _, err := models.ParseAction(string(action)); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, upsertOverride, season, index, string(action))
	if err != nil {
		return fmt.Errorf("save override %d: %w", index, err)
	}
	return nil
}

// Clear removes all overrides for season
func (s *SQLite) Clear(ctx context.Context, season string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM overrides WHERE season = ?`, season); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}
