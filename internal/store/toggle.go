package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/solver"
)

// Toggle flips the effective action at index and persists only that index.
// The read and the write share one transaction. It returns the action now in effect.
func (s *SQLite) Toggle(ctx context.Context, season string, index, window int) (models.Action, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin toggle: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current := models.Overrides{}
	var raw string
	err = tx.QueryRowContext(ctx,
		`SELECT action FROM overrides WHERE season = ? AND idx = ?`, season, index).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return "", fmt.Errorf("read override %d: %w", index, err)
	default:
		action, err := models.ParseAction(raw)
		if err != nil {
			return "", fmt.Errorf("stored override %d: %w", index, err)
		}
		current[index] = action
	}

	next := solver.Toggle(current, index, window)[index]
	if _, err := tx.ExecContext(ctx, upsertOverride, season, index, string(next)); err != nil {
		return "", fmt.Errorf("save override %d: %w", index, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit toggle: %w", err)
	}
	return next, nil
}
