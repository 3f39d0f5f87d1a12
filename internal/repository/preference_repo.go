package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/dualtimer/internal/db"
)

// PreferenceRepo is a SQLite implementation of PreferenceRepository
type PreferenceRepo struct {
	db *db.DB
}

// NewPreferenceRepo creates a new PreferenceRepo
func NewPreferenceRepo(database *db.DB) *PreferenceRepo {
	return &PreferenceRepo{db: database}
}

// Get retrieves the value stored under key
func (r *PreferenceRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query := "SELECT value FROM preferences WHERE key = ?"

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference %q: %w", key, err)
	}

	return value, true, nil
}

// Set inserts or replaces the value stored under key
func (r *PreferenceRepo) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query, key, value, formatTime())
	if err != nil {
		return fmt.Errorf("failed to save preference %q: %w", key, err)
	}

	return nil
}

// Clear deletes every stored preference
func (r *PreferenceRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM preferences"); err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}
