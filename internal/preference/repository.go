package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nashbilliard/billsplit/internal/database"
)

// Repository handles preference persistence in the key-value preferences table
type Repository struct {
	db *database.DB
}

// NewRepository creates a new preference repository with database dependency injected
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the stored value for key. ok is false when nothing is stored.
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	query := r.db.Rebind(`SELECT value FROM preferences WHERE key = ?`)

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference: %w", err)
	}

	return value, true, nil
}

// Set inserts or replaces the value for key
func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := r.db.Rebind(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}

// Delete removes key, returning to the configured default
func (r *Repository) Delete(ctx context.Context, key string) error {
	query := r.db.Rebind(`DELETE FROM preferences WHERE key = ?`)

	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}

	return nil
}
