package mode

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository persists the homepage settings row. The table holds at
// most one row (id = 1).
type Repository interface {
	Get(ctx context.Context) (Settings, error)
	Set(ctx context.Context, isDropActive bool) (Settings, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Get reads the current settings. A missing row is the initial state:
// drop inactive, revision zero.
func (r *repository) Get(ctx context.Context) (Settings, error) {
	var s Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT is_drop_active, revision, updated_at
		FROM homepage_settings
		WHERE id = 1
	`).Scan(&s.IsDropActive, &s.Revision, &s.UpdatedAt)

	if err == sql.ErrNoRows {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read homepage settings: %w", err)
	}

	return s, nil
}

// Set overwrites the flag, creating the row on first write and bumping
// the revision on every write.
func (r *repository) Set(ctx context.Context, isDropActive bool) (Settings, error) {
	var s Settings
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO homepage_settings (id, is_drop_active, revision, updated_at)
		VALUES (1, $1, 1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET is_drop_active = EXCLUDED.is_drop_active,
		    revision = homepage_settings.revision + 1,
		    updated_at = NOW()
		RETURNING is_drop_active, revision, updated_at
	`, isDropActive).Scan(&s.IsDropActive, &s.Revision, &s.UpdatedAt)

	if err != nil {
		return Settings{}, fmt.Errorf("failed to write homepage settings: %w", err)
	}

	return s, nil
}
