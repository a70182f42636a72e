package signup

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Create(ctx context.Context, email string) error
	List(ctx context.Context) ([]Signup, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create stores an email. Re-signing up with the same address is
// idempotent, not an error.
func (r *repository) Create(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO drop_signups (email, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO NOTHING
	`, email)
	if err != nil {
		return fmt.Errorf("failed to store signup: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]Signup, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, created_at
		FROM drop_signups
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list signups: %w", err)
	}
	defer rows.Close()

	var signups []Signup
	for rows.Next() {
		var s Signup
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signup row: %w", err)
		}
		signups = append(signups, s)
	}
	return signups, rows.Err()
}
