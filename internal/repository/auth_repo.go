package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio_admin/internal/models"
)

type AdminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*AdminRepository)(nil)

const (
	insertAdminSQL           = `INSERT INTO admins (username, password_hash, email) VALUES (?, ?, ?)`
	selectAdminByUsernameSQL = `SELECT id, username, password_hash, email FROM admins WHERE username = ?`
)

// Create inserts a new admin and returns its ID.
func (r *AdminRepository) Create(ctx context.Context, username, passwordHash, email string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertAdminSQL, username, passwordHash, email)
	if err != nil {
		return 0, fmt.Errorf("insert admin %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for admin %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches an admin by username. Returns (nil, nil) if not found.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := r.db.QueryRowContext(ctx, selectAdminByUsernameSQL, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select admin %q: %w", username, err)
	}
	return &a, nil
}
