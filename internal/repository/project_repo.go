package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio_admin/internal/models"

	"github.com/google/uuid"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite { return &ProjectSQLite{db: db} }

var _ ProjectRepo = (*ProjectSQLite)(nil)

const (
	projectColumns = `id, title, description, images, category, created_at, updated_at`

	insertProjectSQL = `INSERT INTO projects (` + projectColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	listProjectsSQL  = `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	getProjectSQL    = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	updateProjectSQL = `UPDATE projects SET title = ?, description = ?, images = ?, category = ?, updated_at = ? WHERE id = ?`
	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`
	countProjectsSQL = `SELECT COUNT(*) FROM projects`

	foldLegacyImageSQL = `UPDATE projects SET images = json_array(image)
		WHERE image IS NOT NULL AND image <> '' AND (images IS NULL OR images = '' OR images = '[]')`
	clearLegacyImageSQL = `UPDATE projects SET image = NULL WHERE image IS NOT NULL`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		p      models.Project
		images string
		cat    string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &images, &cat, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Project{}, err
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return models.Project{}, fmt.Errorf("decode images of project %s: %w", p.ID, err)
	}
	p.Category = models.Category(cat)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func encodeImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("encode images: %w", err)
	}
	return string(b), nil
}

// List returns all projects, newest first.
func (r *ProjectSQLite) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, listProjectsSQL)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

// Get fetches one project by id.
func (r *ProjectSQLite) Get(ctx context.Context, id string) (models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, getProjectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("select project %s: %w", id, err)
	}
	return p, nil
}

// Create inserts p. Missing ID and timestamps are filled in.
func (r *ProjectSQLite) Create(ctx context.Context, p models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, insertProjectSQL,
		p.ID, p.Title, p.Description, images, string(p.Category), p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert project %q: %w", p.Title, err)
	}
	return nil
}

// Update replaces title, description, images and category of p.ID.
func (r *ProjectSQLite) Update(ctx context.Context, p models.Project) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, updateProjectSQL,
		p.Title, p.Description, images, string(p.Category), p.UpdatedAt.UTC(), p.ID)
	if err != nil {
		return fmt.Errorf("update project %s: %w", p.ID, err)
	}
	return requireAffected(res, "update project", p.ID)
}

// Delete removes a project. Uploaded files are left in place.
func (r *ProjectSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return requireAffected(res, "delete project", id)
}

func (r *ProjectSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countProjectsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

// MigrateLegacyImages folds the pre-migration single image column into
// images for rows that have no images, then clears the legacy column
// everywhere. It returns how many rows received a folded image.
func (r *ProjectSQLite) MigrateLegacyImages(ctx context.Context) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin legacy image migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, foldLegacyImageSQL)
	if err != nil {
		return 0, fmt.Errorf("fold legacy images: %w", err)
	}
	folded, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected by legacy fold: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearLegacyImageSQL); err != nil {
		return 0, fmt.Errorf("clear legacy images: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit legacy image migration: %w", err)
	}
	return int(folded), nil
}

func requireAffected(res sql.Result, op, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", op, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
