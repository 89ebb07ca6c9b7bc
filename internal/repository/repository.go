package repository

import (
	"context"
	"database/sql"
	"time"

	"portfolio_admin/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash, email string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

type ProjectRepo interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id string) (models.Project, error)
	Create(ctx context.Context, p models.Project) error
	Update(ctx context.Context, p models.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	MigrateLegacyImages(ctx context.Context) (int, error)
}

type MessageRepo interface {
	Create(ctx context.Context, m models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	Get(ctx context.Context, id string) (models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus, at time.Time) error
	SaveResponse(ctx context.Context, id, response string, at time.Time) error
	CountByStatus(ctx context.Context) (map[models.MessageStatus]int, error)
}

type Repository struct {
	Auth     Authorization
	Projects ProjectRepo
	Messages MessageRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewAdminRepository(db),
		Projects: NewProjectSQLite(db),
		Messages: NewMessageSQLite(db),
	}
}
