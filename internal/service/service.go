package service

import (
	"context"
	"time"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/notifier"
	"portfolio_admin/internal/repository"
)

// Authorization verifies admin credentials and session tokens.
type Authorization interface {
	Verify(ctx context.Context, username, password string) (models.Admin, error)
	IssueToken(admin models.Admin) (string, error)
	ParseToken(accessToken string) (models.Principal, error)
}

// Projects manages portfolio entries. Returned images are absolute URLs.
type Projects interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, in models.ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// Contact stores visitor messages and lets the admin triage and answer them.
type Contact interface {
	Submit(ctx context.Context, in models.ContactInput) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (models.ContactMessage, error)
	Respond(ctx context.Context, id, response string) error
	Stats(ctx context.Context) (models.InboxStats, error)
}

// Bootstrap holds the one-off provisioning steps run by deployment tooling.
type Bootstrap interface {
	SeedAdmin(ctx context.Context, seed AdminSeed) (bool, error)
	SeedSampleProjects(ctx context.Context) (int, error)
	MigrateLegacyImages(ctx context.Context) (int, error)
}

type Service struct {
	Authorization
	Projects
	Contact
	Bootstrap
}

// Options carries deployment settings the services depend on.
type Options struct {
	SigningKey  string
	TokenTTL    time.Duration
	PublicURL   string
	MailSubject string
}

func NewService(repos *repository.Repository, sender notifier.Sender, opts Options) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
		Projects:      NewProjectService(repos.Projects, opts.PublicURL),
		Contact:       NewContactService(repos.Messages, sender, opts.MailSubject),
		Bootstrap:     NewBootstrapService(repos.Auth, repos.Projects),
	}
}
