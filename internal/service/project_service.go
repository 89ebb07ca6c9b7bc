package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/repository"

	"github.com/google/uuid"
)

type ProjectService struct {
	repo      repository.ProjectRepo
	publicURL string
}

func NewProjectService(repo repository.ProjectRepo, publicURL string) *ProjectService {
	return &ProjectService{repo: repo, publicURL: strings.TrimRight(publicURL, "/")}
}

// ListProjects returns every project newest first with upload paths made absolute.
func (s *ProjectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Images = s.absoluteImages(projects[i].Images)
	}
	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, in models.ProjectInput) (models.Project, error) {
	in, err := normalizeProject(in)
	if err != nil {
		return models.Project{}, err
	}
	now := time.Now().UTC()
	p := models.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Images:      in.Images,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return models.Project{}, err
	}
	p.Images = s.absoluteImages(p.Images)
	return p, nil
}

// UpdateProject replaces all editable fields of project id.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (models.Project, error) {
	in, err := normalizeProject(in)
	if err != nil {
		return models.Project{}, err
	}
	err = s.repo.Update(ctx, models.Project{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Images:      in.Images,
		Category:    in.Category,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return models.Project{}, err
	}
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.Project{}, err
	}
	p.Images = s.absoluteImages(p.Images)
	return p, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// absoluteImages prefixes upload paths with the public URL; external URLs pass through.
func (s *ProjectService) absoluteImages(images []string) []string {
	out := make([]string, len(images))
	for i, img := range images {
		if strings.HasPrefix(img, models.UploadPrefix) {
			img = s.publicURL + img
		}
		out[i] = img
	}
	return out
}

func normalizeProject(in models.ProjectInput) (models.ProjectInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = models.Category(strings.TrimSpace(string(in.Category)))

	images := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	in.Images = images

	switch {
	case in.Title == "":
		return in, fmt.Errorf("%w: title is required", ErrValidation)
	case in.Description == "":
		return in, fmt.Errorf("%w: description is required", ErrValidation)
	case !in.Category.Valid():
		return in, fmt.Errorf("%w: category %q is not one of Medical, Residential, Commercial", ErrValidation, in.Category)
	case len(in.Images) == 0:
		return in, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	return in, nil
}
