package service

import (
	"context"
	"fmt"
	"strings"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/repository"
)

// AdminSeed is the credential created when no admin with Username exists.
type AdminSeed struct {
	Username string
	Password string
	Email    string
}

type BootstrapService struct {
	authRepo    repository.Authorization
	projectRepo repository.ProjectRepo
}

func NewBootstrapService(authRepo repository.Authorization, projectRepo repository.ProjectRepo) *BootstrapService {
	return &BootstrapService{authRepo: authRepo, projectRepo: projectRepo}
}

// SeedAdmin creates the admin if absent and reports whether it did.
func (s *BootstrapService) SeedAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	username := strings.TrimSpace(seed.Username)
	if username == "" {
		return false, fmt.Errorf("%w: admin username is required", ErrValidation)
	}
	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := hashPassword(seed.Password)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.authRepo.Create(ctx, username, hash, strings.ToLower(strings.TrimSpace(seed.Email))); err != nil {
		return false, err
	}
	return true, nil
}

var sampleProjects = []models.ProjectInput{
	{
		Title:       "Modern MRI Suite",
		Description: "Complete MRI room design with RF shielding and patient comfort features",
		Images: []string{
			"https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=600&fit=crop",
		},
		Category: models.CategoryMedical,
	},
	{
		Title:       "Luxury Residential Interior",
		Description: "Warm and elegant living space with custom furnishings",
		Images: []string{
			"https://images.unsplash.com/photo-1721322800607-8c38375eef04?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=800&h=600&fit=crop",
		},
		Category: models.CategoryResidential,
	},
}

// SeedSampleProjects inserts the showcase projects into an empty table.
func (s *BootstrapService) SeedSampleProjects(ctx context.Context) (int, error) {
	n, err := s.projectRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, in := range sampleProjects {
		p := models.Project{Title: in.Title, Description: in.Description, Images: in.Images, Category: in.Category}
		if err := s.projectRepo.Create(ctx, p); err != nil {
			return i, err
		}
	}
	return len(sampleProjects), nil
}

func (s *BootstrapService) MigrateLegacyImages(ctx context.Context) (int, error) {
	return s.projectRepo.MigrateLegacyImages(ctx)
}
