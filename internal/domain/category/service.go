package category

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Service provides business logic for the category catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Category service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a category.
func (s *Service) Create(ctx context.Context, orgID id.ID, name string) (*Category, error) {
	cat := NewCategory(orgID, name)
	if err := cat.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	logger.Info(ctx, "category created", "id", cat.ID, "name", cat.Name)
	return cat, nil
}

// List returns all categories of the organization.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]Category, error) {
	return s.repo.List(ctx, orgID)
}

// Get returns one category.
func (s *Service) Get(ctx context.Context, orgID, catID id.ID) (*Category, error) {
	return s.repo.GetByID(ctx, orgID, catID)
}

// Update renames a category.
func (s *Service) Update(ctx context.Context, orgID, catID id.ID, name string) (*Category, error) {
	if name == "" {
		return nil, apperror.NewValidation("no valid fields to update")
	}
	return s.repo.UpdateName(ctx, orgID, catID, name)
}

// Delete removes a category.
func (s *Service) Delete(ctx context.Context, orgID, catID id.ID) error {
	return s.repo.Delete(ctx, orgID, catID)
}
