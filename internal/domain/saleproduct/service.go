package saleproduct

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Service provides business logic for the sale catalog.
type Service struct {
	repo Repository
}

// NewService creates a new SaleProduct service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a sale product.
func (s *Service) Create(ctx context.Context, orgID id.ID, p *SaleProduct) (*SaleProduct, error) {
	p.ID = id.New()
	p.OrgID = orgID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	if err := p.Validate(ctx); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info(ctx, "sale product created", "id", p.ID, "name", p.Name)
	return p, nil
}

// List returns all sale products of the organization.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]SaleProduct, error) {
	return s.repo.List(ctx, orgID)
}

// Get returns one sale product.
func (s *Service) Get(ctx context.Context, orgID, productID id.ID) (*SaleProduct, error) {
	return s.repo.GetByID(ctx, orgID, productID)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, orgID, productID id.ID, upd Update) (*SaleProduct, error) {
	if upd.Empty() {
		return nil, apperror.NewValidation("no valid fields to update")
	}

	p, err := s.repo.GetByID(ctx, orgID, productID)
	if err != nil {
		return nil, err
	}
	upd.ApplyTo(p)
	if err := p.Validate(ctx); err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a sale product. Existing orders keep their snapshots.
func (s *Service) Delete(ctx context.Context, orgID, productID id.ID) error {
	return s.repo.Delete(ctx, orgID, productID)
}
