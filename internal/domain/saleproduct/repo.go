package saleproduct

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines the interface for SaleProduct persistence, org-scoped.
type Repository interface {
	Create(ctx context.Context, p *SaleProduct) error
	List(ctx context.Context, orgID id.ID) ([]SaleProduct, error)
	GetByID(ctx context.Context, orgID, productID id.ID) (*SaleProduct, error)
	Update(ctx context.Context, p *SaleProduct) error
	Delete(ctx context.Context, orgID, productID id.ID) error
}
