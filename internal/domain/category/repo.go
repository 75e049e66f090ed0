package category

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines the interface for Category persistence.
// Every method is scoped by organization; a lookup outside the caller's
// organization behaves as not found.
type Repository interface {
	Create(ctx context.Context, cat *Category) error
	List(ctx context.Context, orgID id.ID) ([]Category, error)
	GetByID(ctx context.Context, orgID, catID id.ID) (*Category, error)
	UpdateName(ctx context.Context, orgID, catID id.ID, name string) (*Category, error)
	Delete(ctx context.Context, orgID, catID id.ID) error
}
