package item

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines the interface for Item persistence.
// All lookups are scoped by organization: a row owned by another org
// resolves as not found.
type Repository interface {
	Create(ctx context.Context, item *Item) error
	GetByID(ctx context.Context, orgID, itemID id.ID) (*Item, error)

	// GetForUpdate retrieves the item with a row lock, for use inside a
	// transaction that re-derives the cost.
	GetForUpdate(ctx context.Context, orgID, itemID id.ID) (*Item, error)

	List(ctx context.Context, orgID id.ID) ([]ListRow, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, orgID, itemID id.ID) error

	// ListUnits returns the global measurement unit reference table.
	ListUnits(ctx context.Context) ([]Unit, error)
}
