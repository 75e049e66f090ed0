package order

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
)

// Repository is the storage contract for orders.
type Repository interface {
	// LoadActiveSaleProducts fetches the active sale products with the given
	// ids in a single query, keyed by product id. Missing or inactive
	// products are simply absent from the result.
	LoadActiveSaleProducts(ctx context.Context, orgID id.ID, ids []id.ID) (map[id.ID]saleproduct.SaleProduct, error)

	InsertOrder(ctx context.Context, o *Order) error
	InsertItems(ctx context.Context, items []Item) error

	List(ctx context.Context, orgID id.ID, status *Status) ([]Order, error)
	GetByID(ctx context.Context, orgID, orderID id.ID) (*Order, error)
	GetItems(ctx context.Context, orderID id.ID) ([]Item, error)

	// UpdateStatus moves a PENDING order to the given status, stamping
	// approvedBy/approvedAt when provided. It must affect zero rows when the
	// order is missing, belongs to another org, or is no longer PENDING.
	UpdateStatus(ctx context.Context, orgID, orderID id.ID, status Status, approvedBy *id.ID, approvedAt *time.Time) error

	Delete(ctx context.Context, orgID, orderID id.ID) error
}
