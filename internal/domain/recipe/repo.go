package recipe

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines the interface for Recipe persistence.
// Org-scoped throughout; line reads join current item costs so the cost
// rollup always reflects the ledger at query time.
type Repository interface {
	Create(ctx context.Context, r *Recipe) error
	SaveLines(ctx context.Context, recipeID id.ID, lines []Line) error

	GetByID(ctx context.Context, orgID, recipeID id.ID) (*Recipe, error)
	List(ctx context.Context, orgID id.ID) ([]Recipe, error)
	GetLines(ctx context.Context, orgID, recipeID id.ID) ([]Line, error)

	Update(ctx context.Context, r *Recipe) error
	Delete(ctx context.Context, orgID, recipeID id.ID) error

	// UpsertLine inserts or replaces the line keyed by (recipe_id, item_id).
	UpsertLine(ctx context.Context, line Line) error
	DeleteLine(ctx context.Context, orgID, recipeID, itemID id.ID) error

	Exists(ctx context.Context, orgID, recipeID id.ID) (bool, error)
}
