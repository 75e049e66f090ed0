package product

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines the interface for FinishedProduct persistence.
// Line reads join current item and recipe data so rollups reflect the
// ledger at query time.
type Repository interface {
	Create(ctx context.Context, p *FinishedProduct) error
	GetByID(ctx context.Context, orgID, productID id.ID) (*FinishedProduct, error)
	List(ctx context.Context, orgID id.ID) ([]FinishedProduct, error)

	GetRecipeLines(ctx context.Context, orgID, productID id.ID) ([]RecipeLine, error)
	GetItemLines(ctx context.Context, orgID, productID id.ID) ([]ItemLine, error)

	Update(ctx context.Context, p *FinishedProduct) error
	Delete(ctx context.Context, orgID, productID id.ID) error

	// ReplaceRecipeLines deletes the product's recipe line set and inserts
	// the given one. Caller must run it inside a transaction.
	ReplaceRecipeLines(ctx context.Context, productID id.ID, lines []RecipeLine) error

	// ReplaceItemLines does the same for direct item lines.
	ReplaceItemLines(ctx context.Context, productID id.ID, lines []ItemLine) error

	DeleteRecipeLine(ctx context.Context, orgID, productID, recipeID id.ID) error
	DeleteItemLine(ctx context.Context, orgID, productID, itemID id.ID) error
}
