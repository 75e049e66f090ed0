package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
)

// RecipeLineRequest is one composition entry in a recipe payload.
type RecipeLineRequest struct {
	ItemID   string      `json:"itemId" binding:"required"`
	Qty      types.Money `json:"qty"`
	WastePct types.Money `json:"wastePct"`
}

func (r *RecipeLineRequest) toLine() (recipe.Line, error) {
	itemID, err := id.Parse(r.ItemID)
	if err != nil {
		return recipe.Line{}, invalidID("itemId", r.ItemID)
	}
	return recipe.Line{
		ItemID:   itemID,
		Qty:      r.Qty,
		WastePct: r.WastePct,
	}, nil
}

// CreateRecipeRequest is the request body for creating a recipe.
type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	YieldQty    types.Money         `json:"yieldQty"`
	Items       []RecipeLineRequest `json:"items"`
}

// ToModel converts the DTO to a domain recipe with its lines.
func (r *CreateRecipeRequest) ToModel() (*recipe.Recipe, error) {
	lines := make([]recipe.Line, 0, len(r.Items))
	for _, lr := range r.Items {
		line, err := lr.toLine()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return &recipe.Recipe{
		Name:        r.Name,
		Description: r.Description,
		YieldQty:    r.YieldQty,
		Lines:       lines,
	}, nil
}

// UpdateRecipeRequest is the request body for a partial recipe update.
// Composition lines are managed through the dedicated line endpoints.
type UpdateRecipeRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	YieldQty    *types.Money `json:"yieldQty"`
}

// ToUpdate converts the DTO to the domain partial update.
func (r *UpdateRecipeRequest) ToUpdate() recipe.Update {
	return recipe.Update{
		Name:        r.Name,
		Description: r.Description,
		YieldQty:    r.YieldQty,
	}
}

// UpsertRecipeLineRequest sets qty and waste for one (recipe, item) pair.
type UpsertRecipeLineRequest struct {
	Qty      types.Money `json:"qty"`
	WastePct types.Money `json:"wastePct"`
}
