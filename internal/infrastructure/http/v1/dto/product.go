package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/product"
)

// ProductRecipeLineRequest references a recipe in the product composition.
type ProductRecipeLineRequest struct {
	RecipeID string      `json:"recipeId" binding:"required"`
	Qty      types.Money `json:"qty"`
}

// ProductItemLineRequest references a direct item in the composition.
type ProductItemLineRequest struct {
	ItemID string      `json:"itemId" binding:"required"`
	Qty    types.Money `json:"qty"`
}

func toRecipeLines(reqs []ProductRecipeLineRequest) ([]product.RecipeLine, error) {
	lines := make([]product.RecipeLine, 0, len(reqs))
	for _, lr := range reqs {
		recipeID, err := id.Parse(lr.RecipeID)
		if err != nil {
			return nil, invalidID("recipeId", lr.RecipeID)
		}
		lines = append(lines, product.RecipeLine{RecipeID: recipeID, Qty: lr.Qty})
	}
	return lines, nil
}

func toItemLines(reqs []ProductItemLineRequest) ([]product.ItemLine, error) {
	lines := make([]product.ItemLine, 0, len(reqs))
	for _, lr := range reqs {
		itemID, err := id.Parse(lr.ItemID)
		if err != nil {
			return nil, invalidID("itemId", lr.ItemID)
		}
		lines = append(lines, product.ItemLine{ItemID: itemID, Qty: lr.Qty})
	}
	return lines, nil
}

// CreateProductRequest is the request body for creating a finished product.
type CreateProductRequest struct {
	Name        string                     `json:"name" binding:"required"`
	Description string                     `json:"description"`
	Recipes     []ProductRecipeLineRequest `json:"recipes"`
	Items       []ProductItemLineRequest   `json:"items"`
}

// ToModel converts the DTO to a domain product with both line sets.
func (r *CreateProductRequest) ToModel() (*product.FinishedProduct, error) {
	recipeLines, err := toRecipeLines(r.Recipes)
	if err != nil {
		return nil, err
	}
	itemLines, err := toItemLines(r.Items)
	if err != nil {
		return nil, err
	}
	return &product.FinishedProduct{
		Name:        r.Name,
		Description: r.Description,
		RecipeLines: recipeLines,
		ItemLines:   itemLines,
	}, nil
}

// UpdateProductRequest is the request body for a partial product update.
// An absent line set leaves the composition untouched; a present empty set
// clears it.
type UpdateProductRequest struct {
	Name        *string                     `json:"name"`
	Description *string                     `json:"description"`
	Recipes     *[]ProductRecipeLineRequest `json:"recipes"`
	Items       *[]ProductItemLineRequest   `json:"items"`
}

// ToUpdate converts the DTO to the domain partial update, preserving the
// nil-vs-empty distinction on the line sets.
func (r *UpdateProductRequest) ToUpdate() (product.Update, error) {
	upd := product.Update{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Recipes != nil {
		lines, err := toRecipeLines(*r.Recipes)
		if err != nil {
			return product.Update{}, err
		}
		upd.RecipeLines = &lines
	}
	if r.Items != nil {
		lines, err := toItemLines(*r.Items)
		if err != nil {
			return product.Update{}, err
		}
		upd.ItemLines = &lines
	}
	return upd, nil
}
