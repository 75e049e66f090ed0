// Package product provides finished products and their two-level cost rollup:
// direct items plus items-via-recipes, each recipe normalized to cost per
// unit of yield before being scaled by the quantity the product consumes.
package product

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
)

// FinishedProduct composes recipes and items directly.
type FinishedProduct struct {
	ID          id.ID  `db:"id" json:"id"`
	OrgID       id.ID  `db:"org_id" json:"orgId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	CreatedBy *id.ID    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy *id.ID    `db:"updated_by" json:"updatedBy,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	RecipeLines []RecipeLine `db:"-" json:"recipes"`
	ItemLines   []ItemLine   `db:"-" json:"items"`
}

// RecipeLine consumes a quantity of a recipe's yield.
type RecipeLine struct {
	ProductID id.ID       `db:"product_id" json:"productId"`
	RecipeID  id.ID       `db:"recipe_id" json:"recipeId"`
	Qty       types.Money `db:"qty" json:"qty"`

	// Joined from the recipe at load time.
	RecipeName string      `db:"recipe_name" json:"recipeName"`
	YieldQty   types.Money `db:"yield_qty" json:"yieldQty"`

	// Components are the recipe's own lines with current item costs,
	// loaded for the breakdown view.
	Components []recipe.Line `db:"-" json:"items,omitempty"`
}

// ItemLine consumes a quantity of an item directly.
type ItemLine struct {
	ProductID id.ID       `db:"product_id" json:"productId"`
	ItemID    id.ID       `db:"item_id" json:"itemId"`
	Qty       types.Money `db:"qty" json:"qty"`

	// Joined from the item ledger at load time.
	ItemName        string          `db:"item_name" json:"itemName"`
	CostPerBaseUnit types.NullMoney `db:"cost_per_base_unit" json:"costPerBaseUnit"`
}

// CostBreakdown is the result of a product cost rollup.
// TotalCost is exactly DirectItemsCost + RecipesCost (decimal arithmetic).
type CostBreakdown struct {
	DirectItemsCost types.NullMoney `json:"directItemsCost"`
	RecipesCost     types.NullMoney `json:"recipesCost"`
	TotalCost       types.NullMoney `json:"totalCost"`
}

// recipeRollup builds the underlying recipe's cost rollup for this line.
func (l RecipeLine) recipeRollup() recipe.CostBreakdown {
	r := recipe.Recipe{YieldQty: l.YieldQty, Lines: l.Components}
	return r.ComposeCost()
}

// UnitYieldCost returns the recipe's cost per unit of yield.
func (l RecipeLine) UnitYieldCost() types.NullMoney {
	return l.recipeRollup().CostPerUnitYield
}

// Cost returns this line's contribution: qty consumed × cost per unit yield.
func (l RecipeLine) Cost() types.NullMoney {
	return types.MulNull(l.Qty, l.UnitYieldCost())
}

// TotalRecipeCost returns the full cost of one batch of the recipe.
func (l RecipeLine) TotalRecipeCost() types.NullMoney {
	return l.recipeRollup().TotalCost
}

// Cost returns this line's contribution: qty × item unit cost.
func (l ItemLine) Cost() types.NullMoney {
	return types.MulNull(l.Qty, l.CostPerBaseUnit)
}

// ComposeCost rolls both composition sets up. Null (unpriced) propagates:
// one unpriced component makes its side of the sum, and the total, unpriced.
func (p *FinishedProduct) ComposeCost() CostBreakdown {
	itemCosts := make([]types.NullMoney, len(p.ItemLines))
	for i, line := range p.ItemLines {
		itemCosts[i] = line.Cost()
	}
	recipeCosts := make([]types.NullMoney, len(p.RecipeLines))
	for i, line := range p.RecipeLines {
		recipeCosts[i] = line.Cost()
	}

	direct := types.SumNull(itemCosts...)
	recipes := types.SumNull(recipeCosts...)
	return CostBreakdown{
		DirectItemsCost: direct,
		RecipesCost:     recipes,
		TotalCost:       types.AddNull(direct, recipes),
	}
}

// Validate implements field validation for create.
func (p *FinishedProduct) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	for _, line := range p.RecipeLines {
		if id.IsNil(line.RecipeID) {
			return apperror.NewValidation("recipe line requires a recipe").
				WithDetail("field", "recipeId")
		}
		if !line.Qty.IsPositive() {
			return apperror.NewValidation("recipe line quantity must be positive").
				WithDetail("recipeId", line.RecipeID.String())
		}
	}
	for _, line := range p.ItemLines {
		if id.IsNil(line.ItemID) {
			return apperror.NewValidation("item line requires an item").
				WithDetail("field", "itemId")
		}
		if !line.Qty.IsPositive() {
			return apperror.NewValidation("item line quantity must be positive").
				WithDetail("itemId", line.ItemID.String())
		}
	}
	return nil
}

// Update carries a partial update of product fields and composition.
// Nil slices mean "leave that line set untouched"; a non-nil empty slice
// means "remove all lines of that kind". The two are deliberately distinct.
type Update struct {
	Name        *string
	Description *string
	RecipeLines *[]RecipeLine
	ItemLines   *[]ItemLine
}

// Empty reports whether neither fields nor composition were supplied.
func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil &&
		u.RecipeLines == nil && u.ItemLines == nil
}
