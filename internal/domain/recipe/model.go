// Package recipe provides recipes (bills of material over items) and their
// cost rollup. Costs are composed on read from current item costs, never
// cached, so there is no invalidation protocol to get wrong.
package recipe

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

// Recipe is a bill of material with a yield quantity in base units.
type Recipe struct {
	ID          id.ID       `db:"id" json:"id"`
	OrgID       id.ID       `db:"org_id" json:"orgId"`
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	YieldQty    types.Money `db:"yield_qty" json:"yieldQty"`

	CreatedBy *id.ID    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy *id.ID    `db:"updated_by" json:"updatedBy,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	// Lines is the composition set, loaded with current item costs.
	Lines []Line `db:"-" json:"items"`
}

// Line is one composition entry, unique per (recipe_id, item_id).
// WastePct is stored per line but deliberately not folded into the cost
// formula; see DESIGN.md for the open question around its semantics.
type Line struct {
	RecipeID id.ID       `db:"recipe_id" json:"recipeId"`
	ItemID   id.ID       `db:"item_id" json:"itemId"`
	Qty      types.Money `db:"qty" json:"qty"`
	WastePct types.Money `db:"waste_pct" json:"wastePct"`

	// Joined from the item ledger at load time.
	ItemName        string          `db:"item_name" json:"itemName"`
	CostPerBaseUnit types.NullMoney `db:"cost_per_base_unit" json:"costPerBaseUnit"`
}

// CostBreakdown is the result of a recipe cost rollup.
type CostBreakdown struct {
	TotalCost        types.NullMoney `json:"totalRecipeCost"`
	CostPerUnitYield types.NullMoney `json:"recipeCostPerUnitYield"`
}

// ComposeCost rolls the current line set up into a total cost and a
// yield-normalized unit cost. It is a pure function of the loaded lines:
// total = Σ qty × item cost per base unit, per-unit = total / yield.
// An unpriced item makes the whole rollup unpriced (null, not zero);
// a zero yield makes the per-unit cost null.
func (r *Recipe) ComposeCost() CostBreakdown {
	lineCosts := make([]types.NullMoney, len(r.Lines))
	for i, line := range r.Lines {
		lineCosts[i] = line.Cost()
	}
	total := types.SumNull(lineCosts...)
	return CostBreakdown{
		TotalCost:        total,
		CostPerUnitYield: types.DivNull(total, r.YieldQty),
	}
}

// Cost returns this line's contribution: qty × item unit cost.
func (l Line) Cost() types.NullMoney {
	return types.MulNull(l.Qty, l.CostPerBaseUnit)
}

// Validate implements field validation for create.
func (r *Recipe) Validate(ctx context.Context) error {
	if r.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if r.YieldQty.IsNegative() {
		return apperror.NewValidation("yield quantity cannot be negative").
			WithDetail("field", "yieldQty")
	}
	for _, line := range r.Lines {
		if err := validateLine(line.ItemID, line.Qty); err != nil {
			return err
		}
	}
	return nil
}

func validateLine(itemID id.ID, qty types.Money) error {
	if id.IsNil(itemID) {
		return apperror.NewValidation("line item is required").
			WithDetail("field", "itemId")
	}
	if !qty.IsPositive() {
		return apperror.NewValidation("line quantity must be positive").
			WithDetail("field", "qty").
			WithDetail("itemId", itemID.String())
	}
	return nil
}

// Update carries a partial field set for recipe updates.
type Update struct {
	Name        *string
	Description *string
	YieldQty    *types.Money
}

// Empty reports whether no field was supplied.
func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil && u.YieldQty == nil
}
