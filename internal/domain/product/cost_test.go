package product

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
)

func component(qty, unitCost string) recipe.Line {
	l := recipe.Line{ItemID: id.New(), Qty: types.MustMoney(qty)}
	if unitCost != "" {
		l.CostPerBaseUnit = types.SomeMoney(types.MustMoney(unitCost))
	}
	return l
}

func itemLine(qty, unitCost string) ItemLine {
	l := ItemLine{ItemID: id.New(), Qty: types.MustMoney(qty)}
	if unitCost != "" {
		l.CostPerBaseUnit = types.SomeMoney(types.MustMoney(unitCost))
	}
	return l
}

func TestComposeCost_TwoLevelRollup(t *testing.T) {
	// Recipe: 10 units at 3.00 each = 30.00 batch, yield 5 => 6.00 per unit.
	// Product consumes 2 units of yield (12.00) plus 3 direct items at 0.50 (1.50).
	p := FinishedProduct{
		RecipeLines: []RecipeLine{{
			RecipeID:   id.New(),
			Qty:        types.MustMoney("2"),
			YieldQty:   types.MustMoney("5"),
			Components: []recipe.Line{component("10", "3.00")},
		}},
		ItemLines: []ItemLine{itemLine("3", "0.50")},
	}

	got := p.ComposeCost()
	assert.True(t, got.RecipesCost.Decimal.Equal(types.MustMoney("12.00")))
	assert.True(t, got.DirectItemsCost.Decimal.Equal(types.MustMoney("1.50")))
	assert.True(t, got.TotalCost.Decimal.Equal(types.MustMoney("13.50")))
}

func TestComposeCost_TotalIsExactSumOfParts(t *testing.T) {
	p := FinishedProduct{
		RecipeLines: []RecipeLine{{
			Qty:        types.MustMoney("0.3"),
			YieldQty:   types.MustMoney("7"),
			Components: []recipe.Line{component("1", "0.1")},
		}},
		ItemLines: []ItemLine{itemLine("0.2", "0.1")},
	}

	got := p.ComposeCost()
	assert.True(t, got.TotalCost.Decimal.Equal(
		got.DirectItemsCost.Decimal.Add(got.RecipesCost.Decimal)))
}

func TestComposeCost_UnpricedRecipeComponent(t *testing.T) {
	p := FinishedProduct{
		RecipeLines: []RecipeLine{{
			Qty:        types.MustMoney("2"),
			YieldQty:   types.MustMoney("5"),
			Components: []recipe.Line{component("10", "")},
		}},
		ItemLines: []ItemLine{itemLine("3", "0.50")},
	}

	got := p.ComposeCost()
	assert.False(t, got.RecipesCost.Valid)
	assert.True(t, got.DirectItemsCost.Valid, "direct side stays priced")
	assert.False(t, got.TotalCost.Valid, "unpriced side nulls the total")
}

func TestComposeCost_ZeroYieldRecipe(t *testing.T) {
	p := FinishedProduct{
		RecipeLines: []RecipeLine{{
			Qty:        types.MustMoney("2"),
			YieldQty:   types.Zero(),
			Components: []recipe.Line{component("10", "3.00")},
		}},
	}

	got := p.ComposeCost()
	assert.False(t, got.RecipesCost.Valid, "a yieldless recipe has no per-unit cost to scale")
	assert.False(t, got.TotalCost.Valid)
}

func TestComposeCost_EmptyProduct(t *testing.T) {
	p := FinishedProduct{}

	got := p.ComposeCost()
	assert.True(t, got.TotalCost.Valid)
	assert.True(t, got.TotalCost.Decimal.IsZero())
}

func TestRecipeLine_TotalRecipeCost(t *testing.T) {
	l := RecipeLine{
		Qty:        types.MustMoney("2"),
		YieldQty:   types.MustMoney("5"),
		Components: []recipe.Line{component("10", "3.00")},
	}

	total := l.TotalRecipeCost()
	assert.True(t, total.Decimal.Equal(types.MustMoney("30.00")))

	perUnit := l.UnitYieldCost()
	assert.True(t, perUnit.Decimal.Equal(types.MustMoney("6.00")))
}

func TestUpdate_NilVersusEmptyLines(t *testing.T) {
	var untouched Update
	assert.True(t, untouched.Empty())
	assert.Nil(t, untouched.ItemLines)

	clearItems := Update{ItemLines: &[]ItemLine{}}
	assert.False(t, clearItems.Empty())
	assert.NotNil(t, clearItems.ItemLines)
	assert.Len(t, *clearItems.ItemLines, 0)
}
