package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

func line(qty, unitCost string) Line {
	l := Line{
		RecipeID: id.New(),
		ItemID:   id.New(),
		Qty:      types.MustMoney(qty),
	}
	if unitCost != "" {
		l.CostPerBaseUnit = types.SomeMoney(types.MustMoney(unitCost))
	}
	return l
}

func TestComposeCost_Rollup(t *testing.T) {
	// Flour bought at 12.00 per 4 base units costs 3.00 each.
	// 10 units in a batch of 5 loaves: 30.00 total, 6.00 per loaf.
	r := Recipe{
		YieldQty: types.MustMoney("5"),
		Lines:    []Line{line("10", "3.00")},
	}

	got := r.ComposeCost()
	assert.True(t, got.TotalCost.Valid)
	assert.True(t, got.TotalCost.Decimal.Equal(types.MustMoney("30.00")))
	assert.True(t, got.CostPerUnitYield.Valid)
	assert.True(t, got.CostPerUnitYield.Decimal.Equal(types.MustMoney("6.00")))
}

func TestComposeCost_MultipleLines(t *testing.T) {
	r := Recipe{
		YieldQty: types.MustMoney("2"),
		Lines: []Line{
			line("2", "1.25"),  // 2.50
			line("1", "0.50"),  // 0.50
			line("4", "0.075"), // 0.30
		},
	}

	got := r.ComposeCost()
	assert.True(t, got.TotalCost.Decimal.Equal(types.MustMoney("3.30")))
	assert.True(t, got.CostPerUnitYield.Decimal.Equal(types.MustMoney("1.65")))
}

func TestComposeCost_UnpricedItemPropagates(t *testing.T) {
	r := Recipe{
		YieldQty: types.MustMoney("5"),
		Lines: []Line{
			line("10", "3.00"),
			line("2", ""), // unpriced item
		},
	}

	got := r.ComposeCost()
	assert.False(t, got.TotalCost.Valid, "unpriced item must null the total, not zero it")
	assert.False(t, got.CostPerUnitYield.Valid)
}

func TestComposeCost_ZeroYield(t *testing.T) {
	r := Recipe{
		YieldQty: types.Zero(),
		Lines:    []Line{line("10", "3.00")},
	}

	got := r.ComposeCost()
	assert.True(t, got.TotalCost.Valid, "total is still priced")
	assert.True(t, got.TotalCost.Decimal.Equal(types.MustMoney("30.00")))
	assert.False(t, got.CostPerUnitYield.Valid, "zero yield has no per-unit cost")
}

func TestComposeCost_EmptyRecipe(t *testing.T) {
	r := Recipe{YieldQty: types.MustMoney("5")}

	got := r.ComposeCost()
	assert.True(t, got.TotalCost.Valid)
	assert.True(t, got.TotalCost.Decimal.IsZero())
}

func TestComposeCost_WasteIsNotCosted(t *testing.T) {
	withWaste := Recipe{
		YieldQty: types.MustMoney("5"),
		Lines:    []Line{line("10", "3.00")},
	}
	withWaste.Lines[0].WastePct = types.MustMoney("15")

	without := Recipe{
		YieldQty: types.MustMoney("5"),
		Lines:    []Line{line("10", "3.00")},
	}

	assert.True(t,
		withWaste.ComposeCost().TotalCost.Decimal.Equal(without.ComposeCost().TotalCost.Decimal),
		"waste percentage is recorded but never changes the rollup")
}

func TestComposeCost_Pure(t *testing.T) {
	r := Recipe{
		YieldQty: types.MustMoney("5"),
		Lines:    []Line{line("10", "3.00")},
	}

	first := r.ComposeCost()
	second := r.ComposeCost()
	assert.True(t, first.TotalCost.Decimal.Equal(second.TotalCost.Decimal))
	assert.True(t, r.Lines[0].Qty.Equal(types.MustMoney("10")), "rollup must not mutate lines")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{
			name:   "valid",
			recipe: Recipe{Name: "Sourdough", YieldQty: types.MustMoney("5"), Lines: []Line{line("10", "3.00")}},
		},
		{
			name:    "missing name",
			recipe:  Recipe{YieldQty: types.MustMoney("5")},
			wantErr: true,
		},
		{
			name:    "negative yield",
			recipe:  Recipe{Name: "Sourdough", YieldQty: types.MustMoney("-1")},
			wantErr: true,
		},
		{
			name: "zero line qty",
			recipe: Recipe{Name: "Sourdough", YieldQty: types.MustMoney("5"),
				Lines: []Line{line("0", "3.00")}},
			wantErr: true,
		},
		{
			name: "nil line item",
			recipe: Recipe{Name: "Sourdough", YieldQty: types.MustMoney("5"),
				Lines: []Line{{Qty: types.MustMoney("1")}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate(t.Context())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
