package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

func TestDeriveCost(t *testing.T) {
	i := Item{
		PurchaseCost:       types.MustMoney("12.00"),
		BaseQtyPerPurchase: types.MustMoney("4"),
	}
	i.DeriveCost()
	assert.True(t, i.CostPerBaseUnit.Valid)
	assert.True(t, i.CostPerBaseUnit.Decimal.Equal(types.MustMoney("3")))
}

func TestDeriveCost_ZeroDenominatorUnprices(t *testing.T) {
	i := Item{
		PurchaseCost:       types.MustMoney("12.00"),
		BaseQtyPerPurchase: types.Zero(),
		CostPerBaseUnit:    types.SomeMoney(types.MustMoney("3")),
	}
	i.DeriveCost()
	assert.False(t, i.CostPerBaseUnit.Valid, "zero denominator clears the stored cost")
}

func TestUpdate_ApplyTo_RederivesAfterTermsChange(t *testing.T) {
	i := Item{
		PurchaseCost:       types.MustMoney("12.00"),
		BaseQtyPerPurchase: types.MustMoney("4"),
	}
	i.DeriveCost()

	newCost := types.MustMoney("20.00")
	u := Update{PurchaseCost: &newCost}
	u.ApplyTo(&i)
	i.DeriveCost()

	assert.True(t, i.CostPerBaseUnit.Decimal.Equal(types.MustMoney("5")))
}

func TestUpdate_ApplyTo_LeavesUnsuppliedFields(t *testing.T) {
	catID := id.New()
	i := Item{
		Name:       "Flour",
		CategoryID: &catID,
		Active:     true,
	}

	name := "Bread Flour"
	u := Update{Name: &name}
	u.ApplyTo(&i)

	assert.Equal(t, "Bread Flour", i.Name)
	assert.Equal(t, &catID, i.CategoryID)
	assert.True(t, i.Active)
}

func TestUpdate_Empty(t *testing.T) {
	assert.True(t, Update{}.Empty())

	active := false
	assert.False(t, Update{Active: &active}.Empty())
}

func TestValidate(t *testing.T) {
	valid := Item{
		Name:               "Flour",
		PurchaseUnitID:     id.New(),
		BaseUnitID:         id.New(),
		PurchaseQty:        types.MustMoney("1"),
		PurchaseCost:       types.MustMoney("12.00"),
		BaseQtyPerPurchase: types.MustMoney("4"),
	}
	assert.NoError(t, valid.Validate(t.Context()))

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate(t.Context()))

	negativeCost := valid
	negativeCost.PurchaseCost = types.MustMoney("-1")
	assert.Error(t, negativeCost.Validate(t.Context()))

	// Zero base qty is allowed on write; the derived cost just goes null.
	zeroBase := valid
	zeroBase.BaseQtyPerPurchase = types.Zero()
	assert.NoError(t, zeroBase.Validate(t.Context()))
}
