// Package item provides the purchasable item ledger, the authoritative source
// of unit costs for the recipe and product rollups.
package item

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

// Unit is a measurement unit from the global reference table.
type Unit struct {
	ID     id.ID  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Symbol string `db:"symbol" json:"symbol"`
}

// Item is a purchasable item. CostPerBaseUnit is derived, never set directly:
// it is re-derived from the purchase terms within the same unit of work as any
// update that touches them, so readers never observe a stale committed cost.
type Item struct {
	ID    id.ID   `db:"id" json:"id"`
	OrgID id.ID   `db:"org_id" json:"orgId"`
	Name  string  `db:"name" json:"name"`
	SKU   *string `db:"sku" json:"sku,omitempty"`

	CategoryID *id.ID `db:"category_id" json:"categoryId,omitempty"`

	// Purchase terms
	PurchaseUnitID id.ID       `db:"purchase_unit_id" json:"purchaseUnitId"`
	PurchaseQty    types.Money `db:"purchase_qty" json:"purchaseQty"`
	PurchaseCost   types.Money `db:"purchase_cost" json:"purchaseCost"`

	// Base measurement
	BaseUnitID         id.ID       `db:"base_unit_id" json:"baseUnitId"`
	BaseQtyPerPurchase types.Money `db:"base_qty_per_purchase" json:"baseQtyPerPurchase"`

	// CostPerBaseUnit = PurchaseCost / BaseQtyPerPurchase, null when the
	// denominator is zero ("unpriced").
	CostPerBaseUnit types.NullMoney `db:"cost_per_base_unit" json:"costPerBaseUnit"`

	Active bool `db:"active" json:"active"`

	CreatedBy *id.ID    `db:"created_by" json:"createdBy,omitempty"`
	UpdatedBy *id.ID    `db:"updated_by" json:"updatedBy,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// ListRow is the denormalized shape returned by List.
type ListRow struct {
	ID              id.ID           `db:"id" json:"id"`
	Name            string          `db:"name" json:"name"`
	SKU             *string         `db:"sku" json:"sku,omitempty"`
	PurchaseCost    types.Money     `db:"purchase_cost" json:"purchaseCost"`
	Active          bool            `db:"active" json:"active"`
	CostPerBaseUnit types.NullMoney `db:"cost_per_base_unit" json:"costPerBaseUnit"`
	PurchaseUnit    string          `db:"purchase_unit" json:"purchaseUnit"`
	BaseUnit        string          `db:"base_unit" json:"baseUnit"`
	CategoryName    *string         `db:"category_name" json:"categoryName,omitempty"`
}

// DeriveCost recomputes CostPerBaseUnit from the purchase terms.
// Must be called whenever PurchaseCost or BaseQtyPerPurchase change,
// before the row is persisted.
func (i *Item) DeriveCost() {
	i.CostPerBaseUnit = types.DeriveUnitCost(i.PurchaseCost, i.BaseQtyPerPurchase)
}

// Validate implements field validation for create.
func (i *Item) Validate(ctx context.Context) error {
	if i.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if id.IsNil(i.PurchaseUnitID) {
		return apperror.NewValidation("purchase unit is required").
			WithDetail("field", "purchaseUnitId")
	}
	if id.IsNil(i.BaseUnitID) {
		return apperror.NewValidation("base unit is required").
			WithDetail("field", "baseUnitId")
	}
	if i.PurchaseQty.IsNegative() {
		return apperror.NewValidation("purchase quantity cannot be negative").
			WithDetail("field", "purchaseQty")
	}
	if i.PurchaseCost.IsNegative() {
		return apperror.NewValidation("purchase cost cannot be negative").
			WithDetail("field", "purchaseCost")
	}
	if i.BaseQtyPerPurchase.IsNegative() {
		return apperror.NewValidation("base quantity per purchase cannot be negative").
			WithDetail("field", "baseQtyPerPurchase")
	}
	return nil
}

// Update carries a partial field set for item updates. Nil pointers mean
// "field not supplied". Mutable fields form an explicit allow-list; anything
// else on the row is not reachable from input.
type Update struct {
	Name               *string
	SKU                *string
	CategoryID         *id.ID
	PurchaseUnitID     *id.ID
	PurchaseQty        *types.Money
	PurchaseCost       *types.Money
	BaseUnitID         *id.ID
	BaseQtyPerPurchase *types.Money
	Active             *bool
}

// Empty reports whether no field was supplied.
func (u Update) Empty() bool {
	return u.Name == nil && u.SKU == nil && u.CategoryID == nil &&
		u.PurchaseUnitID == nil && u.PurchaseQty == nil && u.PurchaseCost == nil &&
		u.BaseUnitID == nil && u.BaseQtyPerPurchase == nil && u.Active == nil
}

// ApplyTo writes the supplied fields onto the item.
func (u Update) ApplyTo(i *Item) {
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.SKU != nil {
		i.SKU = u.SKU
	}
	if u.CategoryID != nil {
		i.CategoryID = u.CategoryID
	}
	if u.PurchaseUnitID != nil {
		i.PurchaseUnitID = *u.PurchaseUnitID
	}
	if u.PurchaseQty != nil {
		i.PurchaseQty = *u.PurchaseQty
	}
	if u.PurchaseCost != nil {
		i.PurchaseCost = *u.PurchaseCost
	}
	if u.BaseUnitID != nil {
		i.BaseUnitID = *u.BaseUnitID
	}
	if u.BaseQtyPerPurchase != nil {
		i.BaseQtyPerPurchase = *u.BaseQtyPerPurchase
	}
	if u.Active != nil {
		i.Active = *u.Active
	}
}
