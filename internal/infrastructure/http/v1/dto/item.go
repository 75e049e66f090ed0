package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/item"
)

// --- Request DTOs ---

// CreateItemRequest is the request body for creating an inventory item.
type CreateItemRequest struct {
	Name               string      `json:"name" binding:"required"`
	SKU                *string     `json:"sku"`
	CategoryID         *string     `json:"categoryId"`
	PurchaseUnitID     string      `json:"purchaseUnitId" binding:"required"`
	PurchaseQty        types.Money `json:"purchaseQty"`
	PurchaseCost       types.Money `json:"purchaseCost"`
	BaseUnitID         string      `json:"baseUnitId" binding:"required"`
	BaseQtyPerPurchase types.Money `json:"baseQtyPerPurchase"`
	Active             *bool       `json:"active"`
}

// ToModel converts the DTO to a domain item.
func (r *CreateItemRequest) ToModel() (*item.Item, error) {
	purchaseUnitID, err := id.Parse(r.PurchaseUnitID)
	if err != nil {
		return nil, invalidID("purchaseUnitId", r.PurchaseUnitID)
	}
	baseUnitID, err := id.Parse(r.BaseUnitID)
	if err != nil {
		return nil, invalidID("baseUnitId", r.BaseUnitID)
	}
	categoryID, err := parseOptionalID("categoryId", r.CategoryID)
	if err != nil {
		return nil, err
	}

	it := &item.Item{
		Name:               r.Name,
		SKU:                r.SKU,
		CategoryID:         categoryID,
		PurchaseUnitID:     purchaseUnitID,
		PurchaseQty:        r.PurchaseQty,
		PurchaseCost:       r.PurchaseCost,
		BaseUnitID:         baseUnitID,
		BaseQtyPerPurchase: r.BaseQtyPerPurchase,
		Active:             true,
	}
	if r.Active != nil {
		it.Active = *r.Active
	}
	return it, nil
}

// UpdateItemRequest is the request body for a partial item update.
type UpdateItemRequest struct {
	Name               *string      `json:"name"`
	SKU                *string      `json:"sku"`
	CategoryID         *string      `json:"categoryId"`
	PurchaseUnitID     *string      `json:"purchaseUnitId"`
	PurchaseQty        *types.Money `json:"purchaseQty"`
	PurchaseCost       *types.Money `json:"purchaseCost"`
	BaseUnitID         *string      `json:"baseUnitId"`
	BaseQtyPerPurchase *types.Money `json:"baseQtyPerPurchase"`
	Active             *bool        `json:"active"`
}

// ToUpdate converts the DTO to the domain partial update.
func (r *UpdateItemRequest) ToUpdate() (item.Update, error) {
	upd := item.Update{
		Name:               r.Name,
		SKU:                r.SKU,
		PurchaseQty:        r.PurchaseQty,
		PurchaseCost:       r.PurchaseCost,
		BaseQtyPerPurchase: r.BaseQtyPerPurchase,
		Active:             r.Active,
	}

	categoryID, err := parseOptionalID("categoryId", r.CategoryID)
	if err != nil {
		return item.Update{}, err
	}
	upd.CategoryID = categoryID

	if r.PurchaseUnitID != nil {
		unitID, err := id.Parse(*r.PurchaseUnitID)
		if err != nil {
			return item.Update{}, invalidID("purchaseUnitId", *r.PurchaseUnitID)
		}
		upd.PurchaseUnitID = &unitID
	}
	if r.BaseUnitID != nil {
		unitID, err := id.Parse(*r.BaseUnitID)
		if err != nil {
			return item.Update{}, invalidID("baseUnitId", *r.BaseUnitID)
		}
		upd.BaseUnitID = &unitID
	}
	return upd, nil
}
