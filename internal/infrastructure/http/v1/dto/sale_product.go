package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
)

// CreateSaleProductRequest is the request body for creating a sale product.
type CreateSaleProductRequest struct {
	Name        string      `json:"name" binding:"required"`
	Description *string     `json:"description"`
	Price       types.Money `json:"price"`
	Currency    string      `json:"currency"`
	Active      *bool       `json:"active"`
	StockQty    *int64      `json:"stockQty"`
}

// ToModel converts the DTO to a domain sale product.
func (r *CreateSaleProductRequest) ToModel() *saleproduct.SaleProduct {
	p := &saleproduct.SaleProduct{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		Active:      true,
		StockQty:    r.StockQty,
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	return p
}

// UpdateSaleProductRequest is the request body for a partial update.
type UpdateSaleProductRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Price       *types.Money `json:"price"`
	Currency    *string      `json:"currency"`
	Active      *bool        `json:"active"`
	StockQty    *int64       `json:"stockQty"`
}

// ToUpdate converts the DTO to the domain partial update.
func (r *UpdateSaleProductRequest) ToUpdate() saleproduct.Update {
	return saleproduct.Update{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Currency:    r.Currency,
		Active:      r.Active,
		StockQty:    r.StockQty,
	}
}
