// Package saleproduct provides the customer-facing sale catalog.
// Price is a policy value set by the organization, independent of the
// cost rollup on the production side.
package saleproduct

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

// SaleProduct is a catalog entry offered to customers.
type SaleProduct struct {
	ID          id.ID       `db:"id" json:"id"`
	OrgID       id.ID       `db:"org_id" json:"orgId"`
	Name        string      `db:"name" json:"name"`
	Description *string     `db:"description" json:"description,omitempty"`
	Price       types.Money `db:"price" json:"price"`
	Currency    string      `db:"currency" json:"currency"`
	Active      bool        `db:"active" json:"active"`
	StockQty    *int64      `db:"stock_qty" json:"stockQty,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// DefaultCurrency is used when a sale product is created without one.
const DefaultCurrency = "USD"

// NewSaleProduct creates a sale product with defaults applied.
func NewSaleProduct(orgID id.ID, name string, price types.Money) *SaleProduct {
	now := time.Now().UTC()
	return &SaleProduct{
		ID:        id.New(),
		OrgID:     orgID,
		Name:      name,
		Price:     price,
		Currency:  DefaultCurrency,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate implements field validation.
func (p *SaleProduct) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "price")
	}
	if p.Currency == "" {
		return apperror.NewValidation("currency is required").
			WithDetail("field", "currency")
	}
	return nil
}

// Update carries a partial field set for sale product updates.
type Update struct {
	Name        *string
	Description *string
	Price       *types.Money
	Currency    *string
	Active      *bool
	StockQty    *int64
}

// Empty reports whether no field was supplied.
func (u Update) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil &&
		u.Currency == nil && u.Active == nil && u.StockQty == nil
}

// ApplyTo writes the supplied fields onto the product.
func (u Update) ApplyTo(p *SaleProduct) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Currency != nil {
		p.Currency = *u.Currency
	}
	if u.Active != nil {
		p.Active = *u.Active
	}
	if u.StockQty != nil {
		p.StockQty = u.StockQty
	}
}
