// Package order provides orders: immutable snapshots of a sale transaction.
// An order freezes the sale product name and price at creation time; later
// catalog edits never reach back into it.
package order

import (
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
)

// Status is the order lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return Status(s), nil
	}
	return "", apperror.NewValidation("invalid order status").
		WithDetail("status", s)
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Order is the sale transaction header.
type Order struct {
	ID     id.ID  `db:"id" json:"id"`
	OrgID  id.ID  `db:"org_id" json:"orgId"`
	Number string `db:"number" json:"number"`

	CustomerID    *id.ID  `db:"customer_id" json:"customerId,omitempty"`
	CustomerName  string  `db:"customer_name" json:"customerName"`
	CustomerEmail *string `db:"customer_email" json:"customerEmail,omitempty"`
	CustomerPhone *string `db:"customer_phone" json:"customerPhone,omitempty"`

	Status Status      `db:"status" json:"status"`
	Total  types.Money `db:"total" json:"total"`

	ApprovedBy *id.ID     `db:"approved_by" json:"approvedBy,omitempty"`
	ApprovedAt *time.Time `db:"approved_at" json:"approvedAt,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`

	Items []Item `db:"-" json:"items,omitempty"`
}

// Item is one immutable order line. The name and unit price are snapshots
// taken at order creation and never updated afterwards.
type Item struct {
	ID                  id.ID       `db:"id" json:"id"`
	OrderID             id.ID       `db:"order_id" json:"orderId"`
	ProductID           id.ID       `db:"product_id" json:"productId"`
	ProductNameSnapshot string      `db:"product_name_snapshot" json:"productNameSnapshot"`
	UnitPriceSnapshot   types.Money `db:"unit_price_snapshot" json:"unitPriceSnapshot"`
	Qty                 int64       `db:"qty" json:"qty"`
	LineTotal           types.Money `db:"line_total" json:"lineTotal"`
}

// LineRequest is one requested line in a create call.
type LineRequest struct {
	ProductID id.ID
	Qty       int64
}

// CustomerInfo carries the customer fields of a create call.
type CustomerInfo struct {
	CustomerID *id.ID
	Name       string
	Email      *string
	Phone      *string
}
