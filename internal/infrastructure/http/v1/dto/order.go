package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/order"
)

// OrderLineRequest is one requested line in an order payload.
type OrderLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int64  `json:"qty"`
}

// CreateOrderRequest is the request body for recording an order.
type CreateOrderRequest struct {
	CustomerID    *string            `json:"customerId"`
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerEmail *string            `json:"customerEmail"`
	CustomerPhone *string            `json:"customerPhone"`
	Items         []OrderLineRequest `json:"items"`
}

// ToCustomer converts the customer fields.
func (r *CreateOrderRequest) ToCustomer() (order.CustomerInfo, error) {
	customerID, err := parseOptionalID("customerId", r.CustomerID)
	if err != nil {
		return order.CustomerInfo{}, err
	}
	return order.CustomerInfo{
		CustomerID: customerID,
		Name:       r.CustomerName,
		Email:      r.CustomerEmail,
		Phone:      r.CustomerPhone,
	}, nil
}

// ToLines converts the requested lines. Quantity validation happens in the
// service so the whole request is checked before anything is written.
func (r *CreateOrderRequest) ToLines() ([]order.LineRequest, error) {
	lines := make([]order.LineRequest, 0, len(r.Items))
	for _, lr := range r.Items {
		productID, err := id.Parse(lr.ProductID)
		if err != nil {
			return nil, invalidID("productId", lr.ProductID)
		}
		lines = append(lines, order.LineRequest{ProductID: productID, Qty: lr.Qty})
	}
	return lines, nil
}

// UpdateOrderStatusRequest carries the requested lifecycle transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
