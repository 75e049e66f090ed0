package order

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Numberer reserves the next order number for an organization.
type Numberer interface {
	Next(ctx context.Context, orgID id.ID) (string, error)
}

// Service contains the order business logic.
type Service struct {
	repo      Repository
	numberer  Numberer
	txManager tx.Manager
}

func NewService(repo Repository, numberer Numberer, txManager tx.Manager) *Service {
	return &Service{repo: repo, numberer: numberer, txManager: txManager}
}

// Create records an order atomically. The whole call succeeds or nothing is
// written: every requested product must exist, be active and belong to the
// org, otherwise the transaction rolls back with not found.
//
// Each line snapshots the product name and unit price as they are right now.
func (s *Service) Create(ctx context.Context, orgID id.ID, customer CustomerInfo, lines []LineRequest) (*Order, error) {
	if strings.TrimSpace(customer.Name) == "" {
		return nil, apperror.NewValidation("customer name is required")
	}
	if len(lines) == 0 {
		return nil, apperror.NewValidation("order must contain at least one item")
	}

	productIDs := make([]id.ID, 0, len(lines))
	for i, line := range lines {
		if id.IsNil(line.ProductID) {
			return nil, apperror.NewValidation("order item product id is required").
				WithDetail("index", i)
		}
		if line.Qty <= 0 {
			return nil, apperror.NewValidation("order item qty must be positive").
				WithDetail("index", i).
				WithDetail("qty", line.Qty)
		}
		productIDs = append(productIDs, line.ProductID)
	}

	var created *Order
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		products, err := s.repo.LoadActiveSaleProducts(ctx, orgID, productIDs)
		if err != nil {
			return err
		}

		number, err := s.numberer.Next(ctx, orgID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		order := &Order{
			ID:            id.New(),
			OrgID:         orgID,
			Number:        number,
			CustomerID:    customer.CustomerID,
			CustomerName:  strings.TrimSpace(customer.Name),
			CustomerEmail: customer.Email,
			CustomerPhone: customer.Phone,
			Status:        StatusPending,
			Total:         decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		items := make([]Item, 0, len(lines))
		for _, line := range lines {
			product, ok := products[line.ProductID]
			if !ok {
				return apperror.NewNotFound("sale product", line.ProductID.String())
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(line.Qty))
			items = append(items, Item{
				ID:                  id.New(),
				OrderID:             order.ID,
				ProductID:           product.ID,
				ProductNameSnapshot: product.Name,
				UnitPriceSnapshot:   product.Price,
				Qty:                 line.Qty,
				LineTotal:           lineTotal,
			})
			order.Total = order.Total.Add(lineTotal)
		}

		if err := s.repo.InsertOrder(ctx, order); err != nil {
			return err
		}
		if err := s.repo.InsertItems(ctx, items); err != nil {
			return err
		}

		order.Items = items
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order created",
		"orderId", created.ID,
		"number", created.Number,
		"orgId", orgID,
		"items", len(created.Items),
		"total", created.Total)
	return created, nil
}

// List returns the org's orders, optionally filtered by status.
func (s *Service) List(ctx context.Context, orgID id.ID, status *Status) ([]Order, error) {
	return s.repo.List(ctx, orgID, status)
}

// Get returns one order with its items.
func (s *Service) Get(ctx context.Context, orgID, orderID id.ID) (*Order, error) {
	order, err := s.repo.GetByID(ctx, orgID, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// UpdateStatus transitions a pending order. Orders already in a terminal
// state are not eligible, so the guarded update matches zero rows and the
// caller gets not found, same as for a missing order.
func (s *Service) UpdateStatus(ctx context.Context, orgID, orderID id.ID, status Status, actorID id.ID) (*Order, error) {
	if status == StatusPending {
		return nil, apperror.NewValidation("cannot transition an order back to PENDING")
	}

	var approvedBy *id.ID
	var approvedAt *time.Time
	if status == StatusApproved {
		now := time.Now().UTC()
		approvedBy = &actorID
		approvedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, orgID, orderID, status, approvedBy, approvedAt); err != nil {
		return nil, err
	}

	logger.Info(ctx, "order status updated",
		"orderId", orderID,
		"orgId", orgID,
		"status", status)
	return s.Get(ctx, orgID, orderID)
}

// Delete removes an order and its items.
func (s *Service) Delete(ctx context.Context, orgID, orderID id.ID) error {
	return s.repo.Delete(ctx, orgID, orderID)
}
