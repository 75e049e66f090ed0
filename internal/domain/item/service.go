package item

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/internal/core/types"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Service provides business logic for the item ledger.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Item service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// Create creates an item; the derived cost is computed before the insert so
// the row is born consistent.
func (s *Service) Create(ctx context.Context, orgID id.ID, item *Item) (*Item, error) {
	item.ID = id.New()
	item.OrgID = orgID
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if userID := security.GetUserID(ctx); !id.IsNil(userID) {
		item.CreatedBy = &userID
	}

	if err := item.Validate(ctx); err != nil {
		return nil, err
	}
	item.DeriveCost()

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	logger.Info(ctx, "item created", "id", item.ID, "name", item.Name)
	return item, nil
}

// List returns all items of the organization with unit symbols and category names.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]ListRow, error) {
	return s.repo.List(ctx, orgID)
}

// Get returns one item.
func (s *Service) Get(ctx context.Context, orgID, itemID id.ID) (*Item, error) {
	return s.repo.GetByID(ctx, orgID, itemID)
}

// Update applies a partial update. When the update touches purchase terms,
// the derived cost is recomputed inside the same transaction as the field
// write, so no committed state ever carries a stale cost.
func (s *Service) Update(ctx context.Context, orgID, itemID id.ID, upd Update) (*Item, error) {
	if upd.Empty() {
		return nil, apperror.NewValidation("no valid fields to update")
	}

	var updated *Item
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetForUpdate(ctx, orgID, itemID)
		if err != nil {
			return err
		}

		upd.ApplyTo(existing)
		if err := existing.Validate(ctx); err != nil {
			return err
		}
		existing.DeriveCost()
		existing.UpdatedAt = time.Now().UTC()
		if userID := security.GetUserID(ctx); !id.IsNil(userID) {
			existing.UpdatedBy = &userID
		}

		if err := s.repo.Update(ctx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SetPurchaseTerms updates purchase cost and base quantity per purchase and
// re-derives the unit cost, all in one unit of work.
func (s *Service) SetPurchaseTerms(ctx context.Context, orgID, itemID id.ID, cost, baseQtyPerPurchase types.Money) (*Item, error) {
	return s.Update(ctx, orgID, itemID, Update{
		PurchaseCost:       &cost,
		BaseQtyPerPurchase: &baseQtyPerPurchase,
	})
}

// Delete removes an item.
func (s *Service) Delete(ctx context.Context, orgID, itemID id.ID) error {
	if err := s.repo.Delete(ctx, orgID, itemID); err != nil {
		return err
	}
	logger.Info(ctx, "item deleted", "id", itemID)
	return nil
}

// ListUnits returns the measurement unit reference table.
func (s *Service) ListUnits(ctx context.Context) ([]Unit, error) {
	return s.repo.ListUnits(ctx)
}
