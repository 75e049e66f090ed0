package product

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Service provides business logic for finished products.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new FinishedProduct service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// WithCost pairs a product with its computed cost rollup.
type WithCost struct {
	FinishedProduct
	CostBreakdown
}

// Create creates a product and both composition sets in one unit of work.
func (s *Service) Create(ctx context.Context, orgID id.ID, p *FinishedProduct) (*FinishedProduct, error) {
	p.ID = id.New()
	p.OrgID = orgID
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if userID := security.GetUserID(ctx); !id.IsNil(userID) {
		p.CreatedBy = &userID
	}
	for i := range p.RecipeLines {
		p.RecipeLines[i].ProductID = p.ID
	}
	for i := range p.ItemLines {
		p.ItemLines[i].ProductID = p.ID
	}

	if err := p.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, p); err != nil {
			return err
		}
		if len(p.RecipeLines) > 0 {
			if err := s.repo.ReplaceRecipeLines(ctx, p.ID, p.RecipeLines); err != nil {
				return err
			}
		}
		if len(p.ItemLines) > 0 {
			if err := s.repo.ReplaceItemLines(ctx, p.ID, p.ItemLines); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "product created", "id", p.ID, "name", p.Name,
		"recipe_lines", len(p.RecipeLines), "item_lines", len(p.ItemLines))
	return p, nil
}

// List returns all products of the organization with computed costs.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]WithCost, error) {
	products, err := s.repo.List(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]WithCost, 0, len(products))
	for _, p := range products {
		loaded, err := s.load(ctx, orgID, p)
		if err != nil {
			return nil, err
		}
		out = append(out, WithCost{FinishedProduct: *loaded, CostBreakdown: loaded.ComposeCost()})
	}
	return out, nil
}

// Get returns one product with its full composition and cost breakdown.
func (s *Service) Get(ctx context.Context, orgID, productID id.ID) (*WithCost, error) {
	p, err := s.repo.GetByID(ctx, orgID, productID)
	if err != nil {
		return nil, err
	}
	loaded, err := s.load(ctx, orgID, *p)
	if err != nil {
		return nil, err
	}
	return &WithCost{FinishedProduct: *loaded, CostBreakdown: loaded.ComposeCost()}, nil
}

// ComposeCost computes the product's current cost rollup. Point-in-time
// snapshot: concurrent ledger writes may land before or after the read.
func (s *Service) ComposeCost(ctx context.Context, orgID, productID id.ID) (CostBreakdown, error) {
	wc, err := s.Get(ctx, orgID, productID)
	if err != nil {
		return CostBreakdown{}, err
	}
	return wc.CostBreakdown, nil
}

// Update applies field changes and/or whole-composition replacement in one
// unit of work. A supplied empty line set clears that kind of lines; an
// absent set leaves them untouched.
func (s *Service) Update(ctx context.Context, orgID, productID id.ID, upd Update) (*FinishedProduct, error) {
	if upd.Empty() {
		return nil, apperror.NewValidation("no valid fields to update")
	}

	var updated *FinishedProduct
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, orgID, productID)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Description != nil {
			p.Description = *upd.Description
		}
		if err := p.Validate(ctx); err != nil {
			return err
		}

		if upd.Name != nil || upd.Description != nil {
			p.UpdatedAt = time.Now().UTC()
			if userID := security.GetUserID(ctx); !id.IsNil(userID) {
				p.UpdatedBy = &userID
			}
			if err := s.repo.Update(ctx, p); err != nil {
				return err
			}
		}

		if upd.RecipeLines != nil {
			lines := *upd.RecipeLines
			for i := range lines {
				lines[i].ProductID = p.ID
			}
			if err := s.repo.ReplaceRecipeLines(ctx, p.ID, lines); err != nil {
				return err
			}
		}
		if upd.ItemLines != nil {
			lines := *upd.ItemLines
			for i := range lines {
				lines[i].ProductID = p.ID
			}
			if err := s.repo.ReplaceItemLines(ctx, p.ID, lines); err != nil {
				return err
			}
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "product updated", "id", productID)
	return updated, nil
}

// Delete removes a product and (by ownership) its composition lines.
func (s *Service) Delete(ctx context.Context, orgID, productID id.ID) error {
	return s.repo.Delete(ctx, orgID, productID)
}

// DeleteRecipeLine removes one recipe line.
func (s *Service) DeleteRecipeLine(ctx context.Context, orgID, productID, recipeID id.ID) error {
	return s.repo.DeleteRecipeLine(ctx, orgID, productID, recipeID)
}

// DeleteItemLine removes one direct item line.
func (s *Service) DeleteItemLine(ctx context.Context, orgID, productID, itemID id.ID) error {
	return s.repo.DeleteItemLine(ctx, orgID, productID, itemID)
}

func (s *Service) load(ctx context.Context, orgID id.ID, p FinishedProduct) (*FinishedProduct, error) {
	recipeLines, err := s.repo.GetRecipeLines(ctx, orgID, p.ID)
	if err != nil {
		return nil, err
	}
	itemLines, err := s.repo.GetItemLines(ctx, orgID, p.ID)
	if err != nil {
		return nil, err
	}
	p.RecipeLines = recipeLines
	p.ItemLines = itemLines
	return &p, nil
}
