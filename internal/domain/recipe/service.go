package recipe

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// Service provides business logic for recipes.
type Service struct {
	repo      Repository
	txManager tx.Manager
}

// NewService creates a new Recipe service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, txManager: txManager}
}

// WithCost pairs a recipe with its computed cost rollup.
type WithCost struct {
	Recipe
	CostBreakdown
}

// Create creates a recipe and its lines in one unit of work.
func (s *Service) Create(ctx context.Context, orgID id.ID, r *Recipe) (*Recipe, error) {
	r.ID = id.New()
	r.OrgID = orgID
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if userID := security.GetUserID(ctx); !id.IsNil(userID) {
		r.CreatedBy = &userID
	}
	for i := range r.Lines {
		r.Lines[i].RecipeID = r.ID
	}

	if err := r.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, r); err != nil {
			return err
		}
		if len(r.Lines) > 0 {
			if err := s.repo.SaveLines(ctx, r.ID, r.Lines); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "recipe created", "id", r.ID, "name", r.Name, "lines", len(r.Lines))
	return r, nil
}

// List returns all recipes of the organization with lines and computed costs.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]WithCost, error) {
	recipes, err := s.repo.List(ctx, orgID)
	if err != nil {
		return nil, err
	}

	out := make([]WithCost, 0, len(recipes))
	for _, r := range recipes {
		lines, err := s.repo.GetLines(ctx, orgID, r.ID)
		if err != nil {
			return nil, err
		}
		r.Lines = lines
		out = append(out, WithCost{Recipe: r, CostBreakdown: r.ComposeCost()})
	}
	return out, nil
}

// Get returns one recipe with lines.
func (s *Service) Get(ctx context.Context, orgID, recipeID id.ID) (*Recipe, error) {
	r, err := s.repo.GetByID(ctx, orgID, recipeID)
	if err != nil {
		return nil, err
	}
	lines, err := s.repo.GetLines(ctx, orgID, recipeID)
	if err != nil {
		return nil, err
	}
	r.Lines = lines
	return r, nil
}

// ComposeCost computes the recipe's current cost rollup from the ledger.
// The result is a point-in-time snapshot, not a guaranteed-fresh value.
func (s *Service) ComposeCost(ctx context.Context, orgID, recipeID id.ID) (CostBreakdown, error) {
	r, err := s.Get(ctx, orgID, recipeID)
	if err != nil {
		return CostBreakdown{}, err
	}
	return r.ComposeCost(), nil
}

// Update applies a partial update to recipe fields (not lines).
func (s *Service) Update(ctx context.Context, orgID, recipeID id.ID, upd Update) (*Recipe, error) {
	if upd.Empty() {
		return nil, apperror.NewValidation("no valid fields to update")
	}

	r, err := s.repo.GetByID(ctx, orgID, recipeID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		r.Name = *upd.Name
	}
	if upd.Description != nil {
		r.Description = *upd.Description
	}
	if upd.YieldQty != nil {
		r.YieldQty = *upd.YieldQty
	}
	if err := r.Validate(ctx); err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now().UTC()
	if userID := security.GetUserID(ctx); !id.IsNil(userID) {
		r.UpdatedBy = &userID
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a recipe and (by ownership) its lines.
func (s *Service) Delete(ctx context.Context, orgID, recipeID id.ID) error {
	return s.repo.Delete(ctx, orgID, recipeID)
}

// ListLines returns the recipe's lines with current item costs.
func (s *Service) ListLines(ctx context.Context, orgID, recipeID id.ID) ([]Line, error) {
	if err := s.requireRecipe(ctx, orgID, recipeID); err != nil {
		return nil, err
	}
	return s.repo.GetLines(ctx, orgID, recipeID)
}

// UpsertLine inserts or replaces one line keyed by (recipe_id, item_id).
// A repeated write with the same key replaces qty and waste_pct.
func (s *Service) UpsertLine(ctx context.Context, orgID, recipeID, itemID id.ID, line Line) (*Line, error) {
	if err := validateLine(itemID, line.Qty); err != nil {
		return nil, err
	}
	if err := s.requireRecipe(ctx, orgID, recipeID); err != nil {
		return nil, err
	}

	line.RecipeID = recipeID
	line.ItemID = itemID
	if err := s.repo.UpsertLine(ctx, line); err != nil {
		return nil, err
	}
	return &line, nil
}

// DeleteLine removes one line.
func (s *Service) DeleteLine(ctx context.Context, orgID, recipeID, itemID id.ID) error {
	return s.repo.DeleteLine(ctx, orgID, recipeID, itemID)
}

func (s *Service) requireRecipe(ctx context.Context, orgID, recipeID id.ID) error {
	ok, err := s.repo.Exists(ctx, orgID, recipeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound("recipe", recipeID.String())
	}
	return nil
}
