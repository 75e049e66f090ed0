// Package category provides the item category catalog.
package category

import (
	"context"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Category groups purchasable items for reporting purposes.
type Category struct {
	ID        id.ID     `db:"id" json:"id"`
	OrgID     id.ID     `db:"org_id" json:"orgId"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewCategory creates a category for the given organization.
func NewCategory(orgID id.ID, name string) *Category {
	return &Category{
		ID:        id.New(),
		OrgID:     orgID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate implements basic field validation.
func (c *Category) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
