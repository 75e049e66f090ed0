package employee

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines employee storage operations. Reads join users with
// memberships and are always org-scoped.
type Repository interface {
	List(ctx context.Context, orgID id.ID) ([]Employee, error)
	GetByMemberID(ctx context.Context, orgID, memberID id.ID) (*Employee, error)
	// Update applies the non-nil fields, writing name and active flag to the
	// user row and role to the membership row.
	Update(ctx context.Context, orgID, memberID id.ID, upd Update) error
	// Delete removes the membership. The user row survives since it may
	// belong to other orgs.
	Delete(ctx context.Context, orgID, memberID id.ID) error
}
