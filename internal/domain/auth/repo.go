package auth

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Repository defines auth storage operations.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID id.ID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	EmailExists(ctx context.Context, email string) (bool, error)

	CreateOrganization(ctx context.Context, org *Organization) error
	GetOrganization(ctx context.Context, orgID id.ID) (*Organization, error)

	CreateMember(ctx context.Context, member *Member) error
	// GetMembership returns the user's membership in the org, not found when
	// absent.
	GetMembership(ctx context.Context, userID, orgID id.ID) (*Member, error)
	// ListUserMemberships returns all orgs the user belongs to.
	ListUserMemberships(ctx context.Context, userID id.ID) ([]Member, error)
}
