// Package security provides the request identity and role checks.
// The identity is produced by the auth middleware from a verified token;
// domain code trusts the user/org identifiers it carries and scopes every
// query by the active organization.
package security

import (
	"context"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

// Role is an organization membership role.
type Role string

// Organization roles, ordered by privilege.
const (
	RoleOwner    Role = "OWNER"
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// Identity is the verified caller attached to every authorized request.
type Identity struct {
	UserID      id.ID
	ActiveOrgID id.ID
	Email       string
	Role        Role
}

type identityKey struct{}

// WithIdentity adds the caller identity to context.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// GetIdentity returns the caller identity from context, or nil.
func GetIdentity(ctx context.Context) *Identity {
	if v, ok := ctx.Value(identityKey{}).(*Identity); ok {
		return v
	}
	return nil
}

// GetUserID returns the caller's user id or the nil id.
func GetUserID(ctx context.Context) id.ID {
	if ident := GetIdentity(ctx); ident != nil {
		return ident.UserID
	}
	return id.Nil()
}

// GetOrgID returns the caller's active organization id or the nil id.
func GetOrgID(ctx context.Context) id.ID {
	if ident := GetIdentity(ctx); ident != nil {
		return ident.ActiveOrgID
	}
	return id.Nil()
}

// HasRole reports whether the caller holds one of the given roles.
func HasRole(ctx context.Context, roles ...Role) bool {
	ident := GetIdentity(ctx)
	if ident == nil {
		return false
	}
	for _, r := range roles {
		if ident.Role == r {
			return true
		}
	}
	return false
}
