// Package employee manages organization staff. An employee is a user account
// plus a membership row in the owner's organization.
package employee

import (
	"strings"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

// Employee is an org-scoped staff view of a user.
type Employee struct {
	MemberID  id.ID         `db:"member_id" json:"memberId"`
	UserID    id.ID         `db:"user_id" json:"userId"`
	OrgID     id.ID         `db:"org_id" json:"orgId"`
	Email     string        `db:"email" json:"email"`
	FirstName string        `db:"first_name" json:"firstName"`
	LastName  string        `db:"last_name" json:"lastName"`
	Role      security.Role `db:"role" json:"role"`
	IsActive  bool          `db:"is_active" json:"isActive"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}

// CreateRequest is the payload for hiring an employee.
type CreateRequest struct {
	Email     string        `json:"email"`
	Password  string        `json:"password"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Role      security.Role `json:"role"`
}

// Update holds mutable employee fields. Nil fields are left untouched.
type Update struct {
	FirstName *string        `json:"firstName,omitempty"`
	LastName  *string        `json:"lastName,omitempty"`
	Role      *security.Role `json:"role,omitempty"`
	IsActive  *bool          `json:"isActive,omitempty"`
}

func (u Update) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Role == nil && u.IsActive == nil
}

func validateRole(role security.Role) error {
	switch role {
	case security.RoleAdmin, security.RoleEmployee:
		return nil
	case security.RoleOwner:
		return apperror.NewValidation("cannot assign the OWNER role").WithDetail("field", "role")
	}
	return apperror.NewValidation("invalid role").WithDetail("role", string(role))
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if at := strings.IndexByte(email, '@'); at <= 0 || at == len(email)-1 {
		return apperror.NewValidation("email is invalid").WithDetail("field", "email")
	}
	return nil
}
