// Package auth provides authentication and organization membership logic.
package auth

import (
	"strings"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

// User represents a system user. A user may belong to several organizations
// through memberships; the active one is carried in the token.
type User struct {
	ID           id.ID      `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FirstName    string     `db:"first_name" json:"firstName,omitempty"`
	LastName     string     `db:"last_name" json:"lastName,omitempty"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a new active user.
func NewUser(email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Organization is a tenant. All catalog and order data hangs off one.
type Organization struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

func NewOrganization(name string) *Organization {
	now := time.Now().UTC()
	return &Organization{
		ID:        id.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Member links a user to an organization with a role.
type Member struct {
	ID        id.ID         `db:"id" json:"id"`
	OrgID     id.ID         `db:"org_id" json:"orgId"`
	UserID    id.ID         `db:"user_id" json:"userId"`
	Role      security.Role `db:"role" json:"role"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`

	// Loaded relations
	Email     string `db:"-" json:"email,omitempty"`
	FirstName string `db:"-" json:"firstName,omitempty"`
	LastName  string `db:"-" json:"lastName,omitempty"`
}

func NewMember(orgID, userID id.ID, role security.Role) *Member {
	return &Member{
		ID:        id.New(),
		OrgID:     orgID,
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

// RegisterRequest is the payload for owner self-registration.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	OrgName   string `json:"orgName"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the authenticated user.
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	User        *User         `json:"user"`
	OrgID       id.ID         `json:"orgId"`
	Role        security.Role `json:"role"`
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return apperror.NewValidation("email is invalid").WithDetail("field", "email")
	}
	return nil
}
