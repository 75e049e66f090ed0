package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

// ServiceConfig holds auth service configuration.
type ServiceConfig struct {
	PasswordMinLength int
}

// DefaultServiceConfig returns default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		PasswordMinLength: 8,
	}
}

// Service provides authentication logic.
type Service struct {
	repo       Repository
	txManager  tx.Manager
	jwtService *JWTService
	config     ServiceConfig
}

// NewService creates a new auth service.
func NewService(repo Repository, txManager tx.Manager, jwtService *JWTService, config ServiceConfig) *Service {
	return &Service{
		repo:       repo,
		txManager:  txManager,
		jwtService: jwtService,
		config:     config,
	}
}

// RegisterOwner registers a new user together with their organization and an
// OWNER membership. All three rows are written in one transaction.
func (s *Service) RegisterOwner(ctx context.Context, req RegisterRequest) (*LoginResponse, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if len(req.Password) < s.config.PasswordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", s.config.PasswordMinLength),
		).WithDetail("field", "password")
	}
	if strings.TrimSpace(req.OrgName) == "" {
		return nil, apperror.NewValidation("organization name is required").WithDetail("field", "orgName")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, apperror.NewDuplicate("user", "email").WithDetail("email", email)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(email, string(passwordHash))
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	org := NewOrganization(req.OrgName)
	member := NewMember(org.ID, user.ID, security.RoleOwner)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return err
		}
		if err := s.repo.CreateOrganization(ctx, org); err != nil {
			return err
		}
		return s.repo.CreateMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "owner registered", "userId", user.ID, "orgId", org.ID)
	return s.issueToken(user, org.ID, security.RoleOwner)
}

// Login authenticates a user and issues a token scoped to their first
// organization. Bad email and bad password return the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	memberships, err := s.repo.ListUserMemberships(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, apperror.NewUnauthorized("user has no organization")
	}
	active := memberships[0]

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		logger.Warn(ctx, "failed to record last login", "userId", user.ID, "error", err)
	}

	logger.Info(ctx, "user logged in", "userId", user.ID, "orgId", active.OrgID)
	return s.issueToken(user, active.OrgID, active.Role)
}

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context, userID id.ID) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// ListUserOrganizations returns all memberships of the user.
func (s *Service) ListUserOrganizations(ctx context.Context, userID id.ID) ([]Member, error) {
	return s.repo.ListUserMemberships(ctx, userID)
}

func (s *Service) issueToken(user *User, orgID id.ID, role security.Role) (*LoginResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(user.ID, orgID, user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		OrgID:       orgID,
		Role:        role,
	}, nil
}
