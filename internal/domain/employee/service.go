package employee

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/core/tx"
	"github.com/sbolivar95/lechem-backend/internal/domain/auth"
	"github.com/sbolivar95/lechem-backend/pkg/logger"
)

const passwordMinLength = 8

// Service contains employee management logic.
type Service struct {
	repo      Repository
	authRepo  auth.Repository
	txManager tx.Manager
}

func NewService(repo Repository, authRepo auth.Repository, txManager tx.Manager) *Service {
	return &Service{repo: repo, authRepo: authRepo, txManager: txManager}
}

// Create provisions a user account and a membership in one transaction.
func (s *Service) Create(ctx context.Context, orgID id.ID, req CreateRequest) (*Employee, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if len(req.Password) < passwordMinLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", passwordMinLength),
		).WithDetail("field", "password")
	}
	if err := validateRole(req.Role); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.authRepo.EmailExists(ctx, email)
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

	user := auth.NewUser(email, string(passwordHash))
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	member := auth.NewMember(orgID, user.ID, req.Role)

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.authRepo.CreateUser(ctx, user); err != nil {
			return err
		}
		return s.authRepo.CreateMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "employee created", "memberId", member.ID, "orgId", orgID, "role", req.Role)
	return s.repo.GetByMemberID(ctx, orgID, member.ID)
}

// List returns the org's staff.
func (s *Service) List(ctx context.Context, orgID id.ID) ([]Employee, error) {
	return s.repo.List(ctx, orgID)
}

// Get returns one employee.
func (s *Service) Get(ctx context.Context, orgID, memberID id.ID) (*Employee, error) {
	return s.repo.GetByMemberID(ctx, orgID, memberID)
}

// Update applies partial changes to an employee.
func (s *Service) Update(ctx context.Context, orgID, memberID id.ID, upd Update) (*Employee, error) {
	if upd.Empty() {
		return nil, apperror.NewValidation("no fields to update")
	}
	if upd.Role != nil {
		if err := validateRole(*upd.Role); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Update(ctx, orgID, memberID, upd); err != nil {
		return nil, err
	}
	return s.repo.GetByMemberID(ctx, orgID, memberID)
}

// Delete removes an employee's membership.
func (s *Service) Delete(ctx context.Context, orgID, memberID id.ID) error {
	emp, err := s.repo.GetByMemberID(ctx, orgID, memberID)
	if err != nil {
		return err
	}
	if emp.Role == security.RoleOwner {
		return apperror.NewForbidden("cannot remove the organization owner")
	}
	if err := s.repo.Delete(ctx, orgID, memberID); err != nil {
		return err
	}
	logger.Info(ctx, "employee removed", "memberId", memberID, "orgId", orgID)
	return nil
}
