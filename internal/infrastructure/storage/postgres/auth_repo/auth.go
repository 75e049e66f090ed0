// Package auth_repo provides PostgreSQL repositories for users,
// organizations and memberships.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/auth"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const (
	userTable   = "users"
	orgTable    = "organizations"
	memberTable = "org_members"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name",
	"is_active", "last_login_at", "created_at", "updated_at",
}

// AuthRepo implements auth.Repository.
type AuthRepo struct {
	txManager *postgres.TxManager
}

// NewAuthRepo creates a new auth repository.
func NewAuthRepo(txManager *postgres.TxManager) *AuthRepo {
	return &AuthRepo{txManager: txManager}
}

func (r *AuthRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *AuthRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

func (r *AuthRepo) CreateUser(ctx context.Context, user *auth.User) error {
	q := r.builder().
		Insert(userTable).
		Columns(userColumns...).
		Values(
			user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
			user.IsActive, user.LastLoginAt, user.CreatedAt, user.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user")
	}
	return nil
}

func (r *AuthRepo) GetUserByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	q := r.builder().
		Select(userColumns...).
		From(userTable).
		Where(squirrel.Eq{"id": userID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.querier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", userID.String())
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *AuthRepo) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	q := r.builder().
		Select(userColumns...).
		From(userTable).
		Where(squirrel.Eq{"email": email})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.querier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *AuthRepo) UpdateUser(ctx context.Context, user *auth.User) error {
	q := r.builder().
		Update(userTable).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("is_active", user.IsActive).
		Set("last_login_at", user.LastLoginAt).
		Set("updated_at", user.UpdatedAt).
		Where(squirrel.Eq{"id": user.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", user.ID.String())
	}
	return nil
}

func (r *AuthRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	q := r.builder().
		Select("1").
		From(userTable).
		Where(squirrel.Eq{"email": email}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return true, nil
}

func (r *AuthRepo) CreateOrganization(ctx context.Context, org *auth.Organization) error {
	q := r.builder().
		Insert(orgTable).
		Columns("id", "name", "created_at", "updated_at").
		Values(org.ID, org.Name, org.CreatedAt, org.UpdatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "organization")
	}
	return nil
}

func (r *AuthRepo) GetOrganization(ctx context.Context, orgID id.ID) (*auth.Organization, error) {
	q := r.builder().
		Select("id", "name", "created_at", "updated_at").
		From(orgTable).
		Where(squirrel.Eq{"id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var org auth.Organization
	if err := pgxscan.Get(ctx, r.querier(ctx), &org, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("organization", orgID.String())
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

func (r *AuthRepo) CreateMember(ctx context.Context, member *auth.Member) error {
	q := r.builder().
		Insert(memberTable).
		Columns("id", "org_id", "user_id", "role", "created_at").
		Values(member.ID, member.OrgID, member.UserID, member.Role, member.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "membership")
	}
	return nil
}

func (r *AuthRepo) GetMembership(ctx context.Context, userID, orgID id.ID) (*auth.Member, error) {
	q := r.builder().
		Select("id", "org_id", "user_id", "role", "created_at").
		From(memberTable).
		Where(squirrel.Eq{"user_id": userID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var member auth.Member
	if err := pgxscan.Get(ctx, r.querier(ctx), &member, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("membership", userID.String())
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return &member, nil
}

func (r *AuthRepo) ListUserMemberships(ctx context.Context, userID id.ID) ([]auth.Member, error) {
	q := r.builder().
		Select("id", "org_id", "user_id", "role", "created_at").
		From(memberTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var members []auth.Member
	if err := pgxscan.Select(ctx, r.querier(ctx), &members, sql, args...); err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return members, nil
}
