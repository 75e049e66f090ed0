package auth_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/employee"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

// EmployeeRepo implements employee.Repository on top of the users and
// org_members tables.
type EmployeeRepo struct {
	txManager *postgres.TxManager
}

// NewEmployeeRepo creates a new employee repository.
func NewEmployeeRepo(txManager *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{txManager: txManager}
}

func (r *EmployeeRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *EmployeeRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

func (r *EmployeeRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(
			"m.id AS member_id",
			"m.user_id",
			"m.org_id",
			"u.email",
			"u.first_name",
			"u.last_name",
			"m.role",
			"u.is_active",
			"m.created_at",
		).
		From(memberTable + " m").
		Join(userTable + " u ON u.id = m.user_id")
}

func (r *EmployeeRepo) List(ctx context.Context, orgID id.ID) ([]employee.Employee, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"m.org_id": orgID}).
		OrderBy("u.last_name ASC", "u.first_name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var employees []employee.Employee
	if err := pgxscan.Select(ctx, r.querier(ctx), &employees, sql, args...); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (r *EmployeeRepo) GetByMemberID(ctx context.Context, orgID, memberID id.ID) (*employee.Employee, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"m.id": memberID, "m.org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var emp employee.Employee
	if err := pgxscan.Get(ctx, r.querier(ctx), &emp, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("employee", memberID.String())
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &emp, nil
}

// Update writes name and active changes to the user row and role changes to
// the membership row, skipping whatever was not supplied.
func (r *EmployeeRepo) Update(ctx context.Context, orgID, memberID id.ID, upd employee.Update) error {
	emp, err := r.GetByMemberID(ctx, orgID, memberID)
	if err != nil {
		return err
	}

	if upd.FirstName != nil || upd.LastName != nil || upd.IsActive != nil {
		q := r.builder().Update(userTable).Set("updated_at", time.Now().UTC())
		if upd.FirstName != nil {
			q = q.Set("first_name", *upd.FirstName)
		}
		if upd.LastName != nil {
			q = q.Set("last_name", *upd.LastName)
		}
		if upd.IsActive != nil {
			q = q.Set("is_active", *upd.IsActive)
		}
		q = q.Where(squirrel.Eq{"id": emp.UserID})

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build user update: %w", err)
		}
		if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "user")
		}
	}

	if upd.Role != nil {
		q := r.builder().
			Update(memberTable).
			Set("role", *upd.Role).
			Where(squirrel.Eq{"id": memberID, "org_id": orgID})

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build member update: %w", err)
		}
		if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
			return postgres.MapError(err, "membership")
		}
	}
	return nil
}

// Delete removes the membership. The user row survives since it may belong
// to other organizations.
func (r *EmployeeRepo) Delete(ctx context.Context, orgID, memberID id.ID) error {
	q := r.builder().
		Delete(memberTable).
		Where(squirrel.Eq{"id": memberID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "membership")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("employee", memberID.String())
	}
	return nil
}
