package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/category"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const categoryTable = "categories"

var categoryColumns = []string{"id", "org_id", "name", "created_at"}

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	base
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txManager *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{base{txManager: txManager}}
}

func (r *CategoryRepo) Create(ctx context.Context, cat *category.Category) error {
	q := r.Builder().
		Insert(categoryTable).
		Columns(categoryColumns...).
		Values(cat.ID, cat.OrgID, cat.Name, cat.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category")
	}
	return nil
}

func (r *CategoryRepo) List(ctx context.Context, orgID id.ID) ([]category.Category, error) {
	q := r.Builder().
		Select(categoryColumns...).
		From(categoryTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cats []category.Category
	if err := pgxscan.Select(ctx, r.Querier(ctx), &cats, sql, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, orgID, catID id.ID) (*category.Category, error) {
	q := r.Builder().
		Select(categoryColumns...).
		From(categoryTable).
		Where(squirrel.Eq{"id": catID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var cat category.Category
	if err := pgxscan.Get(ctx, r.Querier(ctx), &cat, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("category", catID.String())
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

func (r *CategoryRepo) UpdateName(ctx context.Context, orgID, catID id.ID, name string) (*category.Category, error) {
	q := r.Builder().
		Update(categoryTable).
		Set("name", name).
		Where(squirrel.Eq{"id": catID, "org_id": orgID}).
		Suffix("RETURNING id, org_id, name, created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var cat category.Category
	if err := pgxscan.Get(ctx, r.Querier(ctx), &cat, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("category", catID.String())
		}
		return nil, postgres.MapError(err, "category")
	}
	return &cat, nil
}

func (r *CategoryRepo) Delete(ctx context.Context, orgID, catID id.ID) error {
	q := r.Builder().
		Delete(categoryTable).
		Where(squirrel.Eq{"id": catID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("category", catID.String())
	}
	return nil
}
