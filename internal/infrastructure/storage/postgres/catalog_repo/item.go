package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/item"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const (
	itemTable = "items"
	unitTable = "units"
)

var itemColumns = []string{
	"id", "org_id", "name", "sku", "category_id",
	"purchase_unit_id", "purchase_qty", "purchase_cost",
	"base_unit_id", "base_qty_per_purchase", "cost_per_base_unit",
	"active", "created_by", "updated_by", "created_at", "updated_at",
}

// ItemRepo implements item.Repository.
type ItemRepo struct {
	base
}

// NewItemRepo creates a new item repository.
func NewItemRepo(txManager *postgres.TxManager) *ItemRepo {
	return &ItemRepo{base{txManager: txManager}}
}

func (r *ItemRepo) Create(ctx context.Context, it *item.Item) error {
	q := r.Builder().
		Insert(itemTable).
		Columns(itemColumns...).
		Values(
			it.ID, it.OrgID, it.Name, it.SKU, it.CategoryID,
			it.PurchaseUnitID, it.PurchaseQty, it.PurchaseCost,
			it.BaseUnitID, it.BaseQtyPerPurchase, it.CostPerBaseUnit,
			it.Active, it.CreatedBy, it.UpdatedBy, it.CreatedAt, it.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "item")
	}
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, orgID, itemID id.ID) (*item.Item, error) {
	return r.get(ctx, orgID, itemID, false)
}

func (r *ItemRepo) GetForUpdate(ctx context.Context, orgID, itemID id.ID) (*item.Item, error) {
	return r.get(ctx, orgID, itemID, true)
}

func (r *ItemRepo) get(ctx context.Context, orgID, itemID id.ID, forUpdate bool) (*item.Item, error) {
	q := r.Builder().
		Select(itemColumns...).
		From(itemTable).
		Where(squirrel.Eq{"id": itemID, "org_id": orgID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var it item.Item
	if err := pgxscan.Get(ctx, r.Querier(ctx), &it, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("item", itemID.String())
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

func (r *ItemRepo) List(ctx context.Context, orgID id.ID) ([]item.ListRow, error) {
	q := r.Builder().
		Select(
			"i.id", "i.name", "i.sku", "i.purchase_cost", "i.active",
			"i.cost_per_base_unit",
			"pu.symbol AS purchase_unit",
			"bu.symbol AS base_unit",
			"c.name AS category_name",
		).
		From(itemTable + " i").
		Join(unitTable + " pu ON pu.id = i.purchase_unit_id").
		Join(unitTable + " bu ON bu.id = i.base_unit_id").
		LeftJoin("categories c ON c.id = i.category_id").
		Where(squirrel.Eq{"i.org_id": orgID}).
		OrderBy("i.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []item.ListRow
	if err := pgxscan.Select(ctx, r.Querier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return rows, nil
}

func (r *ItemRepo) Update(ctx context.Context, it *item.Item) error {
	q := r.Builder().
		Update(itemTable).
		Set("name", it.Name).
		Set("sku", it.SKU).
		Set("category_id", it.CategoryID).
		Set("purchase_unit_id", it.PurchaseUnitID).
		Set("purchase_qty", it.PurchaseQty).
		Set("purchase_cost", it.PurchaseCost).
		Set("base_unit_id", it.BaseUnitID).
		Set("base_qty_per_purchase", it.BaseQtyPerPurchase).
		Set("cost_per_base_unit", it.CostPerBaseUnit).
		Set("active", it.Active).
		Set("updated_by", it.UpdatedBy).
		Set("updated_at", it.UpdatedAt).
		Where(squirrel.Eq{"id": it.ID, "org_id": it.OrgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("item", it.ID.String())
	}
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, orgID, itemID id.ID) error {
	q := r.Builder().
		Delete(itemTable).
		Where(squirrel.Eq{"id": itemID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("item", itemID.String())
	}
	return nil
}

// ListUnits returns the global measurement unit reference table.
func (r *ItemRepo) ListUnits(ctx context.Context) ([]item.Unit, error) {
	q := r.Builder().
		Select("id", "name", "symbol").
		From(unitTable).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var units []item.Unit
	if err := pgxscan.Select(ctx, r.Querier(ctx), &units, sql, args...); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return units, nil
}
