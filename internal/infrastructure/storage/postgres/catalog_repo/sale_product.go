package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const saleProductTable = "sale_products"

var saleProductColumns = []string{
	"id", "org_id", "name", "description", "price", "currency",
	"active", "stock_qty", "created_at", "updated_at",
}

// SaleProductRepo implements saleproduct.Repository.
type SaleProductRepo struct {
	base
}

// NewSaleProductRepo creates a new sale product repository.
func NewSaleProductRepo(txManager *postgres.TxManager) *SaleProductRepo {
	return &SaleProductRepo{base{txManager: txManager}}
}

func (r *SaleProductRepo) Create(ctx context.Context, p *saleproduct.SaleProduct) error {
	q := r.Builder().
		Insert(saleProductTable).
		Columns(saleProductColumns...).
		Values(
			p.ID, p.OrgID, p.Name, p.Description, p.Price, p.Currency,
			p.Active, p.StockQty, p.CreatedAt, p.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "sale product")
	}
	return nil
}

func (r *SaleProductRepo) List(ctx context.Context, orgID id.ID) ([]saleproduct.SaleProduct, error) {
	q := r.Builder().
		Select(saleProductColumns...).
		From(saleProductTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var products []saleproduct.SaleProduct
	if err := pgxscan.Select(ctx, r.Querier(ctx), &products, sql, args...); err != nil {
		return nil, fmt.Errorf("list sale products: %w", err)
	}
	return products, nil
}

func (r *SaleProductRepo) GetByID(ctx context.Context, orgID, productID id.ID) (*saleproduct.SaleProduct, error) {
	q := r.Builder().
		Select(saleProductColumns...).
		From(saleProductTable).
		Where(squirrel.Eq{"id": productID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p saleproduct.SaleProduct
	if err := pgxscan.Get(ctx, r.Querier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("sale product", productID.String())
		}
		return nil, fmt.Errorf("get sale product: %w", err)
	}
	return &p, nil
}

func (r *SaleProductRepo) Update(ctx context.Context, p *saleproduct.SaleProduct) error {
	q := r.Builder().
		Update(saleProductTable).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("currency", p.Currency).
		Set("active", p.Active).
		Set("stock_qty", p.StockQty).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID, "org_id": p.OrgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "sale product")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("sale product", p.ID.String())
	}
	return nil
}

func (r *SaleProductRepo) Delete(ctx context.Context, orgID, productID id.ID) error {
	q := r.Builder().
		Delete(saleProductTable).
		Where(squirrel.Eq{"id": productID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "sale product")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("sale product", productID.String())
	}
	return nil
}
