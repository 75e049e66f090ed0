// Package order_repo provides the PostgreSQL repository for orders and their
// immutable item snapshots.
package order_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/order"
	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const (
	orderTable     = "orders"
	orderItemTable = "order_items"
)

var orderColumns = []string{
	"id", "org_id", "number", "customer_id", "customer_name", "customer_email",
	"customer_phone", "status", "total", "approved_by", "approved_at",
	"created_at", "updated_at",
}

var orderItemColumns = []string{
	"id", "order_id", "product_id", "product_name_snapshot",
	"unit_price_snapshot", "qty", "line_total",
}

// OrderRepo implements order.Repository.
type OrderRepo struct {
	txManager *postgres.TxManager
	batch     *postgres.BatchInserter
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		txManager: txManager,
		batch:     postgres.NewBatchInserter(txManager),
	}
}

func (r *OrderRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *OrderRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

// LoadActiveSaleProducts fetches the requested active products in a single
// query, keyed by id. Products that are missing, inactive or belong to
// another org are absent from the map.
func (r *OrderRepo) LoadActiveSaleProducts(ctx context.Context, orgID id.ID, ids []id.ID) (map[id.ID]saleproduct.SaleProduct, error) {
	q := r.builder().
		Select(
			"id", "org_id", "name", "description", "price", "currency",
			"active", "stock_qty", "created_at", "updated_at",
		).
		From("sale_products").
		Where(squirrel.Eq{"org_id": orgID, "active": true, "id": ids})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var products []saleproduct.SaleProduct
	if err := pgxscan.Select(ctx, r.querier(ctx), &products, sql, args...); err != nil {
		return nil, fmt.Errorf("load sale products: %w", err)
	}

	byID := make(map[id.ID]saleproduct.SaleProduct, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

func (r *OrderRepo) InsertOrder(ctx context.Context, o *order.Order) error {
	q := r.builder().
		Insert(orderTable).
		Columns(orderColumns...).
		Values(
			o.ID, o.OrgID, o.Number, o.CustomerID, o.CustomerName, o.CustomerEmail,
			o.CustomerPhone, o.Status, o.Total, o.ApprovedBy, o.ApprovedAt,
			o.CreatedAt, o.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "order")
	}
	return nil
}

// InsertItems bulk-inserts the order's snapshot lines via COPY. Requires the
// surrounding transaction.
func (r *OrderRepo) InsertItems(ctx context.Context, items []order.Item) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, it.OrderID, it.ProductID, it.ProductNameSnapshot,
			it.UnitPriceSnapshot, it.Qty, it.LineTotal,
		})
	}
	if _, err := r.batch.CopyFromSlice(ctx, orderItemTable, orderItemColumns, rows); err != nil {
		return postgres.MapError(err, "order item")
	}
	return nil
}

func (r *OrderRepo) List(ctx context.Context, orgID id.ID, status *order.Status) ([]order.Order, error) {
	q := r.builder().
		Select(orderColumns...).
		From(orderTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("created_at DESC")
	if status != nil {
		q = q.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var orders []order.Order
	if err := pgxscan.Select(ctx, r.querier(ctx), &orders, sql, args...); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, orgID, orderID id.ID) (*order.Order, error) {
	q := r.builder().
		Select(orderColumns...).
		From(orderTable).
		Where(squirrel.Eq{"id": orderID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o order.Order
	if err := pgxscan.Get(ctx, r.querier(ctx), &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("order", orderID.String())
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepo) GetItems(ctx context.Context, orderID id.ID) ([]order.Item, error) {
	q := r.builder().
		Select(orderItemColumns...).
		From(orderItemTable).
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("product_name_snapshot ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []order.Item
	if err := pgxscan.Select(ctx, r.querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	return items, nil
}

// UpdateStatus moves a PENDING order to the given status. The status guard
// makes terminal orders match zero rows, which surfaces as not found, the
// same answer a missing or foreign order gets.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orgID, orderID id.ID, status order.Status, approvedBy *id.ID, approvedAt *time.Time) error {
	q := r.builder().
		Update(orderTable).
		Set("status", status).
		Set("approved_by", approvedBy).
		Set("approved_at", approvedAt).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{
			"id":     orderID,
			"org_id": orgID,
			"status": order.StatusPending,
		})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "order")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("pending order", orderID.String())
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, orgID, orderID id.ID) error {
	q := r.builder().
		Delete(orderTable).
		Where(squirrel.Eq{"id": orderID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "order")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("order", orderID.String())
	}
	return nil
}
