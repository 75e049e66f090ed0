// Package product_repo provides the PostgreSQL repository for finished
// products and their two composition line sets.
package product_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/product"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const (
	productTable       = "finished_products"
	productRecipeTable = "product_recipe_lines"
	productItemTable   = "product_item_lines"
)

var productColumns = []string{
	"id", "org_id", "name", "description",
	"created_by", "updated_by", "created_at", "updated_at",
}

// ProductRepo implements product.Repository.
type ProductRepo struct {
	txManager *postgres.TxManager
	batch     *postgres.BatchInserter
}

// NewProductRepo creates a new finished product repository.
func NewProductRepo(txManager *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		txManager: txManager,
		batch:     postgres.NewBatchInserter(txManager),
	}
}

func (r *ProductRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ProductRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

func (r *ProductRepo) Create(ctx context.Context, p *product.FinishedProduct) error {
	q := r.builder().
		Insert(productTable).
		Columns(productColumns...).
		Values(
			p.ID, p.OrgID, p.Name, p.Description,
			p.CreatedBy, p.UpdatedBy, p.CreatedAt, p.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "product")
	}
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, orgID, productID id.ID) (*product.FinishedProduct, error) {
	q := r.builder().
		Select(productColumns...).
		From(productTable).
		Where(squirrel.Eq{"id": productID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p product.FinishedProduct
	if err := pgxscan.Get(ctx, r.querier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", productID.String())
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, orgID id.ID) ([]product.FinishedProduct, error) {
	q := r.builder().
		Select(productColumns...).
		From(productTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var products []product.FinishedProduct
	if err := pgxscan.Select(ctx, r.querier(ctx), &products, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetRecipeLines returns the product's recipe lines with current recipe data
// and each recipe's component lines, so the caller can roll up a full cost.
func (r *ProductRepo) GetRecipeLines(ctx context.Context, orgID, productID id.ID) ([]product.RecipeLine, error) {
	q := r.builder().
		Select(
			"l.product_id", "l.recipe_id", "l.qty",
			"rc.name AS recipe_name",
			"rc.yield_qty",
		).
		From(productRecipeTable + " l").
		Join("recipes rc ON rc.id = l.recipe_id").
		Join(productTable + " p ON p.id = l.product_id").
		Where(squirrel.Eq{"l.product_id": productID, "p.org_id": orgID}).
		OrderBy("rc.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []product.RecipeLine
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get product recipe lines: %w", err)
	}
	if len(lines) == 0 {
		return lines, nil
	}

	recipeIDs := make([]id.ID, 0, len(lines))
	for _, line := range lines {
		recipeIDs = append(recipeIDs, line.RecipeID)
	}
	components, err := r.loadComponents(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		lines[i].Components = components[lines[i].RecipeID]
	}
	return lines, nil
}

// loadComponents fetches the recipe lines of all given recipes in one query,
// grouped by recipe id.
func (r *ProductRepo) loadComponents(ctx context.Context, recipeIDs []id.ID) (map[id.ID][]recipe.Line, error) {
	q := r.builder().
		Select(
			"l.recipe_id", "l.item_id", "l.qty", "l.waste_pct",
			"i.name AS item_name",
			"i.cost_per_base_unit",
		).
		From("recipe_lines l").
		Join("items i ON i.id = l.item_id").
		Where(squirrel.Eq{"l.recipe_id": recipeIDs})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var all []recipe.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &all, sql, args...); err != nil {
		return nil, fmt.Errorf("load recipe components: %w", err)
	}

	grouped := make(map[id.ID][]recipe.Line, len(recipeIDs))
	for _, line := range all {
		grouped[line.RecipeID] = append(grouped[line.RecipeID], line)
	}
	return grouped, nil
}

func (r *ProductRepo) GetItemLines(ctx context.Context, orgID, productID id.ID) ([]product.ItemLine, error) {
	q := r.builder().
		Select(
			"l.product_id", "l.item_id", "l.qty",
			"i.name AS item_name",
			"i.cost_per_base_unit",
		).
		From(productItemTable + " l").
		Join("items i ON i.id = l.item_id").
		Join(productTable + " p ON p.id = l.product_id").
		Where(squirrel.Eq{"l.product_id": productID, "p.org_id": orgID}).
		OrderBy("i.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []product.ItemLine
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get product item lines: %w", err)
	}
	return lines, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *product.FinishedProduct) error {
	q := r.builder().
		Update(productTable).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("updated_by", p.UpdatedBy).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID, "org_id": p.OrgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "product")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", p.ID.String())
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, orgID, productID id.ID) error {
	q := r.builder().
		Delete(productTable).
		Where(squirrel.Eq{"id": productID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "product")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", productID.String())
	}
	return nil
}

// ReplaceRecipeLines swaps the whole recipe line set. Must run inside a
// transaction so readers never observe the half-replaced state.
func (r *ProductRepo) ReplaceRecipeLines(ctx context.Context, productID id.ID, lines []product.RecipeLine) error {
	if err := r.deleteLines(ctx, productRecipeTable, productID); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{productID, line.RecipeID, line.Qty})
	}
	if _, err := r.batch.CopyFromSlice(ctx, productRecipeTable, []string{"product_id", "recipe_id", "qty"}, rows); err != nil {
		return postgres.MapError(err, "product recipe line")
	}
	return nil
}

// ReplaceItemLines swaps the whole direct item line set.
func (r *ProductRepo) ReplaceItemLines(ctx context.Context, productID id.ID, lines []product.ItemLine) error {
	if err := r.deleteLines(ctx, productItemTable, productID); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{productID, line.ItemID, line.Qty})
	}
	if _, err := r.batch.CopyFromSlice(ctx, productItemTable, []string{"product_id", "item_id", "qty"}, rows); err != nil {
		return postgres.MapError(err, "product item line")
	}
	return nil
}

func (r *ProductRepo) deleteLines(ctx context.Context, table string, productID id.ID) error {
	q := r.builder().
		Delete(table).
		Where(squirrel.Eq{"product_id": productID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return nil
}

func (r *ProductRepo) DeleteRecipeLine(ctx context.Context, orgID, productID, recipeID id.ID) error {
	return r.deleteLine(ctx, productRecipeTable, "recipe_id", orgID, productID, recipeID)
}

func (r *ProductRepo) DeleteItemLine(ctx context.Context, orgID, productID, itemID id.ID) error {
	return r.deleteLine(ctx, productItemTable, "item_id", orgID, productID, itemID)
}

func (r *ProductRepo) deleteLine(ctx context.Context, table, refCol string, orgID, productID, refID id.ID) error {
	q := r.builder().
		Delete(table).
		Where(squirrel.Eq{"product_id": productID, refCol: refID}).
		Where(squirrel.Expr(
			"product_id IN (SELECT id FROM "+productTable+" WHERE id = ? AND org_id = ?)",
			productID, orgID,
		))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "product line")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product line", refID.String())
	}
	return nil
}
