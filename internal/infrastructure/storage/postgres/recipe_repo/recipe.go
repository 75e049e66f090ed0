// Package recipe_repo provides the PostgreSQL repository for recipes and
// their composition lines.
package recipe_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

const (
	recipeTable     = "recipes"
	recipeLineTable = "recipe_lines"
)

var recipeColumns = []string{
	"id", "org_id", "name", "description", "yield_qty",
	"created_by", "updated_by", "created_at", "updated_at",
}

var recipeLineColumns = []string{"recipe_id", "item_id", "qty", "waste_pct"}

// RecipeRepo implements recipe.Repository.
type RecipeRepo struct {
	txManager *postgres.TxManager
	batch     *postgres.BatchInserter
}

// NewRecipeRepo creates a new recipe repository.
func NewRecipeRepo(txManager *postgres.TxManager) *RecipeRepo {
	return &RecipeRepo{
		txManager: txManager,
		batch:     postgres.NewBatchInserter(txManager),
	}
}

func (r *RecipeRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *RecipeRepo) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

func (r *RecipeRepo) Create(ctx context.Context, rec *recipe.Recipe) error {
	q := r.builder().
		Insert(recipeTable).
		Columns(recipeColumns...).
		Values(
			rec.ID, rec.OrgID, rec.Name, rec.Description, rec.YieldQty,
			rec.CreatedBy, rec.UpdatedBy, rec.CreatedAt, rec.UpdatedAt,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "recipe")
	}
	return nil
}

// SaveLines bulk-inserts the line set via COPY. Requires an active
// transaction so the header insert and the lines land together.
func (r *RecipeRepo) SaveLines(ctx context.Context, recipeID id.ID, lines []recipe.Line) error {
	if len(lines) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{recipeID, line.ItemID, line.Qty, line.WastePct})
	}
	if _, err := r.batch.CopyFromSlice(ctx, recipeLineTable, recipeLineColumns, rows); err != nil {
		return postgres.MapError(err, "recipe line")
	}
	return nil
}

func (r *RecipeRepo) GetByID(ctx context.Context, orgID, recipeID id.ID) (*recipe.Recipe, error) {
	q := r.builder().
		Select(recipeColumns...).
		From(recipeTable).
		Where(squirrel.Eq{"id": recipeID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rec recipe.Recipe
	if err := pgxscan.Get(ctx, r.querier(ctx), &rec, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("recipe", recipeID.String())
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

func (r *RecipeRepo) List(ctx context.Context, orgID id.ID) ([]recipe.Recipe, error) {
	q := r.builder().
		Select(recipeColumns...).
		From(recipeTable).
		Where(squirrel.Eq{"org_id": orgID}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var recipes []recipe.Recipe
	if err := pgxscan.Select(ctx, r.querier(ctx), &recipes, sql, args...); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// GetLines returns the recipe's lines joined with the current item cost, so
// the caller's rollup always reflects the ledger at query time.
func (r *RecipeRepo) GetLines(ctx context.Context, orgID, recipeID id.ID) ([]recipe.Line, error) {
	q := r.builder().
		Select(
			"l.recipe_id", "l.item_id", "l.qty", "l.waste_pct",
			"i.name AS item_name",
			"i.cost_per_base_unit",
		).
		From(recipeLineTable + " l").
		Join(recipeTable + " rc ON rc.id = l.recipe_id").
		Join("items i ON i.id = l.item_id").
		Where(squirrel.Eq{"l.recipe_id": recipeID, "rc.org_id": orgID}).
		OrderBy("i.name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []recipe.Line
	if err := pgxscan.Select(ctx, r.querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get recipe lines: %w", err)
	}
	return lines, nil
}

func (r *RecipeRepo) Update(ctx context.Context, rec *recipe.Recipe) error {
	q := r.builder().
		Update(recipeTable).
		Set("name", rec.Name).
		Set("description", rec.Description).
		Set("yield_qty", rec.YieldQty).
		Set("updated_by", rec.UpdatedBy).
		Set("updated_at", rec.UpdatedAt).
		Where(squirrel.Eq{"id": rec.ID, "org_id": rec.OrgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "recipe")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("recipe", rec.ID.String())
	}
	return nil
}

func (r *RecipeRepo) Delete(ctx context.Context, orgID, recipeID id.ID) error {
	q := r.builder().
		Delete(recipeTable).
		Where(squirrel.Eq{"id": recipeID, "org_id": orgID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "recipe")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("recipe", recipeID.String())
	}
	return nil
}

// UpsertLine inserts or replaces the line keyed by (recipe_id, item_id).
func (r *RecipeRepo) UpsertLine(ctx context.Context, line recipe.Line) error {
	q := r.builder().
		Insert(recipeLineTable).
		Columns(recipeLineColumns...).
		Values(line.RecipeID, line.ItemID, line.Qty, line.WastePct).
		Suffix("ON CONFLICT (recipe_id, item_id) DO UPDATE SET qty = EXCLUDED.qty, waste_pct = EXCLUDED.waste_pct")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "recipe line")
	}
	return nil
}

func (r *RecipeRepo) DeleteLine(ctx context.Context, orgID, recipeID, itemID id.ID) error {
	q := r.builder().
		Delete(recipeLineTable).
		Where(squirrel.Eq{"recipe_id": recipeID, "item_id": itemID}).
		Where(squirrel.Expr(
			"recipe_id IN (SELECT id FROM "+recipeTable+" WHERE id = ? AND org_id = ?)",
			recipeID, orgID,
		))

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "recipe line")
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("recipe line", itemID.String())
	}
	return nil
}

func (r *RecipeRepo) Exists(ctx context.Context, orgID, recipeID id.ID) (bool, error) {
	q := r.builder().
		Select("1").
		From(recipeTable).
		Where(squirrel.Eq{"id": recipeID, "org_id": orgID}).
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
		return false, fmt.Errorf("recipe exists: %w", err)
	}
	return true, nil
}
