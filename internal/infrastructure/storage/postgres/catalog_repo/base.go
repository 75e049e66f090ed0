// Package catalog_repo provides PostgreSQL repositories for catalog
// entities: items, categories, units and sale products. Every query carries
// the org_id predicate; rows owned by another org resolve as not found.
package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

// base holds the shared plumbing of catalog repositories.
type base struct {
	txManager *postgres.TxManager
}

// Builder returns a squirrel builder with PostgreSQL placeholders.
func (b base) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the active transaction if one is carried by ctx, the pool
// otherwise.
func (b base) Querier(ctx context.Context) postgres.Querier {
	return b.txManager.GetQuerier(ctx)
}
