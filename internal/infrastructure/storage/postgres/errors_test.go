package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
)

func TestMapError_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "items_org_id_name_key",
	}

	err := MapError(pgErr, "item")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.ErrorIs(t, appErr.Err, error(pgErr))
}

func TestMapError_WrappedPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	wrapped := fmt.Errorf("insert item: %w", pgErr)

	err := MapError(wrapped, "item")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "recipe_lines_item_id_fkey",
	}

	err := MapError(pgErr, "recipe line")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, "recipe_lines_item_id_fkey", appErr.Details["constraint"])
}

func TestMapError_PassThrough(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, MapError(plain, "item"))
	assert.NoError(t, MapError(nil, "item"))
}
