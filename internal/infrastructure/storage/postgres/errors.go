package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
)

// Postgres error codes we translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// MapError translates a pgx error into the application error taxonomy.
// Unique violations become duplicates, foreign key violations become
// conflicts, everything else passes through untouched.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.NewDuplicate(entity, constraintField(pgErr)).WithCause(err)
		case pgForeignKeyViolation:
			return apperror.NewConflict(entity + " is referenced by or references missing data").
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}
	return err
}

func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return "unique field"
}
