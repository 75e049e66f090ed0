package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/apperror"
	"github.com/sbolivar95/lechem-backend/internal/core/id"
)

func invalidID(field, value string) error {
	return apperror.NewValidation("invalid id").
		WithDetail("field", field).
		WithDetail("value", value)
}

func parseOptionalID(field string, raw *string) (*id.ID, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := id.Parse(*raw)
	if err != nil {
		return nil, invalidID(field, *raw)
	}
	return &parsed, nil
}
