// Package numerator issues sequential, human-readable document numbers
// backed by a Postgres upsert. Numbers are scoped per organization and
// reset each year.
package numerator

import (
	"context"
	"fmt"
	"time"

	"github.com/sbolivar95/lechem-backend/internal/core/id"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/storage/postgres"
)

// Config holds formatting options for generated numbers.
type Config struct {
	// Prefix added to all numbers (e.g. "ORD")
	Prefix string

	// IncludeYear adds the period year to the number
	IncludeYear bool

	// PadWidth is the minimum sequence width (default 5)
	PadWidth int
}

// DefaultConfig returns the standard format: PREFIX-YYYY-00001.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
	}
}

// Service generates document numbers. When called inside a transaction
// the sequence bump joins that transaction, so an aborted document never
// consumes a number.
type Service struct {
	txManager *postgres.TxManager
	cfg       Config
}

// New creates a numerator with the given format.
func New(txManager *postgres.TxManager, cfg Config) *Service {
	if cfg.PadWidth == 0 {
		cfg.PadWidth = 5
	}
	return &Service{txManager: txManager, cfg: cfg}
}

// Next reserves and formats the next number for the organization.
// Uses UPSERT + RETURNING, so concurrent callers never collide.
func (s *Service) Next(ctx context.Context, orgID id.ID) (string, error) {
	return s.NextAt(ctx, orgID, time.Now())
}

// NextAt is Next with an explicit period, used by tests and backfills.
func (s *Service) NextAt(ctx context.Context, orgID id.ID, period time.Time) (string, error) {
	querier := s.txManager.GetQuerier(ctx)

	var num int64
	err := querier.QueryRow(ctx, `
        INSERT INTO number_sequences (org_id, prefix, year, current_val)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (org_id, prefix, year) DO UPDATE SET current_val = number_sequences.current_val + 1
        RETURNING current_val
	`, orgID, s.cfg.Prefix, period.Year()).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next number: %w", err)
	}

	return s.format(period, num), nil
}

func (s *Service) format(period time.Time, num int64) string {
	if s.cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", s.cfg.Prefix, period.Format("2006"), s.cfg.PadWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", s.cfg.Prefix, s.cfg.PadWidth, num)
}

// ParseSequence extracts the numeric part from a formatted number.
// Returns -1 if the string does not match a known format.
func ParseSequence(formatted string) int64 {
	var num int64
	patterns := []string{
		"%*[^-]-%*d-%d",
		"%*[^-]-%d",
	}
	for _, pattern := range patterns {
		if _, err := fmt.Sscanf(formatted, pattern, &num); err == nil {
			return num
		}
	}
	return -1
}
