package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertCreatorPerformanceParams represents one creator's metrics for a period
type UpsertCreatorPerformanceParams struct {
	CreatorID uuid.UUID
	Period    string
	Diamonds  int64
	ValidDays int
	LiveHours decimal.Decimal
}

const performanceColumns = `p.id, p.creator_id, c.username, c.external_id, c.contact_phone, p.period, p.diamonds, p.valid_days, p.live_hours, p.updated_at`

const sqlUpsertCreatorPerformance = `
INSERT INTO creator_performance (creator_id, period, diamonds, valid_days, live_hours)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (creator_id, period) DO UPDATE
SET diamonds = EXCLUDED.diamonds,
    valid_days = EXCLUDED.valid_days,
    live_hours = EXCLUDED.live_hours,
    updated_at = CURRENT_TIMESTAMP
`

// UpsertCreatorPerformance writes a creator's metrics, replacing any earlier import for the same period
func (s *Store) UpsertCreatorPerformance(ctx context.Context, params UpsertCreatorPerformanceParams) error {
	_, err := s.db.ExecContext(ctx, sqlUpsertCreatorPerformance,
		params.CreatorID, params.Period, params.Diamonds, params.ValidDays, params.LiveHours)
	if err != nil {
		return fmt.Errorf("failed to upsert creator performance: %w", err)
	}
	return nil
}

const sqlListPerformanceByPeriod = `
SELECT ` + performanceColumns + `
FROM creator_performance p
JOIN creators c ON c.id = p.creator_id
WHERE p.period = $1
ORDER BY p.diamonds DESC, c.username ASC
`

// ListPerformanceByPeriod retrieves every creator's metrics for a period, top earners first
func (s *Store) ListPerformanceByPeriod(ctx context.Context, period string) ([]CreatorPerformance, error) {
	rows := []CreatorPerformance{}
	err := s.db.SelectContext(ctx, &rows, sqlListPerformanceByPeriod, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance by period: %w", err)
	}
	return rows, nil
}

const sqlGetPerformanceByUsername = `
SELECT ` + performanceColumns + `
FROM creator_performance p
JOIN creators c ON c.id = p.creator_id
WHERE lower(c.username) = lower($1)
  AND ($2::text = '' OR p.period = $2::text)
ORDER BY p.period DESC
LIMIT 1
`

// GetPerformanceByUsername retrieves a creator's metrics for period, or the latest period when period is empty
func (s *Store) GetPerformanceByUsername(ctx context.Context, username, period string) (CreatorPerformance, error) {
	var row CreatorPerformance
	err := s.db.GetContext(ctx, &row, sqlGetPerformanceByUsername, username, period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CreatorPerformance{}, ErrNotFound
		}
		return CreatorPerformance{}, fmt.Errorf("failed to get performance by username: %w", err)
	}
	return row, nil
}

const sqlGetPerformanceByCreator = `
SELECT ` + performanceColumns + `
FROM creator_performance p
JOIN creators c ON c.id = p.creator_id
WHERE p.creator_id = $1
  AND ($2::text = '' OR p.period = $2::text)
ORDER BY p.period DESC
LIMIT 1
`

// GetPerformanceByCreator retrieves a creator's metrics for period, or the latest period when period is empty
func (s *Store) GetPerformanceByCreator(ctx context.Context, creatorID uuid.UUID, period string) (CreatorPerformance, error) {
	var row CreatorPerformance
	err := s.db.GetContext(ctx, &row, sqlGetPerformanceByCreator, creatorID, period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CreatorPerformance{}, ErrNotFound
		}
		return CreatorPerformance{}, fmt.Errorf("failed to get performance by creator: %w", err)
	}
	return row, nil
}
