package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const bonusRulesColumns = `a_min_days, a_min_hours, a_bonus_percentage, b_min_days, b_min_hours, b_bonus_percentage, c_min_days, c_min_hours, c_bonus_percentage, exchange_rate, updated_at`

const sqlGetBonusRules = `
SELECT ` + bonusRulesColumns + `
FROM bonus_rules
WHERE id = 1
`

// GetBonusRules retrieves the current tier table
func (s *Store) GetBonusRules(ctx context.Context) (BonusRules, error) {
	var rules BonusRules
	err := s.db.GetContext(ctx, &rules, sqlGetBonusRules)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BonusRules{}, ErrNotFound
		}
		return BonusRules{}, fmt.Errorf("failed to get bonus rules: %w", err)
	}
	return rules, nil
}

const sqlUpsertBonusRules = `
INSERT INTO bonus_rules (id, ` + bonusRulesColumns + `)
VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE
SET a_min_days = EXCLUDED.a_min_days,
    a_min_hours = EXCLUDED.a_min_hours,
    a_bonus_percentage = EXCLUDED.a_bonus_percentage,
    b_min_days = EXCLUDED.b_min_days,
    b_min_hours = EXCLUDED.b_min_hours,
    b_bonus_percentage = EXCLUDED.b_bonus_percentage,
    c_min_days = EXCLUDED.c_min_days,
    c_min_hours = EXCLUDED.c_min_hours,
    c_bonus_percentage = EXCLUDED.c_bonus_percentage,
    exchange_rate = EXCLUDED.exchange_rate,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + bonusRulesColumns

// UpsertBonusRules replaces the tier table
func (s *Store) UpsertBonusRules(ctx context.Context, rules BonusRules) (BonusRules, error) {
	var saved BonusRules
	err := s.db.GetContext(ctx, &saved, sqlUpsertBonusRules,
		rules.AMinDays, rules.AMinHours, rules.ABonusPercentage,
		rules.BMinDays, rules.BMinHours, rules.BBonusPercentage,
		rules.CMinDays, rules.CMinHours, rules.CBonusPercentage,
		rules.ExchangeRate)
	if err != nil {
		return BonusRules{}, fmt.Errorf("failed to upsert bonus rules: %w", err)
	}
	return saved, nil
}
