package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"agency-server/internal/bonus/calculator"
	"agency-server/internal/observability"
	"agency-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPeriod       = errors.New("period must be formatted as YYYY-MM")
	ErrUsernameRequired    = errors.New("username is required")
	ErrPerformanceNotFound = errors.New("performance not found")
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// BonusStore defines the database operations required by BonusProcessor
type BonusStore interface {
	GetBonusRules(ctx context.Context) (store.BonusRules, error)
	UpsertBonusRules(ctx context.Context, rules store.BonusRules) (store.BonusRules, error)
	ListPerformanceByPeriod(ctx context.Context, period string) ([]store.CreatorPerformance, error)
	GetPerformanceByUsername(ctx context.Context, username, period string) (store.CreatorPerformance, error)
	GetPerformanceByCreator(ctx context.Context, creatorID uuid.UUID, period string) (store.CreatorPerformance, error)
}

type BonusProcessor struct {
	store  BonusStore
	logger *observability.Logger
}

func New(store BonusStore, logger *observability.Logger) BonusProcessor {
	return BonusProcessor{store: store, logger: logger}
}

// Line is one creator's metrics for a period with the bonus priced under the current rules.
type Line struct {
	CreatorID    uuid.UUID       `json:"creator_id"`
	Username     string          `json:"username"`
	ExternalID   *string         `json:"external_id"`
	ContactPhone *string         `json:"contact_phone"`
	Period       string          `json:"period"`
	Diamonds     int64           `json:"diamonds"`
	ValidDays    int64           `json:"valid_days"`
	LiveHours    decimal.Decimal `json:"live_hours"`
	calculator.Result
}

// Report is the bulk bonus report for one period.
type Report struct {
	Period      string                  `json:"period"`
	Rules       calculator.Rules        `json:"rules"`
	Lines       []Line                  `json:"lines"`
	TierCounts  map[calculator.Tier]int `json:"tier_counts"`
	TotalAmount int64                   `json:"total_amount"`
}

// GetRules returns the operator rules, or the defaults when none were saved.
func (p *BonusProcessor) GetRules(ctx context.Context) (calculator.Rules, error) {
	stored, err := p.store.GetBonusRules(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return calculator.DefaultRules(), nil
		}
		p.logger.Error(ctx, "failed to get bonus rules", err)
		return calculator.Rules{}, err
	}
	return fromStore(stored), nil
}

// UpdateRules validates and saves the tier table.
func (p *BonusProcessor) UpdateRules(ctx context.Context, rules calculator.Rules) (calculator.Rules, error) {
	if err := rules.Validate(); err != nil {
		return calculator.Rules{}, err
	}

	saved, err := p.store.UpsertBonusRules(ctx, toStore(rules))
	if err != nil {
		p.logger.Error(ctx, "failed to save bonus rules", err)
		return calculator.Rules{}, err
	}

	p.logger.Info(ctx, "bonus rules updated")
	return fromStore(saved), nil
}

// Report prices every creator with performance data for period.
func (p *BonusProcessor) Report(ctx context.Context, period string) (Report, error) {
	if !periodPattern.MatchString(period) {
		return Report{}, ErrInvalidPeriod
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "period", Value: period})

	rules, err := p.GetRules(ctx)
	if err != nil {
		return Report{}, err
	}

	rows, err := p.store.ListPerformanceByPeriod(ctx, period)
	if err != nil {
		p.logger.Error(ctx, "failed to list performance", err)
		return Report{}, err
	}

	report := Report{
		Period:     period,
		Rules:      rules,
		Lines:      make([]Line, 0, len(rows)),
		TierCounts: map[calculator.Tier]int{calculator.TierA: 0, calculator.TierB: 0, calculator.TierC: 0},
	}
	for _, row := range rows {
		line := price(rules, row)
		report.Lines = append(report.Lines, line)
		if line.Tier != calculator.TierNone {
			report.TierCounts[line.Tier]++
		}
		report.TotalAmount += line.Amount
	}
	return report, nil
}

// Lookup prices one creator by username. An empty period means the latest one on record.
func (p *BonusProcessor) Lookup(ctx context.Context, username, period string) (Line, error) {
	username = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(username), "@"))
	if username == "" {
		return Line{}, ErrUsernameRequired
	}
	if period != "" && !periodPattern.MatchString(period) {
		return Line{}, ErrInvalidPeriod
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "username", Value: username},
		observability.Field{Key: "period", Value: period},
	)

	rules, err := p.GetRules(ctx)
	if err != nil {
		return Line{}, err
	}

	row, err := p.store.GetPerformanceByUsername(ctx, username, period)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Line{}, ErrPerformanceNotFound
		}
		p.logger.Error(ctx, "failed to get performance", err)
		return Line{}, err
	}
	return price(rules, row), nil
}

// ForCreator prices one creator by ID. An empty period means the latest one on record.
func (p *BonusProcessor) ForCreator(ctx context.Context, creatorID uuid.UUID, period string) (Line, error) {
	if period != "" && !periodPattern.MatchString(period) {
		return Line{}, ErrInvalidPeriod
	}

	rules, err := p.GetRules(ctx)
	if err != nil {
		return Line{}, err
	}

	row, err := p.store.GetPerformanceByCreator(ctx, creatorID, period)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Line{}, ErrPerformanceNotFound
		}
		p.logger.Error(ctx, "failed to get performance", err)
		return Line{}, fmt.Errorf("failed to get performance for creator %s: %w", creatorID, err)
	}
	return price(rules, row), nil
}

func price(rules calculator.Rules, row store.CreatorPerformance) Line {
	validDays := int64(row.ValidDays)
	return Line{
		CreatorID:    row.CreatorID,
		Username:     row.Username,
		ExternalID:   row.ExternalID,
		ContactPhone: row.ContactPhone,
		Period:       row.Period,
		Diamonds:     row.Diamonds,
		ValidDays:    validDays,
		LiveHours:    row.LiveHours,
		Result:       calculator.Bonus(rules, row.Diamonds, validDays, row.LiveHours),
	}
}

func fromStore(r store.BonusRules) calculator.Rules {
	return calculator.Rules{
		A:            calculator.Threshold{MinDays: int64(r.AMinDays), MinHours: r.AMinHours, BonusPercentage: r.ABonusPercentage},
		B:            calculator.Threshold{MinDays: int64(r.BMinDays), MinHours: r.BMinHours, BonusPercentage: r.BBonusPercentage},
		C:            calculator.Threshold{MinDays: int64(r.CMinDays), MinHours: r.CMinHours, BonusPercentage: r.CBonusPercentage},
		ExchangeRate: r.ExchangeRate,
	}
}

func toStore(r calculator.Rules) store.BonusRules {
	return store.BonusRules{
		AMinDays:         int(r.A.MinDays),
		AMinHours:        r.A.MinHours,
		ABonusPercentage: r.A.BonusPercentage,
		BMinDays:         int(r.B.MinDays),
		BMinHours:        r.B.MinHours,
		BBonusPercentage: r.B.BonusPercentage,
		CMinDays:         int(r.C.MinDays),
		CMinHours:        r.C.MinHours,
		CBonusPercentage: r.C.BonusPercentage,
		ExchangeRate:     r.ExchangeRate,
	}
}
