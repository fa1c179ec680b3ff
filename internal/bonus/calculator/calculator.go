// Package calculator grades creator performance into bonus tiers and prices the bonus.
package calculator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is a bonus eligibility grade. TierNone means not eligible and encodes as JSON null.
type Tier string

const (
	TierNone Tier = ""
	TierA    Tier = "A"
	TierB    Tier = "B"
	TierC    Tier = "C"
)

func (t Tier) MarshalJSON() ([]byte, error) {
	if t == TierNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TierNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Tier(s) {
	case TierA, TierB, TierC, TierNone:
		*t = Tier(s)
		return nil
	}
	return fmt.Errorf("unknown tier %q", s)
}

// DiamondUSDRate is the fixed USD value of one diamond.
var DiamondUSDRate = decimal.RequireFromString("0.005")

var ErrInvalidRules = errors.New("invalid bonus rules")

// Threshold is one tier's minimums and payout share.
type Threshold struct {
	MinDays         int64           `json:"min_days"`
	MinHours        decimal.Decimal `json:"min_hours"`
	BonusPercentage decimal.Decimal `json:"bonus_percentage"`
}

// Rules is the operator-edited tier table plus the USD exchange rate.
type Rules struct {
	A            Threshold       `json:"a"`
	B            Threshold       `json:"b"`
	C            Threshold       `json:"c"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// DefaultRules is used until an operator saves a tier table.
func DefaultRules() Rules {
	return Rules{
		A:            Threshold{MinDays: 22, MinHours: decimal.NewFromInt(100), BonusPercentage: decimal.RequireFromString("0.30")},
		B:            Threshold{MinDays: 20, MinHours: decimal.NewFromInt(60), BonusPercentage: decimal.RequireFromString("0.20")},
		C:            Threshold{MinDays: 15, MinHours: decimal.NewFromInt(40), BonusPercentage: decimal.RequireFromString("0.10")},
		ExchangeRate: decimal.NewFromInt(16000),
	}
}

// Validate reports malformed rules: negative minimums, a percentage outside [0,1] or a non-positive rate.
func (r Rules) Validate() error {
	one := decimal.NewFromInt(1)
	for name, th := range map[Tier]Threshold{TierA: r.A, TierB: r.B, TierC: r.C} {
		if th.MinDays < 0 || th.MinHours.IsNegative() {
			return fmt.Errorf("%w: tier %s minimums must not be negative", ErrInvalidRules, name)
		}
		if th.BonusPercentage.IsNegative() || th.BonusPercentage.GreaterThan(one) {
			return fmt.Errorf("%w: tier %s bonus percentage must be between 0 and 1", ErrInvalidRules, name)
		}
	}
	if !r.ExchangeRate.IsPositive() {
		return fmt.Errorf("%w: exchange rate must be positive", ErrInvalidRules)
	}
	return nil
}

func (r Rules) threshold(t Tier) Threshold {
	switch t {
	case TierA:
		return r.A
	case TierB:
		return r.B
	default:
		return r.C
	}
}

// TierFor returns the first of A, B, C whose minimums are both met. Invalid rules grade nobody.
func TierFor(rules Rules, validDays int64, liveHours decimal.Decimal) Tier {
	if rules.Validate() != nil {
		return TierNone
	}
	for _, t := range []Tier{TierA, TierB, TierC} {
		th := rules.threshold(t)
		if validDays >= th.MinDays && liveHours.GreaterThanOrEqual(th.MinHours) {
			return t
		}
	}
	return TierNone
}

// Result is a priced bonus. Amount is in whole local currency units.
type Result struct {
	Tier         Tier            `json:"tier"`
	EstimatedUSD decimal.Decimal `json:"estimated_usd"`
	Amount       int64           `json:"amount"`
}

// Bonus prices a creator's bonus: ceil(diamonds * DiamondUSDRate * rate * tier percentage).
// Ineligible creators get a zero amount but still see their estimated USD.
func Bonus(rules Rules, diamonds, validDays int64, liveHours decimal.Decimal) Result {
	usd := decimal.NewFromInt(diamonds).Mul(DiamondUSDRate)
	tier := TierFor(rules, validDays, liveHours)
	if tier == TierNone {
		return Result{Tier: TierNone, EstimatedUSD: usd}
	}

	amount := usd.Mul(rules.ExchangeRate).Mul(rules.threshold(tier).BonusPercentage).Ceil()
	return Result{Tier: tier, EstimatedUSD: usd, Amount: amount.IntPart()}
}
