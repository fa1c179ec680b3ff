package calculator

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(h float64) decimal.Decimal { return decimal.NewFromFloat(h) }

func TestTierFor(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()

	tests := []struct {
		name  string
		days  int64
		hours float64
		want  Tier
	}{
		{name: "meets A also meets B and C", days: 25, hours: 150, want: TierA},
		{name: "exactly A", days: 22, hours: 100, want: TierA},
		{name: "A days but B hours", days: 22, hours: 99.9, want: TierB},
		{name: "exactly B", days: 20, hours: 60, want: TierB},
		{name: "exactly C", days: 15, hours: 40, want: TierC},
		{name: "hours without days", days: 14, hours: 500, want: TierNone},
		{name: "nothing", days: 0, hours: 0, want: TierNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TierFor(rules, tt.days, hours(tt.hours)))
		})
	}
}

func TestTierFor_OrderIsTieBreak(t *testing.T) {
	// Any input meeting A must grade A even though B and C are satisfied too.
	rules := DefaultRules()
	for days := int64(22); days <= 31; days++ {
		for _, h := range []float64{100, 120.5, 300} {
			assert.Equal(t, TierA, TierFor(rules, days, hours(h)))
		}
	}
}

func TestBonus_RoundsUp(t *testing.T) {
	t.Parallel()
	rules := DefaultRules()

	got := Bonus(rules, 100000, 22, hours(100))
	assert.Equal(t, TierA, got.Tier)
	assert.True(t, got.EstimatedUSD.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, int64(2400000), got.Amount)

	// 333 diamonds: 1.665 USD * 16000 * 0.30 = 7992 exactly; 334 gives 8016.
	assert.Equal(t, int64(7992), Bonus(rules, 333, 22, hours(100)).Amount)

	rules.ExchangeRate = decimal.RequireFromString("15999.99")
	// 1 diamond: 0.005 * 15999.99 * 0.30 = 23.999985, never truncated to 23.
	assert.Equal(t, int64(24), Bonus(rules, 1, 22, hours(100)).Amount)
}

func TestBonus_NotEligible(t *testing.T) {
	got := Bonus(DefaultRules(), 100000, 1, hours(1))
	assert.Equal(t, TierNone, got.Tier)
	assert.Equal(t, int64(0), got.Amount)
	assert.True(t, got.EstimatedUSD.Equal(decimal.NewFromInt(500)))
}

func TestBonus_InvalidRulesGradeNobody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *Rules)
	}{
		{name: "zero exchange rate", mutate: func(r *Rules) { r.ExchangeRate = decimal.Zero }},
		{name: "negative days", mutate: func(r *Rules) { r.B.MinDays = -1 }},
		{name: "negative hours", mutate: func(r *Rules) { r.C.MinHours = hours(-5) }},
		{name: "percentage above one", mutate: func(r *Rules) { r.A.BonusPercentage = hours(1.5) }},
		{name: "empty rules", mutate: func(r *Rules) { *r = Rules{} }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rules := DefaultRules()
			tt.mutate(&rules)

			assert.ErrorIs(t, rules.Validate(), ErrInvalidRules)
			got := Bonus(rules, 100000, 31, hours(300))
			assert.Equal(t, TierNone, got.Tier)
			assert.Equal(t, int64(0), got.Amount)
		})
	}
}

func TestTier_JSON(t *testing.T) {
	b, err := json.Marshal(Result{Tier: TierNone, EstimatedUSD: decimal.Zero})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tier":null,"estimated_usd":"0","amount":0}`, string(b))

	b, err = json.Marshal(TierB)
	require.NoError(t, err)
	assert.Equal(t, `"B"`, string(b))

	var tier Tier
	require.NoError(t, json.Unmarshal([]byte(`null`), &tier))
	assert.Equal(t, TierNone, tier)
	require.NoError(t, json.Unmarshal([]byte(`"C"`), &tier))
	assert.Equal(t, TierC, tier)
	assert.Error(t, json.Unmarshal([]byte(`"S"`), &tier))
}
