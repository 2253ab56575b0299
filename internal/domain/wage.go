package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TimeWindowRate is a bonus window: an extra per-hour rate that applies to
// the minutes of a shift overlapping [From, To). A window with To <= From is
// interpreted as wrapping past midnight during overlap computation.
type TimeWindowRate struct {
	From TimeOfDay
	To   TimeOfDay
	Rate decimal.Decimal
}

// BonusRuleSet maps a day kind to its bonus windows. The list is unordered
// and windows may overlap each other; overlapping windows are additive.
type BonusRuleSet map[DayKind][]TimeWindowRate

// presetTiers is the fixed hourly-rate table. Tiers -1 and -2 are the
// sub-minimum-age tiers; 1..6 are the standard tiers.
var presetTiers = map[int]decimal.Decimal{
	-2: decimal.RequireFromString("132.90"),
	-1: decimal.RequireFromString("129.91"),
	1:  decimal.RequireFromString("184.54"),
	2:  decimal.RequireFromString("185.38"),
	3:  decimal.RequireFromString("187.46"),
	4:  decimal.RequireFromString("193.05"),
	5:  decimal.RequireFromString("210.81"),
	6:  decimal.RequireFromString("256.14"),
}

// PresetTierRate looks up the fixed hourly rate for a preset tier.
func PresetTierRate(tier int) (decimal.Decimal, error) {
	rate, ok := presetTiers[tier]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}
	return rate, nil
}

// PresetTierIDs returns the valid tier ids in ascending order.
func PresetTierIDs() []int {
	return []int{-2, -1, 1, 2, 3, 4, 5, 6}
}

// WageConfig is either a preset tier or a custom hourly rate, plus the
// bonus rule set. Exactly one of PresetTier and CustomRate should be set;
// when both are nil HourlyRate fails.
type WageConfig struct {
	PresetTier *int
	CustomRate *decimal.Decimal
	Bonus      BonusRuleSet
}

// HourlyRate resolves the effective base hourly rate.
func (c WageConfig) HourlyRate() (decimal.Decimal, error) {
	if c.PresetTier != nil {
		return PresetTierRate(*c.PresetTier)
	}
	if c.CustomRate != nil {
		if c.CustomRate.IsNegative() {
			return decimal.Decimal{}, fmt.Errorf("%w: negative hourly rate %s", ErrInvalidShift, c.CustomRate)
		}
		return *c.CustomRate, nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w: no hourly rate configured", ErrInvalidShift)
}

// WindowsFor returns the bonus windows that apply to a day kind.
func (c WageConfig) WindowsFor(kind DayKind) []TimeWindowRate {
	if c.Bonus == nil {
		return nil
	}
	return c.Bonus[kind]
}

// PauseRule deducts a fixed amount of paid time from shifts that exceed a
// duration threshold. Modeled as data so the calculator stays pure and
// testable against other policies.
type PauseRule struct {
	Enabled        bool
	ThresholdHours float64
	DeductionHours float64
}

// DefaultPauseRule is the current policy: half an hour deducted from shifts
// longer than five and a half hours.
func DefaultPauseRule() PauseRule {
	return PauseRule{Enabled: true, ThresholdHours: 5.5, DeductionHours: 0.5}
}

// PayBreakdown is the result of calculating pay for one shift. Hours are
// float64; money amounts are decimals.
type PayBreakdown struct {
	DurationHours float64
	PaidHours     float64
	BaseWage      decimal.Decimal
	Bonus         decimal.Decimal
	Total         decimal.Decimal
	PauseApplied  bool
}
