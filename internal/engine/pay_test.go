package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/domain"
)

func customConfig(rate string, bonus domain.BonusRuleSet) domain.WageConfig {
	r := decimal.RequireFromString(rate)
	return domain.WageConfig{CustomRate: &r, Bonus: bonus}
}

func mustShift(t *testing.T, date string, start, end string) domain.Shift {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	s, err := domain.NewShift(d, mustTime(t, start), mustTime(t, end))
	require.NoError(t, err)
	return s
}

func TestCalculateShift_PlainWeekday(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	shift := mustShift(t, "2025-06-11", "09:00", "17:00")

	got, err := CalculateShift(shift, customConfig("200", nil), domain.PauseRule{})
	require.NoError(t, err)

	assert.Equal(t, 8.0, got.DurationHours)
	assert.Equal(t, 8.0, got.PaidHours)
	assert.True(t, got.BaseWage.Equal(decimal.RequireFromString("1600")), "base %s", got.BaseWage)
	assert.True(t, got.Bonus.IsZero())
	assert.True(t, got.Total.Equal(decimal.RequireFromString("1600")), "total %s", got.Total)
	assert.False(t, got.PauseApplied)
}

func TestCalculateShift_EveningBonusWindow(t *testing.T) {
	shift := mustShift(t, "2025-06-11", "18:00", "23:59")
	cfg := customConfig("200", domain.BonusRuleSet{
		domain.DayWeekday: {window(t, "18:00", "22:00", "25")},
	})

	got, err := CalculateShift(shift, cfg, domain.PauseRule{})
	require.NoError(t, err)

	assert.InDelta(t, 5.9833, got.DurationHours, 0.0001)
	assert.True(t, got.Bonus.Equal(decimal.RequireFromString("100")), "bonus %s", got.Bonus)
	assert.True(t, got.Total.Equal(got.BaseWage.Add(got.Bonus)))
}

func TestCalculateShift_PauseDeductedFromTail(t *testing.T) {
	shift := mustShift(t, "2025-06-11", "09:00", "17:00")
	cfg := customConfig("200", domain.BonusRuleSet{
		// Window starting at 16:00: the half-hour pause moves the effective
		// end from 17:00 to 16:30, leaving 30 bonus minutes instead of 60.
		domain.DayWeekday: {window(t, "16:00", "18:00", "50")},
	})

	got, err := CalculateShift(shift, cfg, domain.DefaultPauseRule())
	require.NoError(t, err)

	assert.True(t, got.PauseApplied)
	assert.Equal(t, 8.0, got.DurationHours)
	assert.Equal(t, 7.5, got.PaidHours)
	assert.True(t, got.BaseWage.Equal(decimal.RequireFromString("1500")), "base %s", got.BaseWage)
	assert.True(t, got.Bonus.Equal(decimal.RequireFromString("25")), "bonus %s", got.Bonus)
}

func TestCalculateShift_PauseNotTriggeredBelowThreshold(t *testing.T) {
	shift := mustShift(t, "2025-06-11", "09:00", "14:00")

	got, err := CalculateShift(shift, customConfig("200", nil), domain.DefaultPauseRule())
	require.NoError(t, err)

	assert.False(t, got.PauseApplied)
	assert.Equal(t, got.DurationHours, got.PaidHours)
}

func TestCalculateShift_PresetTier(t *testing.T) {
	shift := mustShift(t, "2025-06-11", "10:00", "12:00")
	tier := 5
	cfg := domain.WageConfig{PresetTier: &tier}

	got, err := CalculateShift(shift, cfg, domain.PauseRule{})
	require.NoError(t, err)

	// 2h at 210.81
	assert.True(t, got.Total.Equal(decimal.RequireFromString("421.62")), "total %s", got.Total)
}

func TestCalculateShift_DayKindSelectsWindows(t *testing.T) {
	// 2025-06-14 is a Saturday; only the saturday windows may apply.
	shift := mustShift(t, "2025-06-14", "12:00", "18:00")
	cfg := customConfig("200", domain.BonusRuleSet{
		domain.DayWeekday:  {window(t, "12:00", "18:00", "100")},
		domain.DaySaturday: {window(t, "13:00", "15:00", "50")},
	})

	got, err := CalculateShift(shift, cfg, domain.PauseRule{})
	require.NoError(t, err)
	assert.True(t, got.Bonus.Equal(decimal.RequireFromString("100")), "bonus %s", got.Bonus)
}

func TestCalculateShift_Errors(t *testing.T) {
	shift := mustShift(t, "2025-06-11", "09:00", "17:00")

	t.Run("negative custom rate", func(t *testing.T) {
		_, err := CalculateShift(shift, customConfig("-1", nil), domain.PauseRule{})
		assert.ErrorIs(t, err, domain.ErrInvalidShift)
	})

	t.Run("unknown preset tier", func(t *testing.T) {
		tier := 9
		_, err := CalculateShift(shift, domain.WageConfig{PresetTier: &tier}, domain.PauseRule{})
		assert.ErrorIs(t, err, domain.ErrUnknownTier)
	})

	t.Run("no rate configured", func(t *testing.T) {
		_, err := CalculateShift(shift, domain.WageConfig{}, domain.PauseRule{})
		assert.ErrorIs(t, err, domain.ErrInvalidShift)
	})
}

func TestCalculateShift_DurationInvariant(t *testing.T) {
	rule := domain.DefaultPauseRule()
	for _, tc := range []struct{ start, end string }{
		{"08:00", "12:00"},
		{"08:00", "13:30"},
		{"08:00", "16:00"},
		{"22:00", "23:59"},
	} {
		shift := mustShift(t, "2025-06-11", tc.start, tc.end)
		got, err := CalculateShift(shift, customConfig("180", nil), rule)
		require.NoError(t, err)
		if got.DurationHours > rule.ThresholdHours {
			assert.Equal(t, got.DurationHours-rule.DeductionHours, got.PaidHours)
		} else {
			assert.Equal(t, got.DurationHours, got.PaidHours)
		}
	}
}
