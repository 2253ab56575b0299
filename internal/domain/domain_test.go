package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:30": 570,
		"18:00": 1080,
		"23:59": 1439,
	}
	for s, want := range valid {
		got, err := ParseTimeOfDay(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got.Minutes(), s)
		assert.Equal(t, s, got.String())
	}

	invalid := []string{"", "9:30", "24:00", "12:60", "12-30", "12:3", "ab:cd", "12:345"}
	for _, s := range invalid {
		_, err := ParseTimeOfDay(s)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", s)
	}
}

func TestNewShift(t *testing.T) {
	start, _ := ParseTimeOfDay("09:00")
	end, _ := ParseTimeOfDay("17:00")

	t.Run("derives day kind and normalizes date", func(t *testing.T) {
		loc := time.FixedZone("CEST", 2*3600)
		saturday := time.Date(2025, time.June, 14, 13, 45, 0, 0, loc)

		s, err := NewShift(saturday, start, end)
		require.NoError(t, err)
		assert.Equal(t, DaySaturday, s.DayKind)
		assert.Equal(t, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), s.Date)
	})

	t.Run("rejects end at or before start", func(t *testing.T) {
		_, err := NewShift(time.Now(), end, start)
		assert.ErrorIs(t, err, ErrInvalidShift)

		_, err = NewShift(time.Now(), start, start)
		assert.ErrorIs(t, err, ErrInvalidShift)
	})
}

func TestDayKindFor(t *testing.T) {
	assert.Equal(t, DayWeekday, DayKindFor(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DaySaturday, DayKindFor(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DaySunday, DayKindFor(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPresetTierRate(t *testing.T) {
	for _, tier := range PresetTierIDs() {
		rate, err := PresetTierRate(tier)
		require.NoError(t, err)
		assert.True(t, rate.IsPositive())
	}

	rate, err := PresetTierRate(6)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("256.14")))

	_, err = PresetTierRate(0)
	assert.ErrorIs(t, err, ErrUnknownTier)
	_, err = PresetTierRate(7)
	assert.ErrorIs(t, err, ErrUnknownTier)
}

func TestWageConfigHourlyRate(t *testing.T) {
	t.Run("preset wins", func(t *testing.T) {
		tier := 1
		cfg := WageConfig{PresetTier: &tier}
		rate, err := cfg.HourlyRate()
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.RequireFromString("184.54")))
	})

	t.Run("custom rate", func(t *testing.T) {
		r := decimal.RequireFromString("199.50")
		cfg := WageConfig{CustomRate: &r}
		rate, err := cfg.HourlyRate()
		require.NoError(t, err)
		assert.True(t, rate.Equal(r))
	})

	t.Run("negative custom rate rejected", func(t *testing.T) {
		r := decimal.RequireFromString("-5")
		_, err := WageConfig{CustomRate: &r}.HourlyRate()
		assert.ErrorIs(t, err, ErrInvalidShift)
	})

	t.Run("unset config rejected", func(t *testing.T) {
		_, err := WageConfig{}.HourlyRate()
		assert.ErrorIs(t, err, ErrInvalidShift)
	})
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
	assert.True(t, r.Contains(time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)))
}
