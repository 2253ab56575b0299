package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
)

func TestPayService_Calculate(t *testing.T) {
	f := newFixture(t)
	configureCustomRate(t, f, "200", domain.BonusRuleSet{
		domain.DayWeekday: {{
			From: mustTime(t, "18:00"),
			To:   mustTime(t, "22:00"),
			Rate: decimal.RequireFromString("25"),
		}},
	})

	shift, err := domain.NewShift(date(2025, time.June, 11), mustTime(t, "18:00"), mustTime(t, "23:59"))
	require.NoError(t, err)

	got, err := f.pay.Calculate(context.Background(), shift)
	require.NoError(t, err)
	assert.True(t, got.Bonus.Equal(decimal.RequireFromString("100")), "bonus %s", got.Bonus)
}

func TestPayService_CalculateWithoutConfiguredRate(t *testing.T) {
	f := newFixture(t)

	shift, err := domain.NewShift(date(2025, time.June, 11), mustTime(t, "09:00"), mustTime(t, "17:00"))
	require.NoError(t, err)

	_, err = f.pay.Calculate(context.Background(), shift)
	assert.ErrorIs(t, err, domain.ErrInvalidShift)
}

func TestPayService_Summary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	configureCustomRate(t, f, "200", nil)

	// Two 8h shifts inside the week, one outside.
	for _, d := range []time.Time{
		date(2025, time.June, 9), date(2025, time.June, 11), date(2025, time.June, 20),
	} {
		_, err := f.shifts.Add(ctx, d, mustTime(t, "09:00"), mustTime(t, "17:00"), "")
		require.NoError(t, err)
	}

	now := time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)
	got, err := f.pay.Summary(ctx, domain.PeriodQuery{Keyword: domain.PeriodThisWeek}, now)
	require.NoError(t, err)

	require.Len(t, got.Shifts, 2)
	assert.Equal(t, 16.0, got.PaidHours)
	assert.True(t, got.TotalBase.Equal(decimal.RequireFromString("3200")), "base %s", got.TotalBase)
	assert.True(t, got.TotalBonus.IsZero())
	assert.True(t, got.Total.Equal(decimal.RequireFromString("3200")), "total %s", got.Total)
	assert.Equal(t, date(2025, time.June, 9), got.Range.Start)
}

func TestPayService_SummaryEmptyPeriod(t *testing.T) {
	f := newFixture(t)

	got, err := f.pay.Summary(context.Background(),
		domain.PeriodQuery{Keyword: domain.PeriodToday}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, got.Shifts)
	assert.True(t, got.Total.IsZero())
}

func TestSettingsService_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("tier and custom rate are exclusive", func(t *testing.T) {
		tier := 3
		rate := decimal.RequireFromString("200")
		err := f.settings.Update(ctx, &repository.Settings{
			Wage:  domain.WageConfig{PresetTier: &tier, CustomRate: &rate},
			Pause: domain.DefaultPauseRule(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidShift)
	})

	t.Run("unknown tier rejected", func(t *testing.T) {
		tier := 42
		err := f.settings.Update(ctx, &repository.Settings{
			Wage:  domain.WageConfig{PresetTier: &tier},
			Pause: domain.DefaultPauseRule(),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownTier)
	})

	t.Run("negative bonus rate rejected", func(t *testing.T) {
		rate := decimal.RequireFromString("200")
		err := f.settings.Update(ctx, &repository.Settings{
			Wage: domain.WageConfig{
				CustomRate: &rate,
				Bonus: domain.BonusRuleSet{
					domain.DayWeekday: {{From: mustTime(t, "18:00"), To: mustTime(t, "22:00"), Rate: decimal.RequireFromString("-1")}},
				},
			},
			Pause: domain.DefaultPauseRule(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidShift)
	})
}
