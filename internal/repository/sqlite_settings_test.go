package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
	"github.com/idamarten/turnus/internal/testutil"
)

func TestSettingsRepo_DefaultsWhenEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.Wage.PresetTier)
	assert.Nil(t, got.Wage.CustomRate)
	assert.Equal(t, domain.DefaultPauseRule(), got.Pause)
	assert.Empty(t, got.Wage.Bonus)
}

func TestSettingsRepo_SaveRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	tier := 3
	pause := domain.DefaultPauseRule()
	pause.Enabled = false
	in := &repository.Settings{
		Wage: domain.WageConfig{
			PresetTier: &tier,
			Bonus: domain.BonusRuleSet{
				domain.DayWeekday: {{
					From: mustTime(t, "18:00"),
					To:   mustTime(t, "22:00"),
					Rate: decimal.RequireFromString("25"),
				}},
				domain.DaySunday: {{
					From: mustTime(t, "00:00"),
					To:   mustTime(t, "23:59"),
					Rate: decimal.RequireFromString("50"),
				}},
			},
		},
		Pause: pause,
	}
	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Wage.PresetTier)
	assert.Equal(t, 3, *got.Wage.PresetTier)
	assert.False(t, got.Pause.Enabled)
	assert.Equal(t, 5.5, got.Pause.ThresholdHours)
	require.Len(t, got.Wage.Bonus[domain.DayWeekday], 1)
	assert.True(t, got.Wage.Bonus[domain.DayWeekday][0].Rate.Equal(decimal.RequireFromString("25")))
	require.Len(t, got.Wage.Bonus[domain.DaySunday], 1)
}

func TestSettingsRepo_SaveReplacesWindows(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSettingsRepo(database)
	ctx := context.Background()

	rate := decimal.RequireFromString("199.50")
	first := &repository.Settings{
		Wage: domain.WageConfig{
			CustomRate: &rate,
			Bonus: domain.BonusRuleSet{
				domain.DayWeekday: {{From: mustTime(t, "18:00"), To: mustTime(t, "22:00"), Rate: decimal.RequireFromString("25")}},
			},
		},
		Pause: domain.DefaultPauseRule(),
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &repository.Settings{
		Wage:  domain.WageConfig{CustomRate: &rate},
		Pause: domain.DefaultPauseRule(),
	}
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Wage.Bonus)
	require.NotNil(t, got.Wage.CustomRate)
	assert.True(t, got.Wage.CustomRate.Equal(rate))
	assert.Nil(t, got.Wage.PresetTier)
}
