package cli

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/db"
	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
	"github.com/idamarten/turnus/internal/service"
	"github.com/idamarten/turnus/internal/testutil"
)

// newTestApp wires an App over an in-memory database with a 200 kr custom
// rate and an evening bonus window on weekdays.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)
	uow := db.NewUnitOfWork(database)

	rate := decimal.NewFromInt(200)
	err := settingsRepo.Save(context.Background(), &repository.Settings{
		Wage: domain.WageConfig{
			CustomRate: &rate,
			Bonus: domain.BonusRuleSet{
				domain.DayWeekday: {
					{From: 18 * 60, To: 22 * 60, Rate: decimal.NewFromInt(25)},
				},
			},
		},
		Pause: domain.DefaultPauseRule(),
	})
	require.NoError(t, err)

	return &App{
		Shifts:   service.NewShiftService(shiftRepo, settingsRepo),
		Pay:      service.NewPayService(shiftRepo, settingsRepo),
		Settings: service.NewSettingsService(settingsRepo, uow),
	}
}
