package service

import (
	"context"
	"fmt"

	"github.com/idamarten/turnus/internal/db"
	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
	uow      db.UnitOfWork
}

// NewSettingsService creates the settings service. Updates run in a
// transaction so the settings row and the replaced bonus windows can never
// be observed half-written.
func NewSettingsService(settings repository.SettingsRepo, uow db.UnitOfWork) SettingsService {
	return &settingsService{settings: settings, uow: uow}
}

func (s *settingsService) Get(ctx context.Context) (*repository.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, cfg *repository.Settings) error {
	if err := validateSettings(cfg); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSettingsRepo(tx).Save(ctx, cfg)
	})
}

func validateSettings(cfg *repository.Settings) error {
	if cfg.Wage.PresetTier != nil && cfg.Wage.CustomRate != nil {
		return fmt.Errorf("%w: preset tier and custom rate are mutually exclusive", domain.ErrInvalidShift)
	}
	// HourlyRate runs the full rate validation (tier lookup, negativity).
	if _, err := cfg.Wage.HourlyRate(); err != nil {
		return err
	}
	for kind := range cfg.Wage.Bonus {
		if !domain.ValidDayKinds[string(kind)] {
			return fmt.Errorf("%w: unknown day kind %q", domain.ErrInvalidShift, kind)
		}
		for _, w := range cfg.Wage.Bonus[kind] {
			if w.Rate.IsNegative() {
				return fmt.Errorf("%w: negative bonus rate %s", domain.ErrInvalidShift, w.Rate)
			}
		}
	}
	if cfg.Pause.ThresholdHours < 0 || cfg.Pause.DeductionHours < 0 {
		return fmt.Errorf("%w: pause rule values must be non-negative", domain.ErrInvalidShift)
	}
	return nil
}
