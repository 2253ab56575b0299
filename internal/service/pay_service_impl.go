package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/engine"
	"github.com/idamarten/turnus/internal/repository"
)

type payService struct {
	shifts   repository.ShiftRepo
	settings repository.SettingsRepo
}

// NewPayService creates the pay service.
func NewPayService(shifts repository.ShiftRepo, settings repository.SettingsRepo) PayService {
	return &payService{shifts: shifts, settings: settings}
}

func (s *payService) Calculate(ctx context.Context, shift domain.Shift) (domain.PayBreakdown, error) {
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return domain.PayBreakdown{}, err
	}
	return engine.CalculateShift(shift, cfg.Wage, cfg.Pause)
}

func (s *payService) Summary(ctx context.Context, q domain.PeriodQuery, now time.Time) (*PaySummary, error) {
	dr, err := engine.ResolvePeriod(q, now)
	if err != nil {
		return nil, err
	}

	records, err := s.shifts.ListByRange(ctx, dr)
	if err != nil {
		return nil, err
	}

	summary := &PaySummary{
		Range:      dr,
		TotalBase:  decimal.Zero,
		TotalBonus: decimal.Zero,
		Total:      decimal.Zero,
	}
	if len(records) == 0 {
		return summary, nil
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	withPay, err := attachPay(records, cfg)
	if err != nil {
		return nil, err
	}

	summary.Shifts = withPay
	for _, sp := range withPay {
		summary.PaidHours += sp.Pay.PaidHours
		summary.TotalBase = summary.TotalBase.Add(sp.Pay.BaseWage)
		summary.TotalBonus = summary.TotalBonus.Add(sp.Pay.Bonus)
		summary.Total = summary.Total.Add(sp.Pay.Total)
	}
	return summary, nil
}
