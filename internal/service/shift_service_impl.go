package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/engine"
	"github.com/idamarten/turnus/internal/repository"
)

type shiftService struct {
	shifts   repository.ShiftRepo
	settings repository.SettingsRepo
}

// NewShiftService creates the shift service.
func NewShiftService(shifts repository.ShiftRepo, settings repository.SettingsRepo) ShiftService {
	return &shiftService{shifts: shifts, settings: settings}
}

func (s *shiftService) Add(ctx context.Context, date time.Time, start, end domain.TimeOfDay, note string) (*AddResult, error) {
	// Validate through the Shift constructor before touching storage.
	if _, err := domain.NewShift(date, start, end); err != nil {
		return nil, err
	}

	rec := &domain.ShiftRecord{
		ID:    uuid.NewString(),
		Date:  domain.Midnight(date),
		Start: start,
		End:   end,
		Note:  note,
	}
	err := s.shifts.Create(ctx, rec)
	if errors.Is(err, repository.ErrDuplicate) {
		existing, getErr := s.shifts.GetBySpan(ctx, rec.Date, start, end)
		if getErr != nil {
			return nil, fmt.Errorf("loading duplicate shift: %w", getErr)
		}
		return &AddResult{Status: AddDuplicate, Record: existing}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("adding shift: %w", err)
	}
	return &AddResult{Status: AddCreated, Record: rec}, nil
}

func (s *shiftService) AddSeries(ctx context.Context, p domain.SeriesPattern) (*SeriesResult, error) {
	if p.End <= p.Start {
		return nil, fmt.Errorf("%w: series end %s not after start %s", domain.ErrInvalidShift, p.End, p.Start)
	}

	result := &SeriesResult{Dates: engine.GenerateSeriesDates(p)}
	for _, date := range result.Dates {
		rec := &domain.ShiftRecord{
			ID:    uuid.NewString(),
			Date:  date,
			Start: p.Start,
			End:   p.End,
		}
		err := s.shifts.Create(ctx, rec)
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			result.Duplicates++
		case err != nil:
			return nil, fmt.Errorf("adding series shift on %s: %w", date.Format("2006-01-02"), err)
		default:
			result.Inserted++
		}
	}
	return result, nil
}

func (s *shiftService) ListPeriod(ctx context.Context, q domain.PeriodQuery, now time.Time) ([]ShiftWithPay, error) {
	dr, err := engine.ResolvePeriod(q, now)
	if err != nil {
		return nil, err
	}

	records, err := s.shifts.ListByRange(ctx, dr)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return attachPay(records, cfg)
}

func (s *shiftService) Remove(ctx context.Context, id string) error {
	return s.shifts.Delete(ctx, id)
}

func (s *shiftService) RemovePeriod(ctx context.Context, q domain.PeriodQuery, now time.Time) (int, error) {
	dr, err := engine.ResolvePeriod(q, now)
	if err != nil {
		return 0, err
	}
	return s.shifts.DeleteByRange(ctx, dr)
}

// attachPay computes the breakdown for each record. A record that cannot be
// priced (no rate configured) fails the whole call; callers surface the
// configuration problem instead of showing partial totals.
func attachPay(records []*domain.ShiftRecord, cfg *repository.Settings) ([]ShiftWithPay, error) {
	out := make([]ShiftWithPay, 0, len(records))
	for _, rec := range records {
		shift, err := rec.ToShift()
		if err != nil {
			return nil, fmt.Errorf("stored shift %s: %w", rec.ID, err)
		}
		pay, err := engine.CalculateShift(shift, cfg.Wage, cfg.Pause)
		if err != nil {
			return nil, fmt.Errorf("calculating pay for shift %s: %w", rec.ID, err)
		}
		out = append(out, ShiftWithPay{Record: rec, Pay: pay})
	}
	return out, nil
}
