package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
)

// AddStatus describes the outcome of an idempotent shift create.
type AddStatus string

const (
	AddCreated   AddStatus = "created"
	AddDuplicate AddStatus = "duplicate"
)

// AddResult is the outcome of adding a single shift. Record is always set:
// the new record when created, the existing one when the add was a duplicate.
type AddResult struct {
	Status AddStatus
	Record *domain.ShiftRecord
}

// SeriesResult reports how a recurring pattern expanded and persisted.
type SeriesResult struct {
	Dates      []time.Time
	Inserted   int
	Duplicates int
}

// ShiftWithPay pairs a stored shift with its computed pay breakdown under
// the current wage settings.
type ShiftWithPay struct {
	Record *domain.ShiftRecord
	Pay    domain.PayBreakdown
}

// PaySummary aggregates pay over a resolved period.
type PaySummary struct {
	Range      domain.DateRange
	Shifts     []ShiftWithPay
	PaidHours  float64
	TotalBase  decimal.Decimal
	TotalBonus decimal.Decimal
	Total      decimal.Decimal
}

type ShiftService interface {
	Add(ctx context.Context, date time.Time, start, end domain.TimeOfDay, note string) (*AddResult, error)
	AddSeries(ctx context.Context, p domain.SeriesPattern) (*SeriesResult, error)
	ListPeriod(ctx context.Context, q domain.PeriodQuery, now time.Time) ([]ShiftWithPay, error)
	Remove(ctx context.Context, id string) error
	RemovePeriod(ctx context.Context, q domain.PeriodQuery, now time.Time) (int, error)
}

type PayService interface {
	// Calculate computes pay for an ad-hoc shift under the stored settings
	// without persisting anything.
	Calculate(ctx context.Context, shift domain.Shift) (domain.PayBreakdown, error)
	Summary(ctx context.Context, q domain.PeriodQuery, now time.Time) (*PaySummary, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*repository.Settings, error)
	Update(ctx context.Context, s *repository.Settings) error
}
