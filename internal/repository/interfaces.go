package repository

import (
	"context"
	"errors"
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a shift with the same date, start and end
	// already exists. Creation is idempotent: callers translate this into
	// a "duplicate" outcome instead of failing the request.
	ErrDuplicate = errors.New("duplicate shift")
)

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.ShiftRecord) error
	GetByID(ctx context.Context, id string) (*domain.ShiftRecord, error)
	GetBySpan(ctx context.Context, date time.Time, start, end domain.TimeOfDay) (*domain.ShiftRecord, error)
	ListByRange(ctx context.Context, r domain.DateRange) ([]*domain.ShiftRecord, error)
	Delete(ctx context.Context, id string) error
	DeleteByRange(ctx context.Context, r domain.DateRange) (int, error)
}

// Settings holds the persisted wage configuration. The pause rule keeps its
// fixed default threshold and deduction; only the toggle is stored.
type Settings struct {
	Wage  domain.WageConfig
	Pause domain.PauseRule
}

type SettingsRepo interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
