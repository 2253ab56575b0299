package domain

import (
	"fmt"
	"time"
)

// Shift is a single same-day work span. Shifts never cross midnight; only
// bonus windows may wrap.
type Shift struct {
	Date    time.Time // midnight UTC
	Start   TimeOfDay
	End     TimeOfDay
	DayKind DayKind
}

// NewShift validates and constructs a Shift. The date is normalized to
// midnight UTC and the day kind is derived from it.
func NewShift(date time.Time, start, end TimeOfDay) (Shift, error) {
	if end <= start {
		return Shift{}, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidShift, end, start)
	}
	d := Midnight(date)
	return Shift{
		Date:    d,
		Start:   start,
		End:     end,
		DayKind: DayKindFor(d),
	}, nil
}

// Midnight truncates a timestamp to its calendar date, re-anchored at
// midnight UTC. All calendar dates in the engine use this representation.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ShiftRecord is a persisted shift row. ID is a uuid string; CreatedAt is
// set by the repository.
type ShiftRecord struct {
	ID        string
	Date      time.Time
	Start     TimeOfDay
	End       TimeOfDay
	Note      string
	CreatedAt time.Time
}

// ToShift converts the stored row into a validated Shift value.
func (r ShiftRecord) ToShift() (Shift, error) {
	return NewShift(r.Date, r.Start, r.End)
}
