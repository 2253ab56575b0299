package domain

import "errors"

var (
	// ErrInvalidTimeFormat indicates a time-of-day string that is not
	// a valid "HH:mm" value.
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:mm")

	// ErrInvalidShift indicates a shift whose end does not come after its
	// start, or a wage rate that is not a finite non-negative number.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrUnknownPeriod indicates a period keyword the resolver does not know.
	ErrUnknownPeriod = errors.New("unknown period")

	// ErrUnknownTier indicates a preset wage tier outside the fixed table.
	ErrUnknownTier = errors.New("unknown wage tier")
)
