package domain

import (
	"fmt"
)

// TimeOfDay is a minute-of-day in [0, 1439]. Values are only produced by
// ParseTimeOfDay, so downstream code can assume the range holds.
type TimeOfDay int

const minutesPerDay = 1440

// ParseTimeOfDay parses a strict "HH:mm" string (hours 00-23, minutes 00-59).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeOfDay(h*60 + m), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// Minutes returns the minute-of-day as a plain int. TimeOfDay already is
// minutes; the named accessor keeps arithmetic call sites readable.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
