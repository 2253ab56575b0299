// Package engine holds the pure computation core: shift pay calculation,
// bonus-window overlap, ISO week arithmetic, recurring series expansion and
// period resolution. Everything here is a synchronous function over value
// types; no I/O, no ambient state, the caller supplies "now".
package engine

import (
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

// AddDays returns a new date n days after d. Dates are never mutated in
// place; iteration always produces fresh values.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// isoDayOfWeek maps time.Weekday to ISO numbering, Monday=1..Sunday=7.
func isoDayOfWeek(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// StartOfWeek returns the Monday of the week containing d. Sunday maps six
// days back, not to the start of the next week.
func StartOfWeek(d time.Time) time.Time {
	return AddDays(domain.Midnight(d), 1-isoDayOfWeek(d))
}

// daysBetween counts whole days from a to b (negative when b is before a).
// Both arguments must be midnight-UTC dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// floorDiv divides rounding toward negative infinity, unlike Go's
// truncating integer division. Needed so a day before the reference Monday
// lands in week -1, not week 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// DurationHours converts a same-day minute span to fractional hours.
// No wraparound: callers reject end <= start upstream.
func DurationHours(startMin, endMin int) float64 {
	return float64(endMin-startMin) / 60.0
}
