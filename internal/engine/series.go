package engine

import (
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

// GenerateSeriesDates expands a recurring pattern into the ascending list of
// concrete dates in [From, To] that fall on a requested weekday and belong
// to a week whose offset from the reference Monday is a non-negative
// multiple of IntervalWeeks.
//
// The reference Monday is the Monday of the week containing
// From + OffsetWeeks*7 days. When the offset pushes the reference past
// early matching days those days get a negative week offset and are
// silently excluded rather than erroring; that matches the established
// behavior and is preserved deliberately.
//
// Malformed patterns degrade to an empty result: an empty weekday set or
// To before From yields nil, never an error.
func GenerateSeriesDates(p domain.SeriesPattern) []time.Time {
	if len(p.Weekdays) == 0 {
		return nil
	}
	from := domain.Midnight(p.From)
	to := domain.Midnight(p.To)
	if to.Before(from) {
		return nil
	}

	interval := p.IntervalWeeks
	if interval < 1 {
		interval = 1
	}
	referenceMonday := StartOfWeek(AddDays(from, p.OffsetWeeks*7))

	var dates []time.Time
	for day := from; !day.After(to); day = AddDays(day, 1) {
		if !p.Weekdays[day.Weekday()] {
			continue
		}
		weeksSinceReference := floorDiv(daysBetween(referenceMonday, day), 7)
		if weeksSinceReference < 0 || weeksSinceReference%interval != 0 {
			continue
		}
		dates = append(dates, day)
	}
	return dates
}
