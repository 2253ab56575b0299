package engine

import (
	"fmt"
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

// ResolvePeriod maps a period query to a concrete inclusive date range.
//
// "Today" is taken from the caller-supplied now: its local calendar date,
// re-anchored at midnight UTC, so every range in the system shares one
// calendar-date representation.
//
// Resolution order: an explicit from/to range wins, then a week-number
// query (year defaulting to now's year), then a keyword. A zero query
// defaults to next week.
func ResolvePeriod(q domain.PeriodQuery, now time.Time) (domain.DateRange, error) {
	today := domain.Midnight(now)

	switch {
	case q.From != nil && q.To != nil:
		from := domain.Midnight(*q.From)
		to := domain.Midnight(*q.To)
		if to.Before(from) {
			return domain.DateRange{}, fmt.Errorf("%w: range ends %s before it starts %s",
				domain.ErrUnknownPeriod, to.Format("2006-01-02"), from.Format("2006-01-02"))
		}
		return domain.DateRange{Start: from, End: to}, nil

	case q.WeekNumber != nil:
		year := today.Year()
		if q.Year != nil {
			year = *q.Year
		}
		return WeekRange(*q.WeekNumber, year), nil

	case q.Keyword != "":
		return resolveKeyword(q.Keyword, today)

	default:
		return NextWeeks(now, 1), nil
	}
}

// NextWeeks returns the range from the Monday after the current week
// through n*7-1 days later.
func NextWeeks(now time.Time, n int) domain.DateRange {
	if n < 1 {
		n = 1
	}
	start := AddDays(StartOfWeek(domain.Midnight(now)), 7)
	return domain.DateRange{Start: start, End: AddDays(start, n*7-1)}
}

func resolveKeyword(kw domain.PeriodKeyword, today time.Time) (domain.DateRange, error) {
	switch kw {
	case domain.PeriodToday:
		return domain.DateRange{Start: today, End: today}, nil
	case domain.PeriodTomorrow:
		d := AddDays(today, 1)
		return domain.DateRange{Start: d, End: d}, nil
	case domain.PeriodThisWeek:
		start := StartOfWeek(today)
		return domain.DateRange{Start: start, End: AddDays(start, 6)}, nil
	case domain.PeriodNextWeek:
		return NextWeeks(today, 1), nil
	case domain.PeriodThisMonth:
		return monthRange(today.Year(), today.Month()), nil
	case domain.PeriodNextMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		next := first.AddDate(0, 1, 0)
		return monthRange(next.Year(), next.Month()), nil
	default:
		return domain.DateRange{}, fmt.Errorf("%w: %q", domain.ErrUnknownPeriod, kw)
	}
}

func monthRange(year int, month time.Month) domain.DateRange {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return domain.DateRange{Start: start, End: end}
}
