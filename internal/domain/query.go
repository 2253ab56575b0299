package domain

import "time"

// SeriesPattern describes a recurring shift series: the requested weekdays
// within [From, To], repeating every IntervalWeeks weeks, counted from the
// Monday of the week containing From + OffsetWeeks*7 days.
//
// Constructed per request and consumed once by the series generator; never
// persisted.
type SeriesPattern struct {
	From          time.Time
	To            time.Time
	Weekdays      map[time.Weekday]bool
	Start         TimeOfDay
	End           TimeOfDay
	IntervalWeeks int // >= 1
	OffsetWeeks   int // >= 0
}

// PeriodKeyword is a semantic period shorthand.
type PeriodKeyword string

const (
	PeriodToday     PeriodKeyword = "today"
	PeriodTomorrow  PeriodKeyword = "tomorrow"
	PeriodThisWeek  PeriodKeyword = "this_week"
	PeriodNextWeek  PeriodKeyword = "next_week"
	PeriodThisMonth PeriodKeyword = "this_month"
	PeriodNextMonth PeriodKeyword = "next_month"
)

// ValidPeriodKeywords is the canonical set of accepted keywords.
var ValidPeriodKeywords = map[PeriodKeyword]bool{
	PeriodToday: true, PeriodTomorrow: true,
	PeriodThisWeek: true, PeriodNextWeek: true,
	PeriodThisMonth: true, PeriodNextMonth: true,
}

// PeriodQuery is a tagged union: a keyword, an explicit from/to range, or a
// week-number/year pair. A zero query resolves to next week.
type PeriodQuery struct {
	Keyword    PeriodKeyword
	From       *time.Time
	To         *time.Time
	WeekNumber *int
	Year       *int
}

// DateRange is an inclusive calendar-date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the date falls within the range, inclusive.
func (r DateRange) Contains(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(r.Start) && !d.After(r.End)
}
