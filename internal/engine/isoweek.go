package engine

import (
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

// WeekNumber computes the ISO-8601 week number (1..53) for a date.
//
// The date is shifted to the Thursday of its own week; the week number is
// then derived from that Thursday's day-of-year. Week 1 is the week
// containing the year's first Thursday.
func WeekNumber(date time.Time) int {
	week, _ := WeekOf(date)
	return week
}

// WeekOf returns both the ISO week number and the ISO year it belongs to.
// Dates near the year boundary can land in a week of the adjacent year.
func WeekOf(date time.Time) (week, year int) {
	d := domain.Midnight(date)
	thursday := AddDays(d, 4-isoDayOfWeek(d))
	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return daysBetween(jan1, thursday)/7 + 1, thursday.Year()
}

// WeekRange returns the Monday..Sunday date range (inclusive) for an ISO
// week of a year. January 4 is always in week 1, so the range is anchored
// at the Monday of January 4's week.
func WeekRange(week, year int) domain.DateRange {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := AddDays(jan4, 1-isoDayOfWeek(jan4))
	start := AddDays(week1Monday, (week-1)*7)
	return domain.DateRange{Start: start, End: AddDays(start, 6)}
}
