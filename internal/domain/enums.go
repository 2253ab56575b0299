package domain

import "time"

// DayKind classifies a calendar date for bonus-window selection.
type DayKind string

const (
	DayWeekday  DayKind = "weekday"
	DaySaturday DayKind = "saturday"
	DaySunday   DayKind = "sunday"
)

// ValidDayKinds is the canonical set of accepted day kind strings.
var ValidDayKinds = map[string]bool{
	"weekday": true, "saturday": true, "sunday": true,
}

// DayKindFor derives the day kind from a calendar date.
func DayKindFor(date time.Time) DayKind {
	switch date.Weekday() {
	case time.Saturday:
		return DaySaturday
	case time.Sunday:
		return DaySunday
	default:
		return DayWeekday
	}
}
