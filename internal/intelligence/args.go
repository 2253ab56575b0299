package intelligence

import (
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

// Typed extraction from validated intent arguments. Callers must run
// ValidateIntentArguments first; these helpers assume well-formed input
// and fall back to zero values otherwise.

// ShiftAddArgs carries the fields of a shift_add intent.
type ShiftAddArgs struct {
	Date  time.Time
	Start domain.TimeOfDay
	End   domain.TimeOfDay
	Note  string
}

func ExtractShiftAdd(args map[string]interface{}) ShiftAddArgs {
	date, _ := requireDate(args, "date")
	start, _ := requireClock(args, "start_time")
	end, _ := requireClock(args, "end_time")
	note, _ := args["note"].(string)
	return ShiftAddArgs{Date: date, Start: start, End: end, Note: note}
}

func ExtractSeriesPattern(args map[string]interface{}) domain.SeriesPattern {
	from, _ := requireDate(args, "from")
	to, _ := requireDate(args, "to")
	start, _ := requireClock(args, "start_time")
	end, _ := requireClock(args, "end_time")

	weekdays := make(map[time.Weekday]bool)
	if days, ok := args["weekdays"].([]interface{}); ok {
		for _, d := range days {
			if n, ok := toInt(d); ok && n >= 0 && n <= 6 {
				weekdays[time.Weekday(n)] = true
			}
		}
	}

	interval := 1
	if v, present := args["interval_weeks"]; present {
		if n, ok := toInt(v); ok {
			interval = n
		}
	}
	offset := 0
	if v, present := args["offset_weeks"]; present {
		if n, ok := toInt(v); ok {
			offset = n
		}
	}

	return domain.SeriesPattern{
		From:          from,
		To:            to,
		Weekdays:      weekdays,
		Start:         start,
		End:           end,
		IntervalWeeks: interval,
		OffsetWeeks:   offset,
	}
}

func ExtractPeriodQuery(args map[string]interface{}) domain.PeriodQuery {
	var q domain.PeriodQuery
	if s, ok := args["period"].(string); ok {
		q.Keyword = domain.PeriodKeyword(s)
	}
	if _, present := args["from"]; present {
		from, _ := requireDate(args, "from")
		to, _ := requireDate(args, "to")
		q.From = &from
		q.To = &to
	}
	if v, present := args["week"]; present {
		if n, ok := toInt(v); ok {
			q.WeekNumber = &n
		}
	}
	if v, present := args["year"]; present {
		if n, ok := toInt(v); ok {
			q.Year = &n
		}
	}
	return q
}

// ExtractWeekDate returns the date a week_number intent asks about,
// defaulting to now when absent.
func ExtractWeekDate(args map[string]interface{}, now time.Time) time.Time {
	if _, present := args["date"]; present {
		if d, err := requireDate(args, "date"); err == nil {
			return d
		}
	}
	return domain.Midnight(now)
}
