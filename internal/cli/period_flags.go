package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/idamarten/turnus/internal/domain"
)

const dateLayout = "2006-01-02"

// periodFlags is the shared flag set for commands that operate on a
// resolved period: a keyword, an explicit range, or a week/year pair.
type periodFlags struct {
	period string
	from   string
	to     string
	week   int
	year   int
}

func (f *periodFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.period, "period", "", "today, tomorrow, this_week, next_week, this_month or next_month")
	fs.StringVar(&f.from, "from", "", "range start (YYYY-MM-DD)")
	fs.StringVar(&f.to, "to", "", "range end (YYYY-MM-DD)")
	fs.IntVar(&f.week, "week", 0, "ISO week number")
	fs.IntVar(&f.year, "year", 0, "year for --week")
}

func (f *periodFlags) query() (domain.PeriodQuery, error) {
	var q domain.PeriodQuery
	if f.period != "" {
		q.Keyword = domain.PeriodKeyword(f.period)
	}
	if (f.from == "") != (f.to == "") {
		return q, fmt.Errorf("--from and --to must be given together")
	}
	if f.from != "" {
		from, err := parseDate(f.from)
		if err != nil {
			return q, err
		}
		to, err := parseDate(f.to)
		if err != nil {
			return q, err
		}
		q.From, q.To = &from, &to
	}
	if f.week != 0 {
		week := f.week
		q.WeekNumber = &week
	}
	if f.year != 0 {
		year := f.year
		q.Year = &year
	}
	return q, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// parseWeekdays turns a comma-separated list like "mon,wed,fri" into a
// weekday set.
func parseWeekdays(s string) (map[time.Weekday]bool, error) {
	out := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		out[day] = true
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return out, nil
}
