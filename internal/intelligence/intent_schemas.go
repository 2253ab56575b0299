package intelligence

import (
	"fmt"
	"time"

	"github.com/idamarten/turnus/internal/domain"
)

const argDateLayout = "2006-01-02"

// argValidator checks intent arguments against that intent's schema.
type argValidator func(args map[string]interface{}) error

var intentValidators = map[IntentName]argValidator{
	IntentShiftAdd:       validateShiftAddArgs,
	IntentShiftAddSeries: validateShiftAddSeriesArgs,
	IntentShiftRemove:    validatePeriodArgs,
	IntentShiftsShow:     validatePeriodArgs,
	IntentPaySummary:     validatePeriodArgs,
	IntentWeekNumber:     validateWeekNumberArgs,
}

// ValidateIntentArguments checks the arguments of a parsed intent against
// the schema for its intent name.
func ValidateIntentArguments(intent *ParsedIntent) error {
	if !IsValidIntent(intent.Intent) {
		return fmt.Errorf("unknown intent %q", intent.Intent)
	}
	validate := intentValidators[intent.Intent]
	if err := validate(intent.Arguments); err != nil {
		return fmt.Errorf("%s: %w", intent.Intent, err)
	}
	return nil
}

func validateShiftAddArgs(args map[string]interface{}) error {
	if _, err := requireDate(args, "date"); err != nil {
		return err
	}
	start, err := requireClock(args, "start_time")
	if err != nil {
		return err
	}
	end, err := requireClock(args, "end_time")
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("end_time must be after start_time")
	}
	return nil
}

func validateShiftAddSeriesArgs(args map[string]interface{}) error {
	from, err := requireDate(args, "from")
	if err != nil {
		return err
	}
	to, err := requireDate(args, "to")
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("to must not be before from")
	}
	start, err := requireClock(args, "start_time")
	if err != nil {
		return err
	}
	end, err := requireClock(args, "end_time")
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("end_time must be after start_time")
	}

	days, ok := args["weekdays"].([]interface{})
	if !ok || len(days) == 0 {
		return fmt.Errorf("weekdays must be a non-empty array")
	}
	for _, d := range days {
		n, ok := toInt(d)
		if !ok || n < 0 || n > 6 {
			return fmt.Errorf("weekdays entries must be integers 0 (Sunday) through 6 (Saturday)")
		}
	}

	if v, present := args["interval_weeks"]; present {
		n, ok := toInt(v)
		if !ok || n < 1 {
			return fmt.Errorf("interval_weeks must be an integer >= 1")
		}
	}
	if v, present := args["offset_weeks"]; present {
		n, ok := toInt(v)
		if !ok || n < 0 {
			return fmt.Errorf("offset_weeks must be an integer >= 0")
		}
	}
	return nil
}

// validatePeriodArgs covers the read-style intents and shift_remove: all
// accept an optional period keyword, explicit from/to dates, or a
// week/year pair. All arguments optional; a bare intent means next week.
func validatePeriodArgs(args map[string]interface{}) error {
	if v, present := args["period"]; present {
		s, ok := v.(string)
		if !ok || !domain.ValidPeriodKeywords[domain.PeriodKeyword(s)] {
			return fmt.Errorf("period must be one of today, tomorrow, this_week, next_week, this_month, next_month")
		}
	}
	_, hasFrom := args["from"]
	_, hasTo := args["to"]
	if hasFrom != hasTo {
		return fmt.Errorf("from and to must be given together")
	}
	if hasFrom {
		from, err := requireDate(args, "from")
		if err != nil {
			return err
		}
		to, err := requireDate(args, "to")
		if err != nil {
			return err
		}
		if to.Before(from) {
			return fmt.Errorf("to must not be before from")
		}
	}
	if v, present := args["week"]; present {
		n, ok := toInt(v)
		if !ok || n < 1 || n > 53 {
			return fmt.Errorf("week must be an integer between 1 and 53")
		}
	}
	if v, present := args["year"]; present {
		if _, ok := toInt(v); !ok {
			return fmt.Errorf("year must be an integer")
		}
	}
	return nil
}

func validateWeekNumberArgs(args map[string]interface{}) error {
	if _, present := args["date"]; present {
		if _, err := requireDate(args, "date"); err != nil {
			return err
		}
	}
	return nil
}

func requireDate(args map[string]interface{}, key string) (time.Time, error) {
	s, ok := args[key].(string)
	if !ok || s == "" {
		return time.Time{}, fmt.Errorf("%s is required (YYYY-MM-DD)", key)
	}
	t, err := time.ParseInLocation(argDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", key)
	}
	return t, nil
}

func requireClock(args map[string]interface{}, key string) (domain.TimeOfDay, error) {
	s, ok := args[key].(string)
	if !ok || s == "" {
		return 0, fmt.Errorf("%s is required (HH:mm)", key)
	}
	t, err := domain.ParseTimeOfDay(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a time in HH:mm format", key)
	}
	return t, nil
}

// toInt accepts the numeric shapes JSON decoding produces.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
