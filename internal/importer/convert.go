package importer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
)

// ShiftInput is one converted shift ready for the shift service.
type ShiftInput struct {
	Date  time.Time
	Start domain.TimeOfDay
	End   domain.TimeOfDay
	Note  string
}

// ToShiftInputs converts validated shift entries. Call Validate first;
// conversion assumes well-formed input.
func ToShiftInputs(schema *ImportSchema) []ShiftInput {
	out := make([]ShiftInput, 0, len(schema.Shifts))
	for _, s := range schema.Shifts {
		date, _ := time.ParseInLocation(dateLayout, s.Date, time.UTC)
		start, _ := domain.ParseTimeOfDay(s.StartTime)
		end, _ := domain.ParseTimeOfDay(s.EndTime)
		out = append(out, ShiftInput{Date: date, Start: start, End: end, Note: s.Note})
	}
	return out
}

// ToSettings converts a validated settings block, or returns nil when the
// file carries none.
func ToSettings(schema *ImportSchema) *repository.Settings {
	src := schema.Settings
	if src == nil {
		return nil
	}

	settings := &repository.Settings{Pause: domain.DefaultPauseRule()}
	if src.PauseEnabled != nil {
		settings.Pause.Enabled = *src.PauseEnabled
	}
	if src.PresetTier != nil {
		tier := *src.PresetTier
		settings.Wage.PresetTier = &tier
	}
	if src.HourlyRate != nil {
		rate, _ := decimal.NewFromString(*src.HourlyRate)
		settings.Wage.CustomRate = &rate
	}

	if len(src.BonusWindows) > 0 {
		settings.Wage.Bonus = make(domain.BonusRuleSet)
		for _, w := range src.BonusWindows {
			from, _ := domain.ParseTimeOfDay(w.From)
			to, _ := domain.ParseTimeOfDay(w.To)
			rate, _ := decimal.NewFromString(w.Rate)
			kind := domain.DayKind(w.DayKind)
			settings.Wage.Bonus[kind] = append(settings.Wage.Bonus[kind], domain.TimeWindowRate{
				From: from, To: to, Rate: rate,
			})
		}
	}
	return settings
}
