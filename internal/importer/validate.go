package importer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
)

const dateLayout = "2006-01-02"

// Validate checks an import schema before any conversion. All problems are
// reported with the index of the offending entry.
func Validate(schema *ImportSchema) error {
	if schema.Settings == nil && len(schema.Shifts) == 0 {
		return fmt.Errorf("import file is empty")
	}
	if schema.Settings != nil {
		if err := validateSettings(schema.Settings); err != nil {
			return err
		}
	}
	for i, s := range schema.Shifts {
		if err := validateShift(s); err != nil {
			return fmt.Errorf("shift %d: %w", i, err)
		}
	}
	return nil
}

func validateSettings(s *SettingsImport) error {
	if s.PresetTier == nil && s.HourlyRate == nil {
		return fmt.Errorf("settings: either preset_tier or hourly_rate is required")
	}
	if s.PresetTier != nil && s.HourlyRate != nil {
		return fmt.Errorf("settings: preset_tier and hourly_rate are mutually exclusive")
	}
	if s.PresetTier != nil {
		if _, err := domain.PresetTierRate(*s.PresetTier); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	if s.HourlyRate != nil {
		rate, err := decimal.NewFromString(*s.HourlyRate)
		if err != nil {
			return fmt.Errorf("settings: invalid hourly_rate %q", *s.HourlyRate)
		}
		if rate.IsNegative() {
			return fmt.Errorf("settings: hourly_rate cannot be negative")
		}
	}

	for i, w := range s.BonusWindows {
		if !domain.ValidDayKinds[w.DayKind] {
			return fmt.Errorf("bonus window %d: unknown day_kind %q", i, w.DayKind)
		}
		if _, err := domain.ParseTimeOfDay(w.From); err != nil {
			return fmt.Errorf("bonus window %d: %w", i, err)
		}
		if _, err := domain.ParseTimeOfDay(w.To); err != nil {
			return fmt.Errorf("bonus window %d: %w", i, err)
		}
		rate, err := decimal.NewFromString(w.Rate)
		if err != nil {
			return fmt.Errorf("bonus window %d: invalid rate %q", i, w.Rate)
		}
		if rate.IsNegative() {
			return fmt.Errorf("bonus window %d: rate cannot be negative", i)
		}
	}
	return nil
}

func validateShift(s ShiftImport) error {
	date, err := time.ParseInLocation(dateLayout, s.Date, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q", s.Date)
	}
	start, err := domain.ParseTimeOfDay(s.StartTime)
	if err != nil {
		return err
	}
	end, err := domain.ParseTimeOfDay(s.EndTime)
	if err != nil {
		return err
	}
	if _, err := domain.NewShift(date, start, end); err != nil {
		return err
	}
	return nil
}
