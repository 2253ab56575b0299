package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a shift import file.
// Settings are optional; when present they replace the stored wage
// configuration before the shifts are inserted.
type ImportSchema struct {
	Settings *SettingsImport `json:"settings,omitempty"`
	Shifts   []ShiftImport   `json:"shifts"`
}

// SettingsImport defines the wage configuration in the import file.
// Exactly one of preset_tier and hourly_rate must be set.
type SettingsImport struct {
	PresetTier   *int                `json:"preset_tier,omitempty"`
	HourlyRate   *string             `json:"hourly_rate,omitempty"`
	PauseEnabled *bool               `json:"pause_enabled,omitempty"`
	BonusWindows []BonusWindowImport `json:"bonus_windows,omitempty"`
}

// BonusWindowImport defines one bonus window.
type BonusWindowImport struct {
	DayKind string `json:"day_kind"` // weekday, saturday or sunday
	From    string `json:"from"`     // HH:mm
	To      string `json:"to"`       // HH:mm, wraps past midnight when <= from
	Rate    string `json:"rate"`
}

// ShiftImport defines one shift in the import file.
type ShiftImport struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
}

// Load reads and parses an import file.
func Load(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return Parse(data)
}

// Parse parses import JSON.
func Parse(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
