package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/intelligence"
)

var dispatchNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func dispatch(t *testing.T, app *App, intent *intelligence.ParsedIntent) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, dispatchIntent(app, &out, intent, dispatchNow))
	return out.String()
}

func TestDispatch_ShiftAdd(t *testing.T) {
	app := newTestApp(t)

	out := dispatch(t, app, &intelligence.ParsedIntent{
		Intent: intelligence.IntentShiftAdd,
		Arguments: map[string]interface{}{
			"date": "2025-06-16", "start_time": "09:00", "end_time": "17:00",
		},
	})
	assert.Contains(t, out, "Added shift")
}

func TestDispatch_SeriesAndShow(t *testing.T) {
	app := newTestApp(t)

	out := dispatch(t, app, &intelligence.ParsedIntent{
		Intent: intelligence.IntentShiftAddSeries,
		Arguments: map[string]interface{}{
			"from": "2025-06-16", "to": "2025-06-22",
			"weekdays":   []interface{}{float64(1), float64(3)},
			"start_time": "09:00", "end_time": "17:00",
		},
	})
	assert.Contains(t, out, "2 added")

	out = dispatch(t, app, &intelligence.ParsedIntent{
		Intent:    intelligence.IntentShiftsShow,
		Arguments: map[string]interface{}{"period": "next_week"},
	})
	assert.Contains(t, out, "2025-06-16")
	assert.Contains(t, out, "2025-06-18")
}

func TestDispatch_PaySummary(t *testing.T) {
	app := newTestApp(t)

	dispatch(t, app, &intelligence.ParsedIntent{
		Intent: intelligence.IntentShiftAdd,
		Arguments: map[string]interface{}{
			"date": "2025-06-16", "start_time": "09:00", "end_time": "17:00",
		},
	})

	out := dispatch(t, app, &intelligence.ParsedIntent{
		Intent:    intelligence.IntentPaySummary,
		Arguments: map[string]interface{}{"period": "next_week"},
	})
	assert.Contains(t, out, "1500.00 kr")
}

func TestDispatch_RemovePeriod(t *testing.T) {
	app := newTestApp(t)

	dispatch(t, app, &intelligence.ParsedIntent{
		Intent: intelligence.IntentShiftAdd,
		Arguments: map[string]interface{}{
			"date": "2025-06-16", "start_time": "09:00", "end_time": "17:00",
		},
	})

	out := dispatch(t, app, &intelligence.ParsedIntent{
		Intent:    intelligence.IntentShiftRemove,
		Arguments: map[string]interface{}{"period": "next_week"},
	})
	assert.Contains(t, out, "Removed 1 shift(s)")
}

func TestDispatch_WeekNumber(t *testing.T) {
	app := newTestApp(t)

	out := dispatch(t, app, &intelligence.ParsedIntent{
		Intent:    intelligence.IntentWeekNumber,
		Arguments: map[string]interface{}{},
	})
	assert.Contains(t, out, "Week 24")
}
