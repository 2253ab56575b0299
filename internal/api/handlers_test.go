package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/repository"
	"github.com/idamarten/turnus/internal/service"
	"github.com/idamarten/turnus/internal/testutil"
)

// Wednesday 2025-06-11; next week is Jun 16 through Jun 22.
var apiNow = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	database := testutil.NewTestDB(t)
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	rate := decimal.NewFromInt(200)
	err := settingsRepo.Save(context.Background(), &repository.Settings{
		Wage: domain.WageConfig{
			CustomRate: &rate,
			Bonus: domain.BonusRuleSet{
				domain.DayWeekday: {
					{From: 18 * 60, To: 22 * 60, Rate: decimal.NewFromInt(25)},
				},
			},
		},
		Pause: domain.DefaultPauseRule(),
	})
	require.NoError(t, err)

	h := NewHandler(
		service.NewShiftService(shiftRepo, settingsRepo),
		service.NewPayService(shiftRepo, settingsRepo),
	)
	h.Now = func() time.Time { return apiNow }
	return NewRouter(h)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCalculate(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/calculate", calculateRequest{
		Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[payBreakdownDTO](t, rec)
	assert.Equal(t, 8.0, got.DurationHours)
	assert.Equal(t, 7.5, got.PaidHours)
	assert.Equal(t, "1500.00", got.BaseWage)
	assert.True(t, got.PauseApplied)
}

func TestCalculate_BadInput(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/calculate", calculateRequest{
		Date: "2025-06-16", StartTime: "9am", EndTime: "17:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/calculate", calculateRequest{
		Date: "2025-06-16", StartTime: "17:00", EndTime: "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateShift_Idempotent(t *testing.T) {
	router := newTestRouter(t)
	body := createShiftRequest{Date: "2025-06-16", StartTime: "09:00", EndTime: "17:00", Note: "warehouse"}

	rec := doJSON(t, router, http.MethodPost, "/v1/shifts/", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[createShiftResponse](t, rec)
	assert.Equal(t, "created", first.Status)
	assert.NotEmpty(t, first.Shift.ID)

	rec = doJSON(t, router, http.MethodPost, "/v1/shifts/", body)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decode[createShiftResponse](t, rec)
	assert.Equal(t, "duplicate", second.Status)
	// The duplicate response returns the shift that already exists.
	assert.Equal(t, first.Shift.ID, second.Shift.ID)
}

func TestListShifts_DefaultPeriod(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/v1/shifts/", createShiftRequest{
		Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00",
	})
	// Outside next week, must not appear.
	doJSON(t, router, http.MethodPost, "/v1/shifts/", createShiftRequest{
		Date: "2025-06-10", StartTime: "09:00", EndTime: "17:00",
	})

	rec := doJSON(t, router, http.MethodGet, "/v1/shifts/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]shiftDTO](t, rec)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-06-17", got[0].Date)
	require.NotNil(t, got[0].Pay)
	assert.Equal(t, "1500.00", got[0].Pay.BaseWage)
}

func TestListShifts_BadPeriod(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/shifts/?period=last_week", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/shifts/?from=2025-06-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteShift(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/shifts/", createShiftRequest{
		Date: "2025-06-17", StartTime: "09:00", EndTime: "17:00",
	})
	created := decode[createShiftResponse](t, rec)

	rec = doJSON(t, router, http.MethodDelete, "/v1/shifts/"+created.Shift.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/v1/shifts/"+created.Shift.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreviewSeries(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/series/preview", seriesPreviewRequest{
		From: "2025-01-06", To: "2025-01-31",
		Weekdays:  []int{1},
		StartTime: "08:00", EndTime: "16:00",
		IntervalWeeks: 2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[seriesPreviewResponse](t, rec)
	assert.Equal(t, []string{"2025-01-06", "2025-01-20"}, got.Dates)
}

func TestGetWeek(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/weeks/2025/24", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[weekResponse](t, rec)
	assert.Equal(t, "2025-06-09", got.Start)
	assert.Equal(t, "2025-06-15", got.End)

	rec = doJSON(t, router, http.MethodGet, "/v1/weeks/2025/99", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaySummary(t *testing.T) {
	router := newTestRouter(t)

	// Two evening shifts next week; the 18:00-22:00 weekday window pays 25/h.
	doJSON(t, router, http.MethodPost, "/v1/shifts/", createShiftRequest{
		Date: "2025-06-16", StartTime: "18:00", EndTime: "22:00",
	})
	doJSON(t, router, http.MethodPost, "/v1/shifts/", createShiftRequest{
		Date: "2025-06-17", StartTime: "18:00", EndTime: "22:00",
	})

	rec := doJSON(t, router, http.MethodGet, "/v1/pay/summary?period=next_week", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[summaryResponse](t, rec)
	assert.Equal(t, "2025-06-16", got.From)
	assert.Equal(t, "2025-06-22", got.To)
	require.Len(t, got.Shifts, 2)
	assert.Equal(t, 8.0, got.PaidHours)
	assert.Equal(t, "1600.00", got.TotalBase)
	assert.Equal(t, "200.00", got.TotalBonus)
	assert.Equal(t, "1800.00", got.Total)
}

func TestPaySummary_EmptyPeriod(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/pay/summary?period=this_week", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[summaryResponse](t, rec)
	assert.Empty(t, got.Shifts)
	assert.Equal(t, "0.00", got.Total)
}
