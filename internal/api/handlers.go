package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/engine"
	"github.com/idamarten/turnus/internal/repository"
	"github.com/idamarten/turnus/internal/service"
)

// Handler holds the service dependencies for all HTTP endpoints.
type Handler struct {
	Shifts service.ShiftService
	Pay    service.PayService

	// Now is the clock used for period resolution. Overridable in tests.
	Now func() time.Time
}

// NewHandler creates a Handler over the given services.
func NewHandler(shifts service.ShiftService, pay service.PayService) *Handler {
	return &Handler{Shifts: shifts, Pay: pay, Now: time.Now}
}

// Calculate computes pay for an ad-hoc shift without persisting it.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		writeDomainError(w, errBadDate("date"))
		return
	}
	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	shift, err := domain.NewShift(date, start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	breakdown, err := h.Pay.Calculate(r.Context(), shift)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayDTO(breakdown))
}

// ListShifts returns shifts with pay for a resolved period. Query params:
// period, from, to, week, year. No params means next week.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	q, err := periodFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	shifts, err := h.Shifts.ListPeriod(r.Context(), q, h.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]shiftDTO, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftDTO(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateShift stores a shift. Re-posting the same date and span returns the
// existing record with status duplicate instead of an error.
func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req createShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		writeDomainError(w, errBadDate("date"))
		return
	}
	start, err := domain.ParseTimeOfDay(req.StartTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := domain.ParseTimeOfDay(req.EndTime)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	res, err := h.Shifts.Add(r.Context(), date, start, end, req.Note)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	status := http.StatusCreated
	if res.Status == service.AddDuplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, createShiftResponse{
		Status: string(res.Status),
		Shift: shiftDTO{
			ID:        res.Record.ID,
			Date:      res.Record.Date.Format(dateLayout),
			StartTime: res.Record.Start.String(),
			EndTime:   res.Record.End.String(),
			Note:      res.Record.Note,
		},
	})
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Shifts.Remove(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreviewSeries expands a recurring pattern without persisting anything.
func (h *Handler) PreviewSeries(w http.ResponseWriter, r *http.Request) {
	var req seriesPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	pattern, err := req.toPattern()
	if err != nil {
		writeDomainError(w, err)
		return
	}

	dates := engine.GenerateSeriesDates(pattern)
	out := seriesPreviewResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.Format(dateLayout))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetWeek returns the Monday-to-Sunday range of an ISO week.
func (h *Handler) GetWeek(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil || week < 1 || week > 53 {
		writeError(w, http.StatusBadRequest, "week must be an integer between 1 and 53")
		return
	}

	rng := engine.WeekRange(week, year)
	writeJSON(w, http.StatusOK, weekResponse{
		Year:  year,
		Week:  week,
		Start: rng.Start.Format(dateLayout),
		End:   rng.End.Format(dateLayout),
	})
}

// PaySummary aggregates pay over a resolved period. Same query params as
// ListShifts.
func (h *Handler) PaySummary(w http.ResponseWriter, r *http.Request) {
	q, err := periodFromQuery(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	sum, err := h.Pay.Summary(r.Context(), q, h.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := summaryResponse{
		From:       sum.Range.Start.Format(dateLayout),
		To:         sum.Range.End.Format(dateLayout),
		Shifts:     make([]shiftDTO, 0, len(sum.Shifts)),
		PaidHours:  sum.PaidHours,
		TotalBase:  sum.TotalBase.StringFixed(2),
		TotalBonus: sum.TotalBonus.StringFixed(2),
		Total:      sum.Total.StringFixed(2),
	}
	for _, s := range sum.Shifts {
		out.Shifts = append(out.Shifts, toShiftDTO(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func periodFromQuery(r *http.Request) (domain.PeriodQuery, error) {
	var q domain.PeriodQuery
	vals := r.URL.Query()

	if s := vals.Get("period"); s != "" {
		q.Keyword = domain.PeriodKeyword(s)
	}
	from, to := vals.Get("from"), vals.Get("to")
	if (from == "") != (to == "") {
		return q, fmt.Errorf("%w: from and to must be given together", domain.ErrUnknownPeriod)
	}
	if from != "" {
		f, err := time.ParseInLocation(dateLayout, from, time.UTC)
		if err != nil {
			return q, fmt.Errorf("%w: from must be YYYY-MM-DD", domain.ErrUnknownPeriod)
		}
		t, err := time.ParseInLocation(dateLayout, to, time.UTC)
		if err != nil {
			return q, fmt.Errorf("%w: to must be YYYY-MM-DD", domain.ErrUnknownPeriod)
		}
		q.From, q.To = &f, &t
	}
	if s := vals.Get("week"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("%w: week must be an integer", domain.ErrUnknownPeriod)
		}
		q.WeekNumber = &n
	}
	if s := vals.Get("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return q, fmt.Errorf("%w: year must be an integer", domain.ErrUnknownPeriod)
		}
		q.Year = &n
	}
	return q, nil
}

func errBadDate(field string) error {
	return fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidShift, field)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain and repository sentinels onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidShift),
		errors.Is(err, domain.ErrUnknownPeriod),
		errors.Is(err, domain.ErrUnknownTier):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
