package api

import (
	"time"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/service"
)

const dateLayout = "2006-01-02"

// calculateRequest is an ad-hoc pay calculation. Nothing is persisted.
type calculateRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type payBreakdownDTO struct {
	DurationHours float64 `json:"duration_hours"`
	PaidHours     float64 `json:"paid_hours"`
	BaseWage      string  `json:"base_wage"`
	Bonus         string  `json:"bonus"`
	Total         string  `json:"total"`
	PauseApplied  bool    `json:"pause_applied"`
}

func toPayDTO(p domain.PayBreakdown) payBreakdownDTO {
	return payBreakdownDTO{
		DurationHours: p.DurationHours,
		PaidHours:     p.PaidHours,
		BaseWage:      p.BaseWage.StringFixed(2),
		Bonus:         p.Bonus.StringFixed(2),
		Total:         p.Total.StringFixed(2),
		PauseApplied:  p.PauseApplied,
	}
}

type createShiftRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Note      string `json:"note,omitempty"`
}

type shiftDTO struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
	Note      string           `json:"note,omitempty"`
	Pay       *payBreakdownDTO `json:"pay,omitempty"`
}

func toShiftDTO(s service.ShiftWithPay) shiftDTO {
	pay := toPayDTO(s.Pay)
	return shiftDTO{
		ID:        s.Record.ID,
		Date:      s.Record.Date.Format(dateLayout),
		StartTime: s.Record.Start.String(),
		EndTime:   s.Record.End.String(),
		Note:      s.Record.Note,
		Pay:       &pay,
	}
}

type createShiftResponse struct {
	Status string   `json:"status"` // created or duplicate
	Shift  shiftDTO `json:"shift"`
}

type seriesPreviewRequest struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Weekdays      []int  `json:"weekdays"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	IntervalWeeks int    `json:"interval_weeks,omitempty"`
	OffsetWeeks   int    `json:"offset_weeks,omitempty"`
}

func (r seriesPreviewRequest) toPattern() (domain.SeriesPattern, error) {
	from, err := time.ParseInLocation(dateLayout, r.From, time.UTC)
	if err != nil {
		return domain.SeriesPattern{}, errBadDate("from")
	}
	to, err := time.ParseInLocation(dateLayout, r.To, time.UTC)
	if err != nil {
		return domain.SeriesPattern{}, errBadDate("to")
	}
	start, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return domain.SeriesPattern{}, err
	}
	end, err := domain.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return domain.SeriesPattern{}, err
	}

	weekdays := make(map[time.Weekday]bool, len(r.Weekdays))
	for _, d := range r.Weekdays {
		if d < 0 || d > 6 {
			return domain.SeriesPattern{}, domain.ErrInvalidShift
		}
		weekdays[time.Weekday(d)] = true
	}

	interval := r.IntervalWeeks
	if interval == 0 {
		interval = 1
	}
	return domain.SeriesPattern{
		From:          from,
		To:            to,
		Weekdays:      weekdays,
		Start:         start,
		End:           end,
		IntervalWeeks: interval,
		OffsetWeeks:   r.OffsetWeeks,
	}, nil
}

type seriesPreviewResponse struct {
	Dates []string `json:"dates"`
}

type weekResponse struct {
	Year  int    `json:"year"`
	Week  int    `json:"week"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type summaryResponse struct {
	From       string     `json:"from"`
	To         string     `json:"to"`
	Shifts     []shiftDTO `json:"shifts"`
	PaidHours  float64    `json:"paid_hours"`
	TotalBase  string     `json:"total_base"`
	TotalBonus string     `json:"total_bonus"`
	Total      string     `json:"total"`
}

type errorResponse struct {
	Error string `json:"error"`
}
