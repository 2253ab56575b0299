package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
	"github.com/idamarten/turnus/internal/service"
)

const dateLayout = "2006-01-02"

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " kr"
}

// FormatBreakdown renders a single pay breakdown.
func FormatBreakdown(p domain.PayBreakdown) string {
	var b strings.Builder
	b.WriteString(Header("Pay") + "\n")
	fmt.Fprintf(&b, "  Duration:   %.2f h\n", p.DurationHours)
	if p.PauseApplied {
		fmt.Fprintf(&b, "  Paid hours: %.2f h %s\n", p.PaidHours, Dim("(pause deducted)"))
	} else {
		fmt.Fprintf(&b, "  Paid hours: %.2f h\n", p.PaidHours)
	}
	fmt.Fprintf(&b, "  Base wage:  %s\n", money(p.BaseWage))
	if !p.Bonus.IsZero() {
		fmt.Fprintf(&b, "  Bonus:      %s\n", StyleGreen.Render(money(p.Bonus)))
	}
	fmt.Fprintf(&b, "  %s\n", Bold("Total:      "+money(p.Total)))
	return b.String()
}

// FormatShifts renders shifts with pay as a table.
func FormatShifts(shifts []service.ShiftWithPay) string {
	if len(shifts) == 0 {
		return Dim("No shifts in this period.") + "\n"
	}

	rows := make([][]string, 0, len(shifts))
	for _, s := range shifts {
		date := s.Record.Date
		rows = append(rows, []string{
			date.Format(dateLayout),
			date.Weekday().String()[:3],
			s.Record.Start.String() + "-" + s.Record.End.String(),
			fmt.Sprintf("%.2f", s.Pay.PaidHours),
			money(s.Pay.Total),
			s.Record.Note,
		})
	}
	return RenderTable([]string{"Date", "Day", "Time", "Hours", "Pay", "Note"}, rows)
}

// FormatSummary renders an aggregated pay summary with its shift table.
func FormatSummary(sum *service.PaySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s %s\n\n",
		Header("Pay summary"),
		Dim(sum.Range.Start.Format(dateLayout)+" to"),
		Dim(sum.Range.End.Format(dateLayout)))

	b.WriteString(FormatShifts(sum.Shifts))
	if len(sum.Shifts) == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "\n  Paid hours: %.2f h\n", sum.PaidHours)
	fmt.Fprintf(&b, "  Base wage:  %s\n", money(sum.TotalBase))
	fmt.Fprintf(&b, "  Bonus:      %s\n", money(sum.TotalBonus))
	fmt.Fprintf(&b, "  %s\n", Bold("Total:      "+money(sum.Total)))
	return b.String()
}

// FormatAddResult renders the outcome of a single shift add.
func FormatAddResult(res *service.AddResult) string {
	if res.Status == service.AddDuplicate {
		return StyleYellow.Render("Shift already exists, nothing added.") + "\n"
	}
	rec := res.Record
	return fmt.Sprintf("%s %s %s-%s\n",
		StyleGreen.Render("Added shift:"),
		rec.Date.Format(dateLayout), rec.Start, rec.End)
}

// FormatSeriesResult renders a series expansion outcome.
func FormatSeriesResult(res *service.SeriesResult) string {
	var b strings.Builder
	if len(res.Dates) == 0 {
		return StyleYellow.Render("Pattern matched no dates, nothing added.") + "\n"
	}
	fmt.Fprintf(&b, "%s %d added, %d already existed\n",
		StyleGreen.Render("Series:"), res.Inserted, res.Duplicates)
	for _, d := range res.Dates {
		fmt.Fprintf(&b, "  %s %s\n", d.Format(dateLayout), Dim(d.Weekday().String()))
	}
	return b.String()
}

// FormatWeek renders an ISO week and its date range.
func FormatWeek(week, year int, r domain.DateRange) string {
	return fmt.Sprintf("%s %s\n%s to %s\n",
		Bold(fmt.Sprintf("Week %d,", week)), Bold(fmt.Sprintf("%d", year)),
		r.Start.Format(dateLayout), r.End.Format(dateLayout))
}
