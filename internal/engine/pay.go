package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
)

// CalculateShift computes the pay breakdown for one shift under the given
// wage config and pause rule.
//
// When the pause rule fires, the deduction comes off the tail of the shift:
// paid hours shrink by the deduction and the effective end minute used for
// bonus overlap moves earlier by the same amount. Deducting from the end
// rather than proportionally under-counts late-evening bonus windows; that
// is the established policy and is preserved here as-is.
func CalculateShift(shift domain.Shift, cfg domain.WageConfig, pause domain.PauseRule) (domain.PayBreakdown, error) {
	start := shift.Start.Minutes()
	end := shift.End.Minutes()
	if end <= start {
		return domain.PayBreakdown{}, fmt.Errorf("%w: end %s not after start %s", domain.ErrInvalidShift, shift.End, shift.Start)
	}

	rate, err := cfg.HourlyRate()
	if err != nil {
		return domain.PayBreakdown{}, fmt.Errorf("resolving hourly rate: %w", err)
	}

	duration := DurationHours(start, end)
	paid := duration
	effectiveEnd := end
	pauseApplied := false
	if pause.Enabled && duration > pause.ThresholdHours {
		paid = duration - pause.DeductionHours
		effectiveEnd = end - int(math.Round(pause.DeductionHours*60))
		pauseApplied = true
	}

	base := decimal.NewFromFloat(paid).Mul(rate)
	bonus := TotalBonus(start, effectiveEnd, cfg.WindowsFor(shift.DayKind))

	return domain.PayBreakdown{
		DurationHours: duration,
		PaidHours:     paid,
		BaseWage:      base,
		Bonus:         bonus,
		Total:         base.Add(bonus),
		PauseApplied:  pauseApplied,
	}, nil
}
