package engine

import (
	"github.com/shopspring/decimal"

	"github.com/idamarten/turnus/internal/domain"
)

const minutesPerDay = 1440

var sixty = decimal.NewFromInt(60)

// OverlapMinutes computes how many minutes of the shift span fall inside a
// bonus window. A window whose end is at or before its start wraps past
// midnight and is extended by a day; shift bounds are never wrap-adjusted
// because shifts are same-day by construction.
func OverlapMinutes(shiftStart, shiftEnd, windowFrom, windowTo int) int {
	if windowTo <= windowFrom {
		windowTo += minutesPerDay
	}
	lo := shiftStart
	if windowFrom > lo {
		lo = windowFrom
	}
	hi := shiftEnd
	if windowTo < hi {
		hi = windowTo
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// TotalBonus sums the bonus contribution of every window over the shift
// span. Windows are summed independently: two overlapping windows both
// apply in full to their shared minutes. That additive policy is
// deliberate, not an accident to be deduplicated away.
func TotalBonus(shiftStart, shiftEnd int, windows []domain.TimeWindowRate) decimal.Decimal {
	total := decimal.Zero
	for _, w := range windows {
		minutes := OverlapMinutes(shiftStart, shiftEnd, w.From.Minutes(), w.To.Minutes())
		if minutes == 0 {
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(minutes)).Mul(w.Rate).Div(sixty))
	}
	return total
}
