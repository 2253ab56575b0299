package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idamarten/turnus/internal/domain"
)

func mustTime(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func window(t *testing.T, from, to, rate string) domain.TimeWindowRate {
	t.Helper()
	return domain.TimeWindowRate{
		From: mustTime(t, from),
		To:   mustTime(t, to),
		Rate: decimal.RequireFromString(rate),
	}
}

func TestOverlapMinutes(t *testing.T) {
	tests := []struct {
		name                 string
		shiftStart, shiftEnd string
		winFrom, winTo       string
		want                 int
	}{
		{"full containment", "18:00", "23:59", "18:00", "22:00", 240},
		{"no overlap", "08:00", "12:00", "18:00", "22:00", 0},
		{"partial head", "17:00", "19:00", "18:00", "22:00", 60},
		{"partial tail", "21:00", "23:00", "18:00", "22:00", 60},
		{"window wraps past midnight", "18:00", "23:59", "21:00", "02:00", 179},
		{"wrapping window missed entirely", "08:00", "12:00", "21:00", "02:00", 0},
		{"zero-length window wraps full day", "10:00", "11:00", "09:00", "09:00", 60},
		{"touching edges", "12:00", "18:00", "18:00", "22:00", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OverlapMinutes(
				mustTime(t, tt.shiftStart).Minutes(),
				mustTime(t, tt.shiftEnd).Minutes(),
				mustTime(t, tt.winFrom).Minutes(),
				mustTime(t, tt.winTo).Minutes(),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalBonus_NonOverlappingWindowsAdd(t *testing.T) {
	windows := []domain.TimeWindowRate{
		window(t, "18:00", "20:00", "25"),
		window(t, "20:00", "22:00", "50"),
	}
	got := TotalBonus(mustTime(t, "18:00").Minutes(), mustTime(t, "22:00").Minutes(), windows)

	// 2h * 25 + 2h * 50
	assert.True(t, got.Equal(decimal.RequireFromString("150")), "got %s", got)
}

func TestTotalBonus_OverlappingWindowsBothApplyInFull(t *testing.T) {
	windows := []domain.TimeWindowRate{
		window(t, "18:00", "22:00", "25"),
		window(t, "20:00", "22:00", "25"),
	}
	got := TotalBonus(mustTime(t, "18:00").Minutes(), mustTime(t, "22:00").Minutes(), windows)

	// 4h * 25 plus 2h * 25: the shared minutes count twice, no capping.
	assert.True(t, got.Equal(decimal.RequireFromString("150")), "got %s", got)
}

func TestTotalBonus_NoWindows(t *testing.T) {
	got := TotalBonus(540, 1020, nil)
	assert.True(t, got.IsZero())
}
