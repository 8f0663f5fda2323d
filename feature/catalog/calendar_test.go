package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthForDay_Boundaries(t *testing.T) {
	tests := []struct {
		day   int
		month string
		rel   int
	}{
		{1, "january", 1},
		{31, "january", 31},
		{32, "february", 1},
		{59, "february", 28},
		{60, "march", 1},
		{365, "december", 31},
	}

	for _, tt := range tests {
		month, rel, err := MonthForDay(tt.day)
		require.NoError(t, err)
		assert.Equal(t, tt.month, month, "day %d", tt.day)
		assert.Equal(t, tt.rel, rel, "day %d", tt.day)
	}
}

func TestMonthForDay_OutOfRange(t *testing.T) {
	for _, day := range []int{0, -1, 366} {
		_, _, err := MonthForDay(day)
		assert.Error(t, err, "day %d", day)
	}
}

// Every day of the year must survive the round trip through its (month,
// relative day) pair. February is pinned at 28 days so the mapping is exact.
func TestCalendar_RoundTripAllDays(t *testing.T) {
	for day := 1; day <= DaysInYear; day++ {
		month, rel, err := MonthForDay(day)
		require.NoError(t, err)

		back, err := AbsoluteDay(month, rel)
		require.NoError(t, err)
		assert.Equal(t, day, back)
	}
}

func TestAbsoluteDay_Invalid(t *testing.T) {
	_, err := AbsoluteDay("smarch", 1)
	assert.Error(t, err)

	_, err = AbsoluteDay("february", 29)
	assert.Error(t, err, "february has 28 slots")

	_, err = AbsoluteDay("april", 31)
	assert.Error(t, err)
}

func TestDateForDay(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "2026-01-01", DateForDay(start, 1))
	assert.Equal(t, "2026-02-01", DateForDay(start, 32))
	assert.Equal(t, "2026-12-31", DateForDay(start, 365))
}

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("February")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = MonthIndex("frimaire")
	assert.False(t, ok)
}
