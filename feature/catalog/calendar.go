package catalog

import (
	"fmt"
	"strings"
	"time"
)

// monthNames lists the calendar months in order.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthLengths pins February at 28 days so the 365-day calendar maps exactly.
var monthLengths = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInYear is the number of slots in the release calendar.
const DaysInYear = 365

// MonthIndex returns the zero-based index of a lowercase month name.
func MonthIndex(month string) (int, bool) {
	m := strings.ToLower(strings.TrimSpace(month))
	for i, name := range monthNames {
		if name == m {
			return i, true
		}
	}
	return 0, false
}

// MonthForDay converts an absolute day-of-year (1..365) to its month name and
// relative day-of-month. Asset files are named by day-within-month, so every
// storage path goes through this conversion.
func MonthForDay(day int) (string, int, error) {
	if day < 1 || day > DaysInYear {
		return "", 0, fmt.Errorf("day %d out of range 1..%d", day, DaysInYear)
	}
	rel := day
	for i, length := range monthLengths {
		if rel <= length {
			return monthNames[i], rel, nil
		}
		rel -= length
	}
	// Unreachable while monthLengths sums to DaysInYear.
	return "", 0, fmt.Errorf("day %d not mapped", day)
}

// AbsoluteDay converts a (month, relative day) pair back to a day-of-year.
func AbsoluteDay(month string, relDay int) (int, error) {
	idx, ok := MonthIndex(month)
	if !ok {
		return 0, fmt.Errorf("unknown month %q", month)
	}
	if relDay < 1 || relDay > monthLengths[idx] {
		return 0, fmt.Errorf("day %d out of range for %s", relDay, month)
	}
	day := relDay
	for i := 0; i < idx; i++ {
		day += monthLengths[i]
	}
	return day, nil
}

// DateForDay returns the ISO calendar date of a release day, counted from the
// project start date using local calendar arithmetic.
func DateForDay(start time.Time, day int) string {
	return start.AddDate(0, 0, day-1).Format("2006-01-02")
}

// MonthNames returns the calendar months in order.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames)
	return out
}
