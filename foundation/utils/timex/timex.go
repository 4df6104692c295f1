// File: timex.go
// Title: Core Calendar Utilities
// Description: Date layouts, day boundaries, clamped month/year arithmetic and
//              month/weekday names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Reduced to calendar helpers, added clamped AddMonths/AddYears

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

// Common layouts
const (
	// DayMonthYear is the dd-MM-yyyy date-only layout
	DayMonthYear = "02-01-2006"

	// DayMonthYearTime is the dd-MM-yyyy HH:mm zzz layout
	DayMonthYearTime = "02-01-2006 15:04 MST"

	ISO8601 = "2006-01-02T15:04:05Z07:00"
)

// ===============================
// Parsing
// ===============================

// ParseDate parses a dd-MM-yyyy string as midnight UTC
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, mdwerror.New("empty date string").
			WithCode(mdwerror.CodeMalformedInput).
			WithOperation("timex.ParseDate")
	}

	t, err := time.ParseInLocation(DayMonthYear, value, time.UTC)
	if err != nil {
		return time.Time{}, mdwerror.Wrap(err, "date must be dd-MM-yyyy").
			WithCode(mdwerror.CodeMalformedInput).
			WithOperation("timex.ParseDate").
			WithDetail("input", value)
	}
	return t, nil
}

// ===============================
// Day boundaries
// ===============================

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Calendar arithmetic
// ===============================

// AddMonthsClamped adds n calendar months. When the target month is shorter
// than the current day of month the result is clamped to its last day, so
// January 31st plus one month is the end of February rather than March 3rd.
func AddMonthsClamped(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}

	total := int(t.Month()) - 1 + n
	year := t.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)

	day := t.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYearsClamped adds n calendar years; February 29th becomes February 28th
// in non-leap years.
func AddYearsClamped(t time.Time, n int) time.Time {
	return AddMonthsClamped(t, n*12)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// ===============================
// Names
// ===============================

// MonthName returns the English name of month n (1 = January)
func MonthName(n int) (string, bool) {
	if n < 1 || n > 12 {
		return "", false
	}
	return time.Month(n).String(), true
}

// WeekdayName returns the English name of weekday n (1 = Sunday, 7 = Saturday)
func WeekdayName(n int) (string, bool) {
	if n < 1 || n > 7 {
		return "", false
	}
	return time.Weekday(n - 1).String(), true
}
