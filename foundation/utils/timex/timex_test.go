// File: timex_test.go
// Title: Calendar Utilities Tests
// Description: Tests for date parsing, clamped arithmetic, pattern rendering,
//              week numbering and relative phrases.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-19 v0.2.0: Pattern formatter and relative phrase tests

package timex

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

func date(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

// ===============================
// Parsing Tests
// ===============================

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"origin", "01-01-2001", date(2001, 1, 1, 0, 0), false},
		{"leap day", "29-02-2024", date(2024, 2, 29, 0, 0), false},
		{"padded input", "  15-06-2020 ", date(2020, 6, 15, 0, 0), false},
		{"day out of range", "32-01-2020", time.Time{}, true},
		{"not a leap year", "29-02-2023", time.Time{}, true},
		{"wrong layout", "2020-01-15", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error", tc.input)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeMalformedInput) {
					t.Errorf("ParseDate(%q) error code = %v", tc.input, mdwerror.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// ===============================
// Calendar Arithmetic Tests
// ===============================

func TestAddMonthsClamped(t *testing.T) {
	testCases := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"plain", date(2021, 3, 15, 10, 5), 1, date(2021, 4, 15, 10, 5)},
		{"clamp leap february", date(2024, 1, 31, 0, 0), 1, date(2024, 2, 29, 0, 0)},
		{"clamp february", date(2023, 1, 31, 0, 0), 1, date(2023, 2, 28, 0, 0)},
		{"year rollover", date(2023, 11, 30, 0, 0), 3, date(2024, 2, 29, 0, 0)},
		{"backwards", date(2024, 3, 31, 0, 0), -1, date(2024, 2, 29, 0, 0)},
		{"backwards over year", date(2024, 1, 15, 0, 0), -13, date(2022, 12, 15, 0, 0)},
		{"zero", date(2024, 1, 31, 0, 0), 0, date(2024, 1, 31, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddMonthsClamped(tc.start, tc.n); !got.Equal(tc.want) {
				t.Errorf("AddMonthsClamped(%v, %d) = %v, want %v", tc.start, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddYearsClamped(t *testing.T) {
	got := AddYearsClamped(date(2024, 2, 29, 12, 0), 1)
	if want := date(2025, 2, 28, 12, 0); !got.Equal(want) {
		t.Errorf("AddYearsClamped() = %v, want %v", got, want)
	}
}

func TestDayBoundaries(t *testing.T) {
	ts := date(2021, 7, 4, 13, 45)
	if got := StartOfDay(ts); !got.Equal(date(2021, 7, 4, 0, 0)) {
		t.Errorf("StartOfDay() = %v", got)
	}
	end := EndOfDay(ts)
	if end.Day() != 4 || end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("EndOfDay() = %v", end)
	}
	if DaysIn(2024, time.February) != 29 || DaysIn(2023, time.February) != 28 {
		t.Error("DaysIn() february mismatch")
	}
}

func TestNames(t *testing.T) {
	if name, ok := MonthName(1); !ok || name != "January" {
		t.Errorf("MonthName(1) = %q, %v", name, ok)
	}
	if _, ok := MonthName(13); ok {
		t.Error("MonthName(13) should fail")
	}
	if name, ok := WeekdayName(1); !ok || name != "Sunday" {
		t.Errorf("WeekdayName(1) = %q, %v", name, ok)
	}
	if name, ok := WeekdayName(7); !ok || name != "Saturday" {
		t.Errorf("WeekdayName(7) = %q, %v", name, ok)
	}
	if _, ok := WeekdayName(0); ok {
		t.Error("WeekdayName(0) should fail")
	}
}

// ===============================
// Pattern Tests
// ===============================

func TestFormatPattern(t *testing.T) {
	// 2001-01-01 was a Monday
	origin := date(2001, 1, 1, 0, 0)
	afternoon := date(2023, 7, 9, 15, 7)

	testCases := []struct {
		name    string
		t       time.Time
		pattern string
		want    string
	}{
		{"origin layout", origin, "dd-MM-yyyy HH:mm zzz", "01-01-2001 00:00 GMT"},
		{"month name", afternoon, "MMMM", "July"},
		{"month abbreviation", afternoon, "MMM", "Jul"},
		{"weekday name", afternoon, "EEEE", "Sunday"},
		{"weekday abbreviation", afternoon, "EEE", "Sun"},
		{"two digit year", afternoon, "yy", "23"},
		{"twelve hour", afternoon, "h:mm a", "3:07 PM"},
		{"midnight twelve hour", origin, "hh a", "12 AM"},
		{"quoted literal", afternoon, "HH 'o''clock'", "15 o'clock"},
		{"escaped quote", afternoon, "d''M", "9'7"},
		{"day padding", afternoon, "dd", "09"},
		{"seconds", afternoon, "ss", "00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatPattern(tc.t, tc.pattern)
			if err != nil {
				t.Fatalf("FormatPattern(%q) error: %v", tc.pattern, err)
			}
			if got != tc.want {
				t.Errorf("FormatPattern(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}
}

func TestFormatPatternErrors(t *testing.T) {
	for _, pattern := range []string{"'open", "QQQ", "yyyy-MM-dd G"} {
		if _, err := FormatPattern(date(2020, 1, 1, 0, 0), pattern); err == nil {
			t.Errorf("FormatPattern(%q) expected error", pattern)
		}
	}
}

func TestWeekNumbers(t *testing.T) {
	testCases := []struct {
		name        string
		t           time.Time
		weekOfYear  int
		weekOfMonth int
	}{
		// 2023-01-01 is a Sunday
		{"first sunday", date(2023, 1, 1, 0, 0), 1, 1},
		{"first saturday", date(2023, 1, 7, 0, 0), 1, 1},
		{"second week", date(2023, 1, 8, 0, 0), 2, 2},
		// 2021-01-01 is a Friday, so Jan 3 starts week 2
		{"friday start", date(2021, 1, 3, 0, 0), 2, 2},
		// 2023-12-31 is a Sunday, its week contains 2024-01-01
		{"december rollover", date(2023, 12, 31, 0, 0), 1, 6},
		// 2022-12-31 is a Saturday, still in 2022's last week
		{"december last week", date(2022, 12, 31, 0, 0), 53, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekOfYear(tc.t); got != tc.weekOfYear {
				t.Errorf("WeekOfYear(%v) = %d, want %d", tc.t, got, tc.weekOfYear)
			}
			if got := WeekOfMonth(tc.t); got != tc.weekOfMonth {
				t.Errorf("WeekOfMonth(%v) = %d, want %d", tc.t, got, tc.weekOfMonth)
			}
		})
	}
}

func TestFormatStyle(t *testing.T) {
	ts := date(2023, 7, 9, 15, 7)

	testCases := []struct {
		style Style
		want  string
	}{
		{StyleShort, "7/9/23, 3:07 PM"},
		{StyleMedium, "Jul 9, 2023, 3:07:00 PM"},
		{StyleLong, "July 9, 2023 at 3:07:00 PM GMT"},
		{StyleFull, "Sunday, July 9, 2023 at 3:07:00 PM Greenwich Mean Time"},
	}

	for _, tc := range testCases {
		t.Run(tc.style.String(), func(t *testing.T) {
			got, err := FormatStyle(ts, tc.style)
			if err != nil {
				t.Fatalf("FormatStyle() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("FormatStyle() = %q, want %q", got, tc.want)
			}
		})
	}

	if _, err := FormatStyle(ts, Style(42)); err == nil {
		t.Error("FormatStyle(42) expected error")
	}
}

func TestParseStyle(t *testing.T) {
	if s, err := ParseStyle("LONG"); err != nil || s != StyleLong {
		t.Errorf("ParseStyle(LONG) = %v, %v", s, err)
	}
	if _, err := ParseStyle("tiny"); err == nil {
		t.Error("ParseStyle(tiny) expected error")
	}
}

func TestNewPatternFormatter(t *testing.T) {
	testCases := []struct {
		locale  string
		wantErr bool
	}{
		{"", false},
		{"en_US", false},
		{"en-GB", false},
		{"de_DE", true},
		{"not a locale!", true},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			f, err := NewPatternFormatter(tc.locale)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NewPatternFormatter(%q) expected error", tc.locale)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeUnsupportedLocale) {
					t.Errorf("error code = %v", mdwerror.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPatternFormatter(%q) error: %v", tc.locale, err)
			}
			if f.Locale() == "" {
				t.Error("Locale() should not be empty")
			}
		})
	}
}

// ===============================
// Relative Phrase Tests
// ===============================

func TestRelativePhrase(t *testing.T) {
	ref := date(2023, 5, 10, 12, 0)

	testCases := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"same instant", ref, "0 seconds"},
		{"three days ahead", ref.AddDate(0, 0, 3), "in 3 days"},
		{"two hours back", ref.Add(-2 * time.Hour), "2 hours ago"},
		{"one minute ahead", ref.Add(time.Minute), "in 1 minute"},
		{"five minutes back", ref.Add(-5 * time.Minute), "5 minutes ago"},
		{"one week", ref.AddDate(0, 0, 7), "in 1 week"},
		{"thirteen days", ref.AddDate(0, 0, 13), "in 1 week"},
		{"two months", ref.AddDate(0, 2, 0), "in 2 months"},
		{"one year back", ref.AddDate(-1, 0, 0), "1 year ago"},
		{"thirty seconds", ref.Add(30 * time.Second), "in 30 seconds"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativePhrase(tc.target, ref); got != tc.want {
				t.Errorf("RelativePhrase() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDiffOrderIndependent(t *testing.T) {
	a := date(2024, 1, 31, 0, 0)
	b := date(2024, 2, 29, 0, 0)

	if Diff(a, b) != Diff(b, a) {
		t.Error("Diff() should not depend on argument order")
	}
	if got := Diff(a, b).Months; got != 1 {
		t.Errorf("Diff().Months = %d, want 1", got)
	}
}
