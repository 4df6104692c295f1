package iatime

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, h, min int) Instant {
	return FromTime(time.Date(y, m, d, h, min, 0, 0, time.UTC))
}

func TestAddDaysFromOrigin(t *testing.T) {
	i := FromTicks(0)
	i.AddDays(1)
	if i.Ticks() != 288 {
		t.Errorf("AddDays(1) = %d, want 288", i.Ticks())
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name  string
		start Instant
		n     int
		unit  Unit
		want  Instant
	}{
		{"five minutes", FromTicks(0), 3, FiveMinute, FromTicks(3)},
		{"hours", FromTicks(0), 2, Hour, FromTicks(24)},
		{"negative days", FromTicks(0), -1, Day, FromTicks(-288)},
		{"weeks", FromTicks(0), 2, Week, FromTicks(4032)},
		{"month clamps to leap february", at(2024, 1, 31, 10, 0), 1, Month, at(2024, 2, 29, 10, 0)},
		{"months step through february", at(2024, 1, 31, 10, 0), 2, Month, at(2024, 3, 29, 10, 0)},
		{"month backwards clamps", at(2024, 3, 31, 0, 0), -1, Month, at(2024, 2, 29, 0, 0)},
		{"year from leap day", at(2024, 2, 29, 0, 0), 1, Year, at(2025, 2, 28, 0, 0)},
		{"years stay clamped", at(2024, 2, 29, 0, 0), 4, Year, at(2028, 2, 28, 0, 0)},
		{"zero months", at(2024, 1, 31, 0, 0), 0, Month, at(2024, 1, 31, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := tt.start
			if err := i.Add(tt.n, tt.unit); err != nil {
				t.Fatalf("Add() error: %v", err)
			}
			if !i.Equal(tt.want) {
				t.Errorf("Add(%d, %v) = %v, want %v", tt.n, tt.unit, i, tt.want)
			}
		})
	}
}

func TestAddUnsupported(t *testing.T) {
	for _, unit := range []Unit{Minute, Automatic} {
		i := FromTicks(7)
		err := i.Add(1, unit)
		if !IsUnsupportedUnit(err) {
			t.Errorf("Add(1, %v) error = %v, want UnsupportedUnit", unit, err)
		}
		if i.Ticks() != 7 {
			t.Errorf("Add(1, %v) changed the instant to %d", unit, i.Ticks())
		}
	}
}

func TestNamedAdders(t *testing.T) {
	i := FromTicks(0)
	i.AddFiveMinutes(1)
	i.AddHours(1)
	i.AddWeeks(1)
	if want := int64(1 + 12 + 2016); i.Ticks() != want {
		t.Errorf("ticks = %d, want %d", i.Ticks(), want)
	}

	j := at(2001, 1, 1, 0, 0)
	j.AddMonths(1)
	j.AddYears(1)
	if !j.Equal(at(2002, 2, 1, 0, 0)) {
		t.Errorf("AddMonths/AddYears = %v", j)
	}
}

func TestNext(t *testing.T) {
	origin := FromTicks(0)

	tests := []struct {
		field Field
		want  int64
	}{
		{FieldHour, 12},
		{FieldDay, 288},
		{FieldWeekOfMonth, 2016},
		{FieldWeekOfYear, 2016},
		{FieldMonth, 31 * 288},
		{FieldYear, 365 * 288},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			next, err := origin.Next(tt.field)
			if err != nil {
				t.Fatalf("Next() error: %v", err)
			}
			if next.Ticks() != tt.want {
				t.Errorf("Next(%v) = %d, want %d", tt.field, next.Ticks(), tt.want)
			}
		})
	}

	if _, err := origin.Next(FieldMinute); !IsUnsupportedUnit(err) {
		t.Errorf("Next(minute) error = %v", err)
	}
}

func TestNextValue(t *testing.T) {
	origin := FromTicks(0)

	tests := []struct {
		name   string
		field  Field
		kind   ResultKind
		format Format
		want   string
	}{
		{"ticks", FieldDay, ResultTicks, FormatNumber, "288"},
		{"unix", FieldDay, ResultUnix, FormatNumber, "978393600"},
		{"month text", FieldMonth, ResultCalendar, FormatText, "February"},
		{"month number", FieldMonth, ResultCalendar, FormatNumber, "02"},
		{"day text", FieldDay, ResultCalendar, FormatText, "Tuesday"},
		{"year", FieldYear, ResultCalendar, FormatNumber, "2002"},
		{"hour", FieldHour, ResultCalendar, FormatNumber, "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := origin.NextValue(tt.field, tt.kind, tt.format)
			if err != nil {
				t.Fatalf("NextValue() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextValue() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := origin.NextValue(FieldSecond, ResultTicks, FormatNumber); !IsUnsupportedUnit(err) {
		t.Errorf("NextValue(second) error = %v", err)
	}
}

func TestDayBoundaries(t *testing.T) {
	i := at(2001, 1, 2, 13, 5)
	i.StartOfDay()
	if i.Ticks() != 288 {
		t.Errorf("StartOfDay() = %d, want 288", i.Ticks())
	}
	i.AddHours(5)
	i.EndOfDay()
	if i.Ticks() != 575 {
		t.Errorf("EndOfDay() = %d, want 575", i.Ticks())
	}

	before := FromTicks(-1)
	before.StartOfDay()
	if before.Ticks() != -288 {
		t.Errorf("StartOfDay() before origin = %d, want -288", before.Ticks())
	}
}
