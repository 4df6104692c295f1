// File: relative.go
// Title: Relative Time Phrases
// Description: Produces English relative phrases ("in 3 days", "2 hours ago")
//              from the calendar difference between two instants.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"time"
)

// Unit names used in relative phrases, singular form
const (
	UnitYear   = "year"
	UnitMonth  = "month"
	UnitWeek   = "week"
	UnitDay    = "day"
	UnitHour   = "hour"
	UnitMinute = "minute"
	UnitSecond = "second"
)

// CalendarDiff is the difference between two instants in whole calendar units,
// each counted independently from the earlier instant.
type CalendarDiff struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Diff returns the calendar difference between a and b regardless of order
func Diff(a, b time.Time) CalendarDiff {
	if b.Before(a) {
		a, b = b, a
	}

	months := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	if months > 0 && AddMonthsClamped(a, months).After(b) {
		months--
	}

	d := b.Sub(a)
	days := int(d / (24 * time.Hour))

	return CalendarDiff{
		Years:   months / 12,
		Months:  months,
		Weeks:   days / 7,
		Days:    days,
		Hours:   int(d / time.Hour),
		Minutes: int(d / time.Minute),
		Seconds: int(d / time.Second),
	}
}

// Largest returns the coarsest unit with a value of at least one and its value.
// A zero difference is reported as 0 seconds.
func (c CalendarDiff) Largest() (int, string) {
	switch {
	case c.Years >= 1:
		return c.Years, UnitYear
	case c.Months >= 1:
		return c.Months, UnitMonth
	case c.Weeks >= 1:
		return c.Weeks, UnitWeek
	case c.Days >= 1:
		return c.Days, UnitDay
	case c.Hours >= 1:
		return c.Hours, UnitHour
	case c.Minutes >= 1:
		return c.Minutes, UnitMinute
	default:
		return c.Seconds, UnitSecond
	}
}

// RelativePhrase describes target relative to reference in English:
// "in 3 days" for a future target, "3 days ago" for a past one and
// "0 seconds" when both are within the same second.
func RelativePhrase(target, reference time.Time) string {
	value, unit := Diff(target, reference).Largest()
	quantity := Quantity(value, unit)

	switch {
	case value == 0:
		return quantity
	case target.After(reference):
		return "in " + quantity
	default:
		return quantity + " ago"
	}
}

// Quantity renders "1 day" or "3 days"
func Quantity(value int, unit string) string {
	if value == 1 || value == -1 {
		return fmt.Sprintf("%d %s", value, unit)
	}
	return fmt.Sprintf("%d %ss", value, unit)
}
