package iatime

import (
	"strconv"
	"time"

	"github.com/msto63/iadate/foundation/utils/timex"
)

// Next returns the instant one calendar field ahead. Hours and days are
// added on the calendar; week fields advance seven days; month and year use
// calendar arithmetic clamped to the end of the target month.
func (i Instant) Next(field Field) (Instant, error) {
	t, err := nextTime(i.Time(), field)
	if err != nil {
		return i, err
	}
	return FromTime(t), nil
}

func nextTime(t time.Time, field Field) (time.Time, error) {
	switch field {
	case FieldHour:
		return t.Add(time.Hour), nil
	case FieldDay:
		return t.AddDate(0, 0, 1), nil
	case FieldWeekOfMonth, FieldWeekOfYear:
		return t.AddDate(0, 0, DaysPerWeek), nil
	case FieldMonth:
		return timex.AddMonthsClamped(t, 1), nil
	case FieldYear:
		return timex.AddYearsClamped(t, 1), nil
	default:
		return t, unsupportedUnit("iatime.Next", field.String())
	}
}

// NextValue advances one field like Next and returns the result as ticks,
// Unix seconds or the rendered calendar field.
func (r *Renderer) NextValue(i Instant, field Field, kind ResultKind, format Format) (string, error) {
	next, err := i.Next(field)
	if err != nil {
		return "", err
	}

	switch kind {
	case ResultUnix:
		return strconv.FormatInt(next.Unix(), 10), nil
	case ResultCalendar:
		return r.Get(next, field, format)
	default:
		return strconv.FormatInt(next.ticks, 10), nil
	}
}

// NextValue advances one field and renders the result with the default renderer
func (i Instant) NextValue(field Field, kind ResultKind, format Format) (string, error) {
	return defaultRenderer.NextValue(i, field, kind, format)
}

// Add moves the instant by n units; negative n moves backwards.
//
// Fixed-length units (five minutes, hour, day, week) are added in one step.
// Month and year steps are applied one at a time, each against the result
// of the previous step, so January 31st plus two months is March 28th or 29th
// (via the end of February) rather than March 31st. Minute and Automatic
// return an UnsupportedUnit error and leave the instant unchanged.
func (i *Instant) Add(n int, unit Unit) error {
	switch unit {
	case FiveMinute:
		i.ticks += int64(n)
	case Hour:
		i.ticks += int64(n) * TicksPerHour
	case Day:
		i.ticks += int64(n) * TicksPerDay
	case Week:
		i.ticks += int64(n) * TicksPerWeek
	case Month, Year:
		months := 1
		if unit == Year {
			months = MonthsPerYear
		}
		if n < 0 {
			months = -months
			n = -n
		}
		t := i.Time()
		for step := 0; step < n; step++ {
			t = timex.AddMonthsClamped(t, months)
		}
		i.ticks = TicksFromTime(t)
	default:
		return unsupportedUnit("iatime.Add", unit.String())
	}
	return nil
}

// AddFiveMinutes adds n ticks
func (i *Instant) AddFiveMinutes(n int) { _ = i.Add(n, FiveMinute) }

// AddHours adds n hours
func (i *Instant) AddHours(n int) { _ = i.Add(n, Hour) }

// AddDays adds n days
func (i *Instant) AddDays(n int) { _ = i.Add(n, Day) }

// AddWeeks adds n weeks
func (i *Instant) AddWeeks(n int) { _ = i.Add(n, Week) }

// AddMonths adds n calendar months, one at a time
func (i *Instant) AddMonths(n int) { _ = i.Add(n, Month) }

// AddYears adds n calendar years, one at a time
func (i *Instant) AddYears(n int) { _ = i.Add(n, Year) }
