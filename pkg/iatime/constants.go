package iatime

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

// Calendar model constants
const (
	SecondsPerTick = 300
	MinutesPerTick = 5
	MinutesPerHour = 60
	HoursPerDay    = 24
	DaysPerWeek    = 7
	MonthsPerYear  = 12

	TicksPerHour = MinutesPerHour / MinutesPerTick
	TicksPerDay  = TicksPerHour * HoursPerDay
	TicksPerWeek = TicksPerDay * DaysPerWeek

	// TicksPerMonth and TicksPerYear use the average month of 30.4375 days
	TicksPerMonth = TicksPerDay * 487 / 16
	TicksPerYear  = TicksPerMonth * MonthsPerYear

	// UnixOffset is the number of seconds between 1970-01-01 and the origin
	UnixOffset int64 = 978307200
)

// Origin is the zero point of IA time
var Origin = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Ratio is an exact rational number
type Ratio struct {
	Num int64
	Den int64
}

// Float returns the ratio as a float64 for display
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Constants is the calendar model used by the extractor
type Constants struct {
	SecondsPerTick int64
	MinutesPerTick int64
	MinutesPerHour int64
	HoursPerDay    int64
	DaysPerWeek    int64
	MonthsPerYear  int64

	// Approximate averages, 30.4375 and 365.25 days
	DaysPerMonth Ratio
	DaysPerYear  Ratio
}

var defaultConstants = &Constants{
	SecondsPerTick: SecondsPerTick,
	MinutesPerTick: MinutesPerTick,
	MinutesPerHour: MinutesPerHour,
	HoursPerDay:    HoursPerDay,
	DaysPerWeek:    DaysPerWeek,
	MonthsPerYear:  MonthsPerYear,
	DaysPerMonth:   Ratio{Num: 487, Den: 16},
	DaysPerYear:    Ratio{Num: 1461, Den: 4},
}

// DefaultConstants returns a copy of the standard calendar model
func DefaultConstants() Constants {
	return *defaultConstants
}

// ApproxMonths converts whole days to approximate months, truncated toward zero
func (c *Constants) ApproxMonths(days int64) int64 {
	return days * c.DaysPerMonth.Den / c.DaysPerMonth.Num
}

// ApproxYears converts whole days to approximate years via approximate months
func (c *Constants) ApproxYears(days int64) int64 {
	return c.ApproxMonths(days) / c.MonthsPerYear
}

// ApproxMonths converts whole days to approximate months with the default model
func ApproxMonths(days int64) int64 {
	return defaultConstants.ApproxMonths(days)
}

// ApproxYears converts whole days to approximate years with the default model
func ApproxYears(days int64) int64 {
	return defaultConstants.ApproxYears(days)
}

// Unit is a granularity for extraction and arithmetic
type Unit int

const (
	FiveMinute Unit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
	Automatic
)

var unitNames = map[Unit]string{
	FiveMinute: "fiveMinute",
	Minute:     "minute",
	Hour:       "hour",
	Day:        "day",
	Week:       "week",
	Month:      "month",
	Year:       "year",
	Automatic:  "automatic",
}

// String returns the unit name
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParseUnit parses a unit name; plural forms and "tick" are accepted
func ParseUnit(s string) (Unit, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "tick", "ticks", "fiveminute", "fiveminutes", "5m":
		return FiveMinute, nil
	case "auto":
		return Automatic, nil
	}
	name = strings.TrimSuffix(name, "s")
	for u, n := range unitNames {
		if strings.ToLower(n) == name {
			return u, nil
		}
	}
	return FiveMinute, mdwerror.Newf("unknown unit %q", s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("iatime.ParseUnit")
}

// Field is a calendar field rendered by Get
type Field int

const (
	FieldHour Field = iota
	FieldDay
	FieldWeekOfMonth
	FieldWeekOfYear
	FieldMonth
	FieldYear
	FieldMinute
	FieldSecond
)

var fieldNames = map[Field]string{
	FieldHour:        "hour",
	FieldDay:         "day",
	FieldWeekOfMonth: "weekOfMonth",
	FieldWeekOfYear:  "weekOfYear",
	FieldMonth:       "month",
	FieldYear:        "year",
	FieldMinute:      "minute",
	FieldSecond:      "second",
}

// String returns the field name
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseField parses a field name such as "weekOfYear" (case-insensitive)
func ParseField(s string) (Field, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range fieldNames {
		if strings.ToLower(n) == name {
			return f, nil
		}
	}
	return FieldHour, mdwerror.Newf("unknown field %q", s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("iatime.ParseField")
}

// Format selects numeric or textual rendering
type Format int

const (
	FormatNumber Format = iota
	FormatText
)

// String returns the format name
func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "number"
}

// ParseFormat parses "number" or "text"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "number", "num", "":
		return FormatNumber, nil
	case "text":
		return FormatText, nil
	default:
		return FormatNumber, mdwerror.Newf("unknown format %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("iatime.ParseFormat")
	}
}

// ResultKind selects the representation returned by NextValue
type ResultKind int

const (
	ResultTicks ResultKind = iota
	ResultCalendar
	ResultUnix
)

// ParseResultKind parses "ticks", "calendar" or "unix"
func ParseResultKind(s string) (ResultKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ticks", "ia", "":
		return ResultTicks, nil
	case "calendar", "date":
		return ResultCalendar, nil
	case "unix":
		return ResultUnix, nil
	default:
		return ResultTicks, mdwerror.Newf("unknown result kind %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("iatime.ParseResultKind")
	}
}

// UnitScale is the resolution of a Unix timestamp
type UnitScale int64

const (
	Seconds      UnitScale = 1
	Milliseconds UnitScale = 1_000
	Microseconds UnitScale = 1_000_000
	Nanoseconds  UnitScale = 1_000_000_000
)

// ParseUnitScale parses "s", "ms", "us" or "ns"
func ParseUnitScale(s string) (UnitScale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "seconds", "":
		return Seconds, nil
	case "ms", "milliseconds":
		return Milliseconds, nil
	case "us", "µs", "microseconds":
		return Microseconds, nil
	case "ns", "nanoseconds":
		return Nanoseconds, nil
	default:
		return Seconds, mdwerror.Newf("unknown unit scale %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("iatime.ParseUnitScale")
	}
}

// FormatSpec holds the patterns used to render one calendar field
type FormatSpec struct {
	Number string
	Text   string

	// Identical is true when number and text rendering are the same
	Identical bool
}

// Pattern returns the pattern for the requested format
func (s FormatSpec) Pattern(format Format) string {
	if format == FormatText {
		return s.Text
	}
	return s.Number
}

// DateFormatSpec maps calendar fields to their patterns. Minute and second
// have no entry.
type DateFormatSpec map[Field]FormatSpec

// DefaultDateFormatSpec returns a fresh copy of the standard field patterns
func DefaultDateFormatSpec() DateFormatSpec {
	return DateFormatSpec{
		FieldHour:        {Number: "HH", Text: "HH", Identical: true},
		FieldDay:         {Number: "dd", Text: "EEEE", Identical: false},
		FieldWeekOfMonth: {Number: "WW", Text: "WW", Identical: true},
		FieldWeekOfYear:  {Number: "ww", Text: "ww", Identical: true},
		FieldMonth:       {Number: "MM", Text: "MMMM", Identical: false},
		FieldYear:        {Number: "yyyy", Text: "yyyy", Identical: true},
	}
}

// RelativeUnitTable maps unit words in relative phrases to their short codes
type RelativeUnitTable map[string]string

// DefaultRelativeUnits returns a fresh copy of the unit code table
func DefaultRelativeUnits() RelativeUnitTable {
	return RelativeUnitTable{
		"minute": "m", "minutes": "m",
		"hour": "H", "hours": "H",
		"day": "D", "days": "D",
		"week": "W", "weeks": "W",
		"month": "M", "months": "M",
		"year": "Y", "years": "Y",
	}
}

// Code returns the short code for a unit word
func (t RelativeUnitTable) Code(word string) (string, bool) {
	code, ok := t[word]
	return code, ok
}
