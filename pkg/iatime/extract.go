package iatime

import (
	"time"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	"github.com/msto63/iadate/foundation/utils/timex"
)

// TicksIn returns the instant expressed in whole units. Minute, hour, day and
// week are exact, each derived from the next finer unit with integer
// division truncating toward zero. Month and year are approximate, see
// ApproxMonths. FiveMinute and Automatic return the raw tick count.
func (i Instant) TicksIn(unit Unit) int64 {
	return defaultConstants.ticksIn(i.ticks, unit)
}

func (c *Constants) ticksIn(ticks int64, unit Unit) int64 {
	minutes := ticks * c.MinutesPerTick
	hours := minutes / c.MinutesPerHour
	days := hours / c.HoursPerDay

	switch unit {
	case Minute:
		return minutes
	case Hour:
		return hours
	case Day:
		return days
	case Week:
		return days / c.DaysPerWeek
	case Month:
		return c.ApproxMonths(days)
	case Year:
		return c.ApproxYears(days)
	default:
		return ticks
	}
}

// Renderer renders calendar fields of instants for one locale
type Renderer struct {
	spec      DateFormatSpec
	formatter *timex.PatternFormatter
}

var defaultRenderer = &Renderer{
	spec:      DefaultDateFormatSpec(),
	formatter: mustFormatter(timex.DefaultLocale),
}

func mustFormatter(locale string) *timex.PatternFormatter {
	f, err := timex.NewPatternFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// NewRenderer creates a renderer for locale, e.g. "en_US"
func NewRenderer(locale string) (*Renderer, error) {
	f, err := timex.NewPatternFormatter(locale)
	if err != nil {
		return nil, err
	}
	return &Renderer{spec: DefaultDateFormatSpec(), formatter: f}, nil
}

// DefaultRenderer returns the en_US renderer used by Instant methods
func DefaultRenderer() *Renderer {
	return defaultRenderer
}

// Locale returns the renderer's locale tag
func (r *Renderer) Locale() string {
	return r.formatter.Locale()
}

// Get renders a single calendar field of i. Fields without a pattern, such
// as minute and second, return an UnsupportedUnit error.
func (r *Renderer) Get(i Instant, field Field, format Format) (string, error) {
	return r.renderField(i.Time(), field, format, "iatime.Get")
}

func (r *Renderer) renderField(t time.Time, field Field, format Format, op string) (string, error) {
	spec, ok := r.spec[field]
	if !ok {
		return "", unsupportedUnit(op, field.String())
	}
	return r.formatter.Format(t, spec.Pattern(format))
}

// Format renders i with a Unicode date pattern
func (r *Renderer) Format(i Instant, pattern string) (string, error) {
	return r.formatter.Format(i.Time(), pattern)
}

// FormatStyle renders i with a predefined style
func (r *Renderer) FormatStyle(i Instant, style timex.Style) (string, error) {
	return r.formatter.FormatStyle(i.Time(), style)
}

// Get renders a single calendar field with the default renderer
func (i Instant) Get(field Field, format Format) (string, error) {
	return defaultRenderer.Get(i, field, format)
}

// Format renders the instant with a Unicode date pattern
func (i Instant) Format(pattern string) (string, error) {
	return defaultRenderer.Format(i, pattern)
}

// FormatStyle renders the instant with a predefined style
func (i Instant) FormatStyle(style timex.Style) (string, error) {
	return defaultRenderer.FormatStyle(i, style)
}

var spanThresholds = []struct {
	unit  Unit
	ticks int64
}{
	{Year, TicksPerYear},
	{Month, TicksPerMonth},
	{Week, TicksPerWeek},
	{Day, TicksPerDay},
	{Hour, TicksPerHour},
}

// FormatSpan describes a tick span in the given unit, e.g. "3 days".
// Automatic picks the coarsest unit the span reaches; shorter spans are
// shown in minutes. Month and year spans are approximate.
func FormatSpan(ticks int64, style Unit) string {
	if style == Automatic {
		style = Minute
		abs := ticks
		if abs < 0 {
			abs = -abs
		}
		for _, th := range spanThresholds {
			if abs >= th.ticks {
				style = th.unit
				break
			}
		}
	}

	switch style {
	case FiveMinute:
		return timex.Quantity(int(ticks), "tick")
	case Month:
		return timex.Quantity(int(ticks/TicksPerMonth), timex.UnitMonth)
	case Year:
		return timex.Quantity(int(ticks/TicksPerYear), timex.UnitYear)
	default:
		return timex.Quantity(int(defaultConstants.ticksIn(ticks, style)), style.String())
	}
}

// MonthName returns the English name of month n (1 = January)
func MonthName(n int) (string, error) {
	name, ok := timex.MonthName(n)
	if !ok {
		return "", mdwerror.Newf("month %d out of range", n).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("iatime.MonthName")
	}
	return name, nil
}

// WeekdayName returns the English name of weekday n (1 = Sunday)
func WeekdayName(n int) (string, error) {
	name, ok := timex.WeekdayName(n)
	if !ok {
		return "", mdwerror.Newf("weekday %d out of range", n).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("iatime.WeekdayName")
	}
	return name, nil
}
