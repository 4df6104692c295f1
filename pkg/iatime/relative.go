package iatime

import (
	"strconv"
	"strings"
	"time"

	"github.com/msto63/iadate/foundation/utils/timex"
)

// zeroPhrase is the verbose phrase for a zero difference
const zeroPhrase = "0 seconds"

// Describer produces relative descriptions such as "in 3 days" or "-2H"
type Describer struct {
	units RelativeUnitTable
	now   func() time.Time
}

// DescriberOption configures a Describer
type DescriberOption func(*Describer)

// WithClock replaces the clock used for descriptions relative to now
func WithClock(now func() time.Time) DescriberOption {
	return func(d *Describer) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDescriber creates a describer with the default unit table
func NewDescriber(opts ...DescriberOption) *Describer {
	d := &Describer{
		units: DefaultRelativeUnits(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDescriber = NewDescriber()

// RelativeDescription describes the later of from and to relative to the
// earlier one, so the phrase is always forward ("in 3 days", "3D") or "now".
func (d *Describer) RelativeDescription(from, to time.Time, format Format) (string, error) {
	if to.Before(from) {
		from, to = to, from
	}
	return d.describe(to, from, format)
}

// RelativeIATime describes the instant at ticks relative to now
func (d *Describer) RelativeIATime(ticks int64, format Format) (string, error) {
	return d.describe(TimeFromTicks(ticks), d.now(), format)
}

// RelativeUnixTime describes the Unix second sec relative to now
func (d *Describer) RelativeUnixTime(sec int64, format Format) (string, error) {
	return d.RelativeIATime(TicksFromUnix(sec), format)
}

func (d *Describer) describe(target, reference time.Time, format Format) (string, error) {
	phrase := timex.RelativePhrase(target, reference)
	if format == FormatText {
		return phrase, nil
	}
	return d.CompactPhrase(phrase)
}

// CompactPhrase turns a verbose relative phrase into its short form:
//
//	"0 seconds"   -> "now"
//	"in 3 days"   -> "3D"
//	"2 hours ago" -> "-2H"
//
// Unit words missing from the table keep only the value ("in 5 seconds" -> "5").
func (d *Describer) CompactPhrase(phrase string) (string, error) {
	phrase = strings.TrimSpace(phrase)
	if phrase == zeroPhrase {
		return "now", nil
	}

	parts := strings.Fields(phrase)
	if len(parts) != 3 {
		return "", unparsablePhrase(phrase)
	}

	var value, word, sign string
	switch {
	case parts[0] == "in":
		value, word = parts[1], parts[2]
	case parts[2] == "ago":
		value, word, sign = parts[0], parts[1], "-"
	default:
		return "", unparsablePhrase(phrase)
	}

	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return "", unparsablePhrase(phrase)
	}

	code, _ := d.units.Code(word)
	return sign + value + code, nil
}

// RelativeDescription describes the later of from and to relative to the earlier one
func RelativeDescription(from, to time.Time, format Format) (string, error) {
	return defaultDescriber.RelativeDescription(from, to, format)
}

// RelativeIATime describes the instant at ticks relative to now
func RelativeIATime(ticks int64, format Format) (string, error) {
	return defaultDescriber.RelativeIATime(ticks, format)
}

// RelativeUnixTime describes the Unix second sec relative to now
func RelativeUnixTime(sec int64, format Format) (string, error) {
	return defaultDescriber.RelativeUnixTime(sec, format)
}

// CompactPhrase compacts a verbose relative phrase with the default unit table
func CompactPhrase(phrase string) (string, error) {
	return defaultDescriber.CompactPhrase(phrase)
}

// TimeUntil describes t relative to the instant
func (i Instant) TimeUntil(t time.Time, format Format) (string, error) {
	return defaultDescriber.describe(t, i.Time(), format)
}
