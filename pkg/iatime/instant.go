package iatime

import (
	"strconv"
	"time"

	"github.com/msto63/iadate/foundation/utils/timex"
)

// Instant is a point in IA time
type Instant struct {
	ticks int64
}

// Now returns the current instant
func Now() Instant {
	return Instant{ticks: NowTicks()}
}

// FromTime returns the instant containing t
func FromTime(t time.Time) Instant {
	return Instant{ticks: TicksFromTime(t)}
}

// FromTicks wraps a raw tick count
func FromTicks(ticks int64) Instant {
	return Instant{ticks: ticks}
}

// FromUnix converts a Unix timestamp of the given scale
func FromUnix(v int64, scale UnitScale) Instant {
	return Instant{ticks: TicksFromUnix(UnixSeconds(v, scale))}
}

// Parse reads a dd-MM-yyyy date as midnight GMT
func Parse(s string) (Instant, error) {
	t, err := timex.ParseDate(s)
	if err != nil {
		return Instant{}, malformedInput("iatime.Parse", s, err)
	}
	return FromTime(t), nil
}

// Ticks returns the tick count
func (i Instant) Ticks() int64 {
	return i.ticks
}

// SetTicks replaces the tick count
func (i *Instant) SetTicks(ticks int64) {
	i.ticks = ticks
}

// Time returns the instant as a UTC time.Time
func (i Instant) Time() time.Time {
	return TimeFromTicks(i.ticks)
}

// Unix returns the instant in Unix seconds
func (i Instant) Unix() int64 {
	return UnixFromTicks(i.ticks)
}

// Equal reports whether both instants have the same tick count
func (i Instant) Equal(o Instant) bool {
	return i.ticks == o.ticks
}

// Before reports whether i is earlier than o
func (i Instant) Before(o Instant) bool {
	return i.ticks < o.ticks
}

// After reports whether i is later than o
func (i Instant) After(o Instant) bool {
	return i.ticks > o.ticks
}

// StartOfDay moves the instant to 00:00 GMT of its day
func (i *Instant) StartOfDay() {
	i.ticks = TicksFromTime(timex.StartOfDay(i.Time()))
}

// EndOfDay moves the instant to the last tick of its day (23:55 GMT)
func (i *Instant) EndOfDay() {
	i.StartOfDay()
	i.ticks += TicksPerDay - 1
}

// String renders the instant as dd-MM-yyyy HH:mm GMT followed by the tick count
func (i Instant) String() string {
	s, err := timex.FormatPattern(i.Time(), "dd-MM-yyyy HH:mm zzz")
	if err != nil {
		return strconv.FormatInt(i.ticks, 10)
	}
	return s + " (" + strconv.FormatInt(i.ticks, 10) + ")"
}

// MarshalText encodes the instant as its tick count
func (i Instant) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, i.ticks, 10), nil
}

// UnmarshalText decodes a tick count
func (i *Instant) UnmarshalText(data []byte) error {
	ticks, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return malformedInput("iatime.UnmarshalText", string(data), err)
	}
	i.ticks = ticks
	return nil
}
