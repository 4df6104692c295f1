package iatime

import "time"

// TicksFromTime converts t to ticks, flooring partial ticks toward the past
func TicksFromTime(t time.Time) int64 {
	return floorDiv(t.Unix()-UnixOffset, SecondsPerTick)
}

// TimeFromTicks returns the UTC instant at the start of the tick
func TimeFromTicks(ticks int64) time.Time {
	return time.Unix(UnixFromTicks(ticks), 0).UTC()
}

// TicksFromUnix converts Unix seconds to ticks
func TicksFromUnix(sec int64) int64 {
	return floorDiv(sec-UnixOffset, SecondsPerTick)
}

// UnixFromTicks converts ticks to Unix seconds
func UnixFromTicks(ticks int64) int64 {
	return UnixOffset + ticks*SecondsPerTick
}

// UnixSeconds normalizes a timestamp of the given scale to whole seconds
func UnixSeconds(v int64, scale UnitScale) int64 {
	if scale <= 0 {
		scale = Seconds
	}
	return floorDiv(v, int64(scale))
}

// NowTicks returns the current tick count. It does not allocate and is safe
// to call from any goroutine.
func NowTicks() int64 {
	return TicksFromTime(time.Now())
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
