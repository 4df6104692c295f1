package iatime

// IsSameDay reports whether a and b fall on the same UTC calendar date
func IsSameDay(a, b Instant) bool {
	ay, am, ad := a.Time().Date()
	by, bm, bd := b.Time().Date()
	return ay == by && am == bm && ad == bd
}

// TimeBetween describes the distance between a and b. The result does not
// depend on argument order.
func TimeBetween(a, b Instant, format Format) (string, error) {
	return defaultDescriber.RelativeDescription(a.Time(), b.Time(), format)
}
