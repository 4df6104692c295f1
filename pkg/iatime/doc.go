// ============================================================================
// iadate - IA Time
// ============================================================================
//
// Package:     iatime
// Description: IA time: five-minute ticks since 2001-01-01 00:00 GMT
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package iatime implements IA time, a signed count of five-minute ticks since
// the origin 2001-01-01T00:00:00Z.
//
// An Instant stores only its tick count. Everything else is derived from it:
//
//	i := iatime.FromUnix(978307200, iatime.Seconds) // ticks 0
//	i.AddDays(1)                                    // ticks 288
//	day, _ := i.Get(iatime.FieldDay, iatime.FormatText) // "Tuesday"
//
// Conversions between ticks, Unix seconds and time.Time use floor division
// so instants before the origin map to negative ticks consistently.
//
// Month and year tick counts are approximate. They divide by the average
// month of 30.4375 days and drift from real calendar months; use Next or Add
// for calendar-correct month and year arithmetic.
//
// Instant is not safe for concurrent mutation. Callers sharing one value
// across goroutines must guard Add, SetTicks, StartOfDay and EndOfDay.
package iatime
