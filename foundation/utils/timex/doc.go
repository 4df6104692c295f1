// Package timex implements the calendar side of iadate: Unicode date pattern
// rendering, verbose relative phrases and calendar-correct arithmetic.
//
// Package: timex
// Title: Calendar Formatting Utilities
// Description: Renders time.Time values with Unicode (CLDR) date patterns,
//              produces English relative phrases such as "in 3 days" and
//              adds months and years without overflowing into the next month.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Unicode pattern formatter, relative phrases, clamped month arithmetic
//
// # Patterns
//
// FormatPattern understands the subset of the Unicode date field symbols that
// iadate needs:
//
//	y yy yyyy   year
//	M MM MMM MMMM  month as number, abbreviation or name
//	d dd        day of month
//	H HH h hh   hour (24h / 12h)
//	m mm s ss   minute, second
//	E EEE EEEE  weekday abbreviation or name
//	w ww        week of year
//	W WW        week of month
//	a           AM/PM marker
//	z zzz       zone abbreviation
//
// Text between single quotes is copied verbatim and '' is a literal quote.
// Week numbering follows the en_US convention: weeks start on Sunday and the
// week containing January 1st is week 1.
//
// # Relative phrases
//
// RelativePhrase picks the coarsest calendar unit whose value is at least one:
//
//	timex.RelativePhrase(ref.AddDate(0, 0, 3), ref)  // "in 3 days"
//	timex.RelativePhrase(ref.Add(-2*time.Hour), ref) // "2 hours ago"
//	timex.RelativePhrase(ref, ref)                   // "0 seconds"
package timex
