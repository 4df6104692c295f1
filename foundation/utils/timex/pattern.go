// File: pattern.go
// Title: Unicode Date Pattern Formatter
// Description: Renders time values with Unicode date field patterns such as
//              "dd-MM-yyyy HH:mm zzz" and the short/medium/long/full styles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en_US"

// Style selects one of the predefined date-time patterns
type Style int

const (
	StyleShort Style = iota
	StyleMedium
	StyleLong
	StyleFull
)

var stylePatterns = map[Style]string{
	StyleShort:  "M/d/yy, h:mm a",
	StyleMedium: "MMM d, y, h:mm:ss a",
	StyleLong:   "MMMM d, y 'at' h:mm:ss a z",
	StyleFull:   "EEEE, MMMM d, y 'at' h:mm:ss a zzzz",
}

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleMedium:
		return "medium"
	case StyleLong:
		return "long"
	case StyleFull:
		return "full"
	default:
		return "unknown"
	}
}

// ParseStyle parses a style name
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return StyleShort, nil
	case "medium", "":
		return StyleMedium, nil
	case "long":
		return StyleLong, nil
	case "full":
		return StyleFull, nil
	default:
		return StyleMedium, mdwerror.Newf("unknown style %q", s).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.ParseStyle")
	}
}

// PatternFormatter renders Unicode date patterns for one locale
type PatternFormatter struct {
	tag language.Tag
}

var defaultFormatter = &PatternFormatter{tag: language.AmericanEnglish}

// NewPatternFormatter creates a formatter for the given locale identifier.
// Both "en_US" and "en-US" spellings are accepted; only English locales are
// supported.
func NewPatternFormatter(locale string) (*PatternFormatter, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return defaultFormatter, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeUnsupportedLocale).
			WithOperation("timex.NewPatternFormatter").
			WithDetail("locale", locale)
	}

	base, _ := tag.Base()
	if base.String() != "en" {
		return nil, mdwerror.Newf("locale %q is not supported", locale).
			WithCode(mdwerror.CodeUnsupportedLocale).
			WithOperation("timex.NewPatternFormatter").
			WithDetail("locale", locale)
	}

	return &PatternFormatter{tag: tag}, nil
}

// Locale returns the BCP 47 form of the formatter's locale
func (f *PatternFormatter) Locale() string {
	return f.tag.String()
}

// FormatPattern renders t with the default en_US formatter
func FormatPattern(t time.Time, pattern string) (string, error) {
	return defaultFormatter.Format(t, pattern)
}

// FormatStyle renders t with one of the predefined styles and the default formatter
func FormatStyle(t time.Time, style Style) (string, error) {
	return defaultFormatter.FormatStyle(t, style)
}

// FormatStyle renders t with one of the predefined styles
func (f *PatternFormatter) FormatStyle(t time.Time, style Style) (string, error) {
	pattern, ok := stylePatterns[style]
	if !ok {
		return "", mdwerror.Newf("unknown style %d", int(style)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.FormatStyle")
	}
	return f.Format(t, pattern)
}

// Format renders t with a Unicode date pattern
func (f *PatternFormatter) Format(t time.Time, pattern string) (string, error) {
	var sb strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			// '' is an escaped quote, otherwise copy up to the closing quote
			if i+1 < len(runes) && runes[i+1] == '\'' {
				sb.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if j >= len(runes) {
					return "", invalidPattern(pattern, "unterminated quote")
				}
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						sb.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				sb.WriteRune(runes[j])
				j++
			}
			i = j + 1

		case isPatternLetter(r):
			count := 1
			for i+count < len(runes) && runes[i+count] == r {
				count++
			}
			text, ok := renderField(t, r, count)
			if !ok {
				return "", invalidPattern(pattern, "unsupported field "+strings.Repeat(string(r), count))
			}
			sb.WriteString(text)
			i += count

		default:
			sb.WriteRune(r)
			i++
		}
	}

	return sb.String(), nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func invalidPattern(pattern, reason string) error {
	return mdwerror.Newf("invalid date pattern: %s", reason).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.Format").
		WithDetail("pattern", pattern)
}

func renderField(t time.Time, letter rune, count int) (string, bool) {
	switch letter {
	case 'y':
		if count == 2 {
			return pad(floorMod(t.Year(), 100), 2), true
		}
		return pad(t.Year(), count), true

	case 'M', 'L':
		switch {
		case count <= 2:
			return pad(int(t.Month()), count), true
		case count == 3:
			return t.Month().String()[:3], true
		case count == 4:
			return t.Month().String(), true
		default:
			return t.Month().String()[:1], true
		}

	case 'd':
		return pad(t.Day(), count), true

	case 'H':
		return pad(t.Hour(), count), true

	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, count), true

	case 'm':
		return pad(t.Minute(), count), true

	case 's':
		return pad(t.Second(), count), true

	case 'E':
		switch {
		case count <= 3:
			return t.Weekday().String()[:3], true
		case count == 4:
			return t.Weekday().String(), true
		default:
			return t.Weekday().String()[:1], true
		}

	case 'w':
		return pad(WeekOfYear(t), count), true

	case 'W':
		return pad(WeekOfMonth(t), count), true

	case 'a':
		if t.Hour() < 12 {
			return "AM", true
		}
		return "PM", true

	case 'z':
		return zoneName(t, count), true
	}

	return "", false
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	if neg {
		return "-" + s
	}
	return s
}

func zoneName(t time.Time, count int) string {
	name, offset := t.Zone()
	if offset == 0 && (name == "UTC" || name == "GMT" || name == "") {
		if count >= 4 {
			return "Greenwich Mean Time"
		}
		return "GMT"
	}
	if name != "" && !strings.ContainsAny(name, "+-") {
		return name
	}
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return "GMT" + string(sign) + pad(offset/3600, 2) + ":" + pad(offset%3600/60, 2)
}

// WeekOfYear returns the en_US week of year: weeks start on Sunday and the
// week containing January 1st is week 1, so the last days of December can
// belong to week 1 of the next year.
func WeekOfYear(t time.Time) int {
	saturday := t.Day() + (6 - int(t.Weekday()))
	if t.Month() == time.December && saturday > 31 {
		return 1
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	return (t.YearDay()-1+int(jan1.Weekday()))/7 + 1
}

// WeekOfMonth returns the en_US week of month, starting at 1 for the week
// that contains the first day of the month.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return (t.Day()-1+int(first.Weekday()))/7 + 1
}
