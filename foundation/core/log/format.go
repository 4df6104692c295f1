// File: format.go
// Title: Log Format Definitions
// Description: Defines output formats for log messages. JSON is used for
//              machine consumption, text for terminals and logfmt for
//              line-oriented collectors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-19 v0.2.0: Dropped console colors, sorted field output

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatLogfmt outputs logfmt structured logs (key=value pairs)
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "console":
		return FormatText, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{}, len(entry.Fields)+6)

	// Custom fields first so the standard keys win on collision
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
			continue
		}
		data[k] = v
	}

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal log entry: %w", err)
	}

	return append(jsonData, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	TimestampFormat string
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "15:04:05",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	parts = append(parts, fmt.Sprintf("[%s]", entry.Level.ShortString()))

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("{%s}", entry.Logger))
	}

	parts = append(parts, entry.Message)

	if len(entry.Fields) > 0 {
		fieldParts := make([]string, 0, len(entry.Fields))
		for _, k := range sortedKeys(entry.Fields) {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, entry.Fields[k]))
		}
		parts = append(parts, fmt.Sprintf("[%s]", strings.Join(fieldParts, " ")))
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// LogfmtFormatter formats log entries in logfmt format (key=value pairs)
type LogfmtFormatter struct {
	TimestampFormat string
}

// NewLogfmtFormatter creates a new logfmt formatter
func NewLogfmtFormatter() *LogfmtFormatter {
	return &LogfmtFormatter{
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry in logfmt format
func (f *LogfmtFormatter) Format(entry *Entry) ([]byte, error) {
	var parts []string

	parts = append(parts, fmt.Sprintf("timestamp=%s", entry.Timestamp.Format(f.TimestampFormat)))
	parts = append(parts, fmt.Sprintf("level=%s", entry.Level.String()))
	parts = append(parts, fmt.Sprintf("message=%q", entry.Message))

	if entry.Logger != "" {
		parts = append(parts, fmt.Sprintf("logger=%s", entry.Logger))
	}

	for _, k := range sortedKeys(entry.Fields) {
		v := entry.Fields[k]
		if str, ok := v.(string); ok {
			parts = append(parts, fmt.Sprintf("%s=%q", k, str))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}

	return []byte(strings.Join(parts, " ") + "\n"), nil
}

// GetFormatter returns a formatter for the specified format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatLogfmt:
		return NewLogfmtFormatter()
	default:
		return NewJSONFormatter()
	}
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
