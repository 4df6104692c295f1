// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry and the Fields helpers used to attach
//              structured values to a message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-19 v0.2.0: Removed request/user/correlation context

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	Fields Fields
	Error  error

	// Caller information (optional, for debugging)
	Caller *CallerInfo
}

// CallerInfo contains information about where the log was called from
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Int64 creates an int64 field for logging
func Int64(key string, value int64) Fields {
	return Fields{key: value}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Merge combines multiple Fields into one
func (f Fields) Merge(other Fields) Fields {
	result := make(Fields, len(f)+len(other))
	for k, v := range f {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithCaller adds caller information to the entry
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{
		Function: function,
		File:     file,
		Line:     line,
	}
	return e
}
