// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with a code, severity, details and a
//              stack trace. It satisfies the standard error interface and
//              supports errors.Is/As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2026-10-19 v0.2.0: Code lookups walk wrapped chains via errors.As

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// MaxStackFrames limits the number of stack frames captured
const MaxStackFrames = 20

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	stackTrace []StackFrame
}

// StackFrame represents a single frame in the stack trace
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	err := New(fmt.Sprintf(format, args...))
	err.stackTrace = captureStackTrace(2)
	return err
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStackTrace(2),
	}

	// Preserve classification of our own errors
	var inner *Error
	if errors.As(err, &inner) {
		wrapped.code = inner.code
		wrapped.severity = inner.severity
		for k, v := range inner.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// StackTrace returns the stack trace
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// String returns a detailed multi-line representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))
	parts = append(parts, fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// captureStackTrace captures the current stack trace
func captureStackTrace(skip int) []StackFrame {
	pcs := make([]uintptr, MaxStackFrames)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	result := make([]StackFrame, 0, n)
	for {
		frame, more := frames.Next()
		result = append(result, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
	return result
}

// HasCode checks if an error, or any error it wraps, has a specific code
func HasCode(err error, code Code) bool {
	for err != nil {
		var mdwErr *Error
		if !errors.As(err, &mdwErr) {
			return false
		}
		if mdwErr.code == code {
			return true
		}
		err = mdwErr.cause
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not an iadate error
func GetCode(err error) Code {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity, or SeverityMedium if not an iadate error
func GetSeverity(err error) Severity {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.severity
	}
	return SeverityMedium
}
