// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              to log levels when an error is logged.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a rejected input or an unsupported request
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a failing dependency such as the database
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeDatabaseError, CodeServiceUnavailable, CodeConfigError:
		return SeverityHigh

	case CodeNetworkError, CodeInvalidConfig, CodeDuplicateEntry:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeMalformedInput, CodeUnsupportedUnit,
		CodeUnparsablePhrase, CodeUnsupportedLocale:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
