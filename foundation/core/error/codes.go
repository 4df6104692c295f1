// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across iadate. Codes classify a
//              failure independently of its message so callers can branch on
//              them and the logger can pick a level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Time domain codes (malformed input, unsupported unit, unparsable phrase)

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Time conversion and formatting
	CodeMalformedInput    Code = "MALFORMED_INPUT"
	CodeUnsupportedUnit   Code = "UNSUPPORTED_UNIT"
	CodeUnparsablePhrase  Code = "UNPARSABLE_PHRASE"
	CodeUnsupportedLocale Code = "UNSUPPORTED_LOCALE"

	// Storage
	CodeDatabaseError  Code = "DATABASE_ERROR"
	CodeDuplicateEntry Code = "DUPLICATE_ENTRY"

	// Service and network
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError       Code = "NETWORK_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMalformedInput, CodeUnsupportedUnit, CodeUnparsablePhrase, CodeUnsupportedLocale,
		CodeDatabaseError, CodeDuplicateEntry,
		CodeServiceUnavailable, CodeNetworkError,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedInput, CodeUnsupportedUnit, CodeUnparsablePhrase, CodeUnsupportedLocale:
		return "time"
	case CodeDatabaseError, CodeDuplicateEntry:
		return "database"
	case CodeServiceUnavailable, CodeNetworkError:
		return "service"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeMalformedInput, CodeUnsupportedUnit,
		CodeUnparsablePhrase, CodeUnsupportedLocale:
		return 400
	case CodeDuplicateEntry:
		return 409
	case CodeServiceUnavailable, CodeDatabaseError:
		return 503
	default:
		return 500
	}
}
