// Package log provides structured logging for iadate.
//
// Package: log
// Title: iadate Structured Logging
// Description: Leveled logger with persistent context fields, JSON and text
//              output, and level selection from iadate error severities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Dropped request/user context and async mode, added Field helpers for ticks
//
// Usage:
//
//	import mdwlog "github.com/msto63/iadate/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithName("live")
//
//	logger.Info("subscriber added", mdwlog.String("id", id))
//	logger.Warn("unsupported unit", mdwlog.Fields{"unit": "minute"})
package log
