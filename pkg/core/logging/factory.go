// ============================================================================
// iadate - IA Time
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "logfmt" (default: text)
	Format string

	// Primary output, stderr when nil so command output on stdout stays clean
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// FromConfig derives a LoggerConfig from the application configuration
func FromConfig(cfg *config.Config, serviceName string) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	if cfg == nil {
		return lc
	}
	if cfg.General.LogLevel != "" {
		lc.Level = cfg.General.LogLevel
	}
	if cfg.General.LogFormat != "" {
		lc.Format = cfg.General.LogFormat
	}
	return lc
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, err := mdwlog.ParseLevel(cfg.Level)
	if err != nil {
		level = mdwlog.LevelInfo
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}
