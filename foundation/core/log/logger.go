// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with persistent context fields, selectable output formats and
//              integration with the iadate error system.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Removed async mode and request context, LogError maps severity

package log

import (
	"errors"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields

	enableCaller bool

	// Shared between clones so concurrent writes to one output never interleave
	writeMu *sync.Mutex
	mutex   sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
		writeMu:       &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:         config.Level,
		formatter:     GetFormatter(config.Format),
		output:        config.Output,
		name:          config.Name,
		contextFields: make(Fields),
		enableCaller:  config.EnableCaller,
		writeMu:       &sync.Mutex{},
	}

	if config.Output == nil {
		logger.output = os.Stdout
	}

	return logger
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCaller enables caller information on every entry
func (l *Logger) WithCaller() *Logger {
	clone := l.clone()
	clone.enableCaller = true
	return clone
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// ErrorWithErr logs an error message with an associated error
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning message with an associated error
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs an error at a level derived from its iadate severity.
// Plain errors are logged at error level.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	level := LevelError
	fields := Fields{}

	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		switch mdwErr.Severity() {
		case mdwerror.SeverityLow:
			level = LevelWarn
		case mdwerror.SeverityMedium, mdwerror.SeverityHigh:
			level = LevelError
		case mdwerror.SeverityCritical:
			level = LevelFatal
		}

		fields["error_code"] = mdwErr.Code().String()
		fields["error_severity"] = mdwErr.Severity().String()
		if op := mdwErr.Operation(); op != "" {
			fields["operation"] = op
		}
		for k, v := range mdwErr.Details() {
			fields["detail_"+k] = v
		}
	}

	// Critical errors are logged at fatal level without terminating the process
	l.log(level, "error occurred", err, fields)
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return level.ShouldLog(l.level)
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetLevel changes the minimum level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Name returns the logger name
func (l *Logger) Name() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.name
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.Error = err
	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	formatter := l.formatter
	output := l.output
	enableCaller := l.enableCaller
	l.mutex.RUnlock()

	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}

	if enableCaller {
		if function, file, line, ok := getCaller(); ok {
			entry.WithCaller(function, file, line)
		}
	}

	data, fmtErr := formatter.Format(entry)
	if fmtErr != nil {
		// Formatting failed, fall back to the bare message
		data = []byte(level.ShortString() + " " + message + "\n")
	}

	l.writeMu.Lock()
	_, _ = output.Write(data)
	l.writeMu.Unlock()
}

// getCaller finds the first frame outside this package
func getCaller() (function, file string, line int, ok bool) {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "foundation/core/log/") {
			return frame.Function, frame.File, frame.Line, true
		}
		if !more {
			return "", "", 0, false
		}
	}
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	fields := make(Fields, len(l.contextFields))
	for k, v := range l.contextFields {
		fields[k] = v
	}

	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: fields,
		enableCaller:  l.enableCaller,
		writeMu:       l.writeMu,
	}
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}

// Debug logs at debug level on the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().log(LevelDebug, message, nil, fields...)
}

// Info logs at info level on the default logger
func Info(message string, fields ...Fields) {
	GetDefault().log(LevelInfo, message, nil, fields...)
}

// Warn logs at warn level on the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().log(LevelWarn, message, nil, fields...)
}

// Error logs at error level on the default logger
func Error(message string, fields ...Fields) {
	GetDefault().log(LevelError, message, nil, fields...)
}
