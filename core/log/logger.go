// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type used by the lu packages and the lu
//              command. Loggers are immutable once shared: every With* call
//              returns a derived copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: Removed async worker and timers, added Discard

package log

import (
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/lu/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	contextFields Fields
	correlationID string

	// guards writes to output
	mutex *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger writing text at info level to stderr
func New() *Logger {
	return &Logger{
		level:         LevelInfo,
		formatter:     NewTextFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	logger.formatter = GetFormatter(config.Format)
	logger.name = config.Name
	if config.Output != nil {
		logger.output = config.Output
	}
	return logger
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	logger := New()
	logger.level = LevelOff
	logger.output = io.Discard
	return logger
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a new logger with the specified format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithOutput returns a new logger writing to output. The derived logger gets
// its own write lock.
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.mutex = &sync.Mutex{}
	return clone
}

// WithName returns a new logger with the specified name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a new logger with an additional context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a new logger with additional context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithCorrelationID returns a new logger with the specified correlation ID
func (l *Logger) WithCorrelationID(correlationID string) *Logger {
	clone := l.clone()
	clone.correlationID = correlationID
	return clone
}

// Trace logs a trace message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs an error, picking the level from its severity
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelDebug
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}

	l.log(level, mdwErr.Message(), err, fields)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// CorrelationID returns the correlation ID attached to this logger
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	formatted, formatErr := l.formatter.Format(entry)
	if formatErr != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(formatted)
}

func (l *Logger) clone() *Logger {
	clone := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		correlationID: l.correlationID,
		contextFields: make(Fields, len(l.contextFields)),
		mutex:         l.mutex,
	}
	for k, v := range l.contextFields {
		clone.contextFields[k] = v
	}
	return clone
}

var (
	defaultLogger = New()
	defaultMutex  sync.RWMutex
)

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}

// OrDiscard returns logger, or a discarding logger if it is nil. Library
// packages call this on optional logger arguments.
func OrDiscard(logger *Logger) *Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
