// Package logging provides a logging abstraction layer that decouples the
// report pipeline from specific logging frameworks. This keeps the pipeline
// testable and lets the logging backend be swapped without touching callers.
package logging

// Logger defines the interface for structured logging throughout the application.
// Implementations should provide structured logging with support for fields and
// error context.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger

	// Infof logs an info-level message with fmt-style formatting
	Infof(format string, args ...interface{})

	// Warnf logs a warning-level message with fmt-style formatting
	Warnf(format string, args ...interface{})

	// Debugf logs a debug-level message with fmt-style formatting
	Debugf(format string, args ...interface{})
}

// Field represents a key-value pair for structured logging.
// Fields provide context to log messages without cluttering the message text.
type Field struct {
	Key   string
	Value interface{}
}
