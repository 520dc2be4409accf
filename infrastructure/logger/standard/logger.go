// ABOUTME: Standard logger implementation using Go's standard log package
// ABOUTME: Provides leveled structured logging without third-party dependencies

package standard

import (
	"encoding/json"
	"io"
	"log"
	"os"
)

// StandardLogger implements the Logger interface using the standard library.
// Debug output can be switched off so interactive use stays quiet.
type StandardLogger struct {
	out       *log.Logger
	err       *log.Logger
	debugging bool
}

// NewStandardLogger creates a logger writing to stdout/stderr.
func NewStandardLogger(debug bool) *StandardLogger {
	return NewStandardLoggerTo(os.Stdout, os.Stderr, debug)
}

// NewStandardLoggerTo creates a logger writing to the given streams.
func NewStandardLoggerTo(out, errOut io.Writer, debug bool) *StandardLogger {
	return &StandardLogger{
		out:       log.New(out, "", log.LstdFlags),
		err:       log.New(errOut, "", log.LstdFlags),
		debugging: debug,
	}
}

// Debug logs a debug message when debug output is enabled
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	if !l.debugging {
		return
	}
	l.write(l.out, "DEBUG", msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.write(l.out, "INFO", msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.write(l.out, "WARN", msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.write(l.err, "ERROR", msg, fields)
}

func (l *StandardLogger) write(logger *log.Logger, level, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Printf("[%s] %s", level, msg)
		return
	}

	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		logger.Printf("[%s] %s (failed to marshal fields: %v)", level, msg, err)
		return
	}

	logger.Printf("[%s] %s %s", level, msg, string(fieldsJSON))
}
