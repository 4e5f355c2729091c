// Package log provides a small colored, prefixed logger used across the
// application. Every component gets its own prefix and color so interleaved
// output stays readable.
package log

import (
	"errors"
	"io"
	"log"
)

const (
	colorReset = "\033[0m"
	errorColor = "\033[31m"
)

// Logger writes prefixed, colored log lines to the configured writer.
type Logger struct {
	base   *log.Logger
	prefix string
	color  string
}

// New creates a Logger with the given prefix and ANSI color, writing to out.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("log: prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("log: output writer must not be nil")
	}
	return &Logger{
		base:   log.New(out, "", log.LstdFlags),
		prefix: prefix,
		color:  color,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.base.Printf("%s[%s] [INFO]%s %s", l.color, l.prefix, colorReset, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.base.Printf("%s[%s] [WARN]%s %s", l.color, l.prefix, colorReset, msg)
}

// Error logs an error message. The level tag is always red.
func (l *Logger) Error(msg string) {
	l.base.Printf("%s[%s]%s %s[ERROR]%s %s", l.color, l.prefix, colorReset, errorColor, colorReset, msg)
}
