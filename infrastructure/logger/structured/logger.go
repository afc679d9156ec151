// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Maps the Logger interface field maps onto logrus fields with text or JSON output

package structured

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// Options configures a Logger
type Options struct {
	// Level is a logrus level name; unknown names fall back to info
	Level string

	// Format is "json" for JSON lines, anything else for text
	Format string

	// Output defaults to os.Stderr
	Output io.Writer
}

// NewLogger creates a new logrus-backed logger
func NewLogger(opts Options) *Logger {
	l := logrus.New()

	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *Logger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.entry)
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
