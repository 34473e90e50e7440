// Package logger creates charmbracelet/log loggers for the pyphen command.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to stderr, so that it never mixes with
// hyphenated output on stdout.
func New(prefix string) *log.Logger {
	return NewWithWriter(os.Stderr, prefix)
}

// NewWithWriter creates a logger with the global log level.
func NewWithWriter(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// SetLevel sets the global log level by name, e.g. "debug" or "warn".
// Unknown names select the warn level.
func SetLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
	return level
}
