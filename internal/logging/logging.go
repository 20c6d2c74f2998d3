// Package logging builds the structured loggers shared by every binary.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rocketdodge/internal/config"
)

// DefaultLevel is used when no level is configured or the configured one is invalid.
const DefaultLevel = log.InfoLevel

// Level returns the level named by the log level environment variable.
func Level() log.Level {
	level, err := log.ParseLevel(config.GetEnv(config.EnvLogLevel, DefaultLevel.String()))
	if err != nil {
		return DefaultLevel
	}
	return level
}

// New creates a timestamped logger writing to w at the configured level.
func New(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           Level(),
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// Open returns the destination named by the log file environment variable,
// appending to it, or fallback when none is set. The returned close function
// is always safe to call.
func Open(fallback io.Writer) (io.Writer, func() error, error) {
	path := config.GetEnv(config.EnvLogFile, "")
	if path == "" {
		return fallback, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fallback, func() error { return nil }, fmt.Errorf("open log file %q: %w", path, err)
	}
	return f, f.Close, nil
}
