// Package logging configures the shared console logger.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// New returns a leveled console logger writing to w. Verbose lowers
// the level from warn to debug.
func New(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		Prefix:          "tick",
	})
}

// Discard returns a logger that drops everything. Used where a logger
// is required but output is unwanted, such as tests.
func Discard() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel + 1)
	return logger
}
