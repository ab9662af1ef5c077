// Package logging provides the application-wide logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the application-wide logger instance.
// It writes to stderr so it doesn't interfere with piped stdout.
var Logger *log.Logger

func init() {
	Logger = NewLogger(os.Stderr)
}

// NewLogger creates a new logger writing to the given writer.
// The default level is WarnLevel (suppresses debug/info).
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level: log.WarnLevel,
	})
}

// SetVerbose lifts the level to DebugLevel when enabled.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(log.DebugLevel)
	} else {
		Logger.SetLevel(log.WarnLevel)
	}
}
