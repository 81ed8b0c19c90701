// Package logger configures the structured logger shared by the commands.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable lines to w, tagged with the
// command name.  Debug events are enabled when verbose is set.
func New(cmd string, w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Str("cmd", cmd).Logger()
}
