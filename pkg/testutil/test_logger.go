package testutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a debug level logger that writes to the test log.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// CapturingLogger is a logger whose json output is kept for inspection.
type CapturingLogger struct {
	zerolog.Logger
	buf *bytes.Buffer
}

// NewCapturingLogger returns a debug level logger that records its output.
func NewCapturingLogger() *CapturingLogger {
	buf := &bytes.Buffer{}
	return &CapturingLogger{
		Logger: zerolog.New(buf).Level(zerolog.DebugLevel),
		buf:    buf,
	}
}

// Lines returns the json lines written so far.
func (l *CapturingLogger) Lines() []string {
	out := strings.TrimSpace(l.buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
