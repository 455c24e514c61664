package testhelpers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/myrjola/repcoach/internal/logging"
)

// NewLogger creates a debug level logger with the given log sink such as [NewWriter].
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.New(logSink, slog.LevelDebug)
}

// NewTestLogger creates a logger whose output is only shown for failed tests.
func NewTestLogger(tb testing.TB) *slog.Logger {
	tb.Helper()
	return NewLogger(NewWriter(tb))
}
