package testhelpers

import (
	"io"
	"strings"
	"sync/atomic"
	"testing"
)

// Writer implements io.Writer and writes to t.Log so that logs are shown only for failed tests.
type Writer struct {
	tb   testing.TB
	done atomic.Bool
}

// NewWriter creates a Writer that forwards to tb.Log until the test finishes.
func NewWriter(tb testing.TB) io.Writer {
	w := &Writer{tb: tb}
	tb.Cleanup(func() {
		w.done.Store(true)
	})
	return w
}

// Write forwards p to t.Log. Writes after the test has finished panic to surface goroutines that outlive
// their test, such as a server that was never shut down.
func (w *Writer) Write(p []byte) (int, error) {
	if w.done.Load() {
		panic("testwriter: attempted to write after test completion. Did you forget to stop a goroutine?")
	}
	if output := strings.TrimSuffix(string(p), "\n"); output != "" {
		w.tb.Log(output)
	}
	return len(p), nil
}
