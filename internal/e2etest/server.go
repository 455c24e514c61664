// Package e2etest runs the real server in-process on a random port and talks to its JSON API.
package e2etest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/myrjola/repcoach/internal/logging"
)

// RunFunc has the signature of the web command's run function.
type RunFunc func(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error

// Server is a running server. It is shut down when the test ends.
type Server struct {
	client *Client
	stop   context.CancelCauseFunc
	done   chan struct{}
}

// LogAddrKey is the log attribute under which the server reports its listen address.
const LogAddrKey = "addr"

// addrSniffer returns a logger that writes to logSink and sends the first LogAddrKey value it sees to addrCh.
func addrSniffer(logSink io.Writer, addrCh chan<- string) *slog.Logger {
	return slog.New(logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == LogAddrKey {
				select {
				case addrCh <- a.Value.String():
				default:
				}
			}
			return a
		},
	})))
}

// StartServer calls run in a goroutine and returns once the health endpoint answers.
//
// logSink receives the server logs, usually testhelpers.NewWriter. lookupEnv replaces [os.LookupEnv] and should
// point the server to localhost:0 and an in-memory database.
func StartServer(t *testing.T, logSink io.Writer, lookupEnv func(string) (string, bool), run RunFunc) (*Server, error) {
	ctx, stop := context.WithCancelCause(t.Context())
	done := make(chan struct{})
	addrCh := make(chan string, 1)

	go func() {
		defer close(done)
		if err := run(ctx, addrSniffer(logSink, addrCh), lookupEnv); err != nil {
			stop(err)
		}
	}()

	s := &Server{client: nil, stop: stop, done: done}
	t.Cleanup(s.Shutdown)

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("server exited before listening: %w", context.Cause(ctx))
	case addr := <-addrCh:
		s.client = NewClient("http://" + addr)
	}
	if err := s.client.WaitForReady(ctx, "/api/v1/healthy"); err != nil {
		return nil, fmt.Errorf("wait for ready: %w", err)
	}
	return s, nil
}

// Client returns a client for the server.
func (s *Server) Client() *Client {
	return s.client
}

// Shutdown stops the server and waits for run to return. It is safe to call more than once.
func (s *Server) Shutdown() {
	s.stop(nil)
	<-s.done
}
