// Package server runs the HTTP listener with an explicit start/stop lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// ErrNotRunning is returned by Stop when the server is not listening.
var ErrNotRunning = errors.New("server is not running")

// BindError reports that the listen address could not be acquired.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to bind %s: %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// Server wraps an http.Server. Start returns once the port is bound; Stop
// returns once in-flight requests have drained.
type Server struct {
	addr    string
	handler http.Handler

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan error
}

// New creates a server for handler on addr (":8080", "127.0.0.1:0", ...).
// The handler is wrapped with h2c so clients can speak HTTP/2 without TLS.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		addr:    addr,
		handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

// Start binds the address and serves in the background. A *BindError is
// returned when the port can't be acquired. A stopped server may be
// started again.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("server already listening on %s", s.listener.Addr())
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return &BindError{Addr: s.addr, Err: err}
	}
	// An http.Server can't serve again after Shutdown, so each run gets its own.
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.srv = srv
	s.listener = ln
	s.done = make(chan error, 1)

	go func(done chan<- error) {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
		close(done)
	}(s.done)

	slog.Info("Server listening", "address", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Done is closed after the serve loop exits, carrying its error, if any.
// It is nil before Start.
func (s *Server) Done() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Stop stops accepting connections and waits for active requests to finish
// or ctx to expire.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, ln, done := s.srv, s.listener, s.done
	s.srv, s.listener = nil, nil
	s.mu.Unlock()

	if ln == nil {
		return ErrNotRunning
	}

	slog.Info("Closing server", "address", ln.Addr().String())
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}

	if err := <-done; err != nil {
		return fmt.Errorf("serve loop failed: %w", err)
	}
	return nil
}
