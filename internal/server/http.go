package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/billowria/bookshorts/internal/logger"
	"github.com/billowria/bookshorts/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer serves the REST API over a listener produced by a
// SecurityLayer, so TLS termination stays outside the handler stack.
type HTTPServer struct {
	addr   string
	srv    *http.Server
	logger *logger.Logger
}

// NewHTTPServer creates a server for the given handler listening on addr.
func NewHTTPServer(addr string, handler http.Handler, l *logger.Logger) *HTTPServer {
	return &HTTPServer{
		addr:   addr,
		srv:    &http.Server{Handler: handler},
		logger: l,
	}
}

// Start opens the listener and serves until Stop is called. It returns
// nil on graceful shutdown.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	s.logger.Info("http server listening", "address", s.addr)

	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop shuts the server down, waiting for in-flight requests up to the
// context deadline.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
