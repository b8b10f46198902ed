// Package api serves the operational HTTP surface: health, a status
// snapshot of the mirror, and Prometheus metrics.
package api

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/arcana-labs/intentsync/logger"
	"github.com/arcana-labs/intentsync/store"
)

// Server provides HTTP endpoints over the mirror store.
type Server struct {
	logger zerolog.Logger
	store  *store.Store
	server *http.Server
}

// NewServer creates a new Server instance.
func NewServer(log zerolog.Logger, st *store.Store, port int) *Server {
	s := &Server{
		logger: logger.Component(log, "api_server"),
		store:  st,
	}

	mux := s.setupRoutes()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	return s
}

// Start starts the HTTP server, verifying the port binds before returning.
func (s *Server) Start() error {
	if s.server == nil {
		return fmt.Errorf("status server is nil")
	}

	startupChan := make(chan error, 1)

	go func() {
		ln, err := net.Listen("tcp", s.server.Addr)
		if err != nil {
			startupChan <- fmt.Errorf("failed to bind to address %s: %w", s.server.Addr, err)
			return
		}
		ln.Close()

		startupChan <- nil

		err = s.server.ListenAndServe()
		switch err {
		case nil:
			s.logger.Info().Msg("status server stopped normally")
		case http.ErrServerClosed:
			s.logger.Info().Msg("status server closed gracefully")
		default:
			s.logger.Error().Err(err).Msg("status server error")
		}
	}()

	select {
	case err := <-startupChan:
		return err
	case <-time.After(5 * time.Second):
		return fmt.Errorf("server startup timeout")
	}
}

// Stop shuts down the HTTP server.
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
