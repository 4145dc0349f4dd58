// Package server wires the router and runs the HTTP service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vangoframework/clsx/internal/config"
	"github.com/vangoframework/clsx/internal/handlers"
	"github.com/vangoframework/clsx/internal/metrics"
	"github.com/vangoframework/clsx/internal/middleware"
)

// NewRouter builds the service's routes and middleware.
func NewRouter(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	h := handlers.New(cfg, m, logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Metrics(m))

	r.Get("/", h.Home)
	r.Get("/health", h.Health)
	r.Handle("/metrics", m.Handler())

	r.Get("/resolve", h.ResolveQuery)
	r.Post("/resolve", h.Resolve)

	return r
}

// Server is the resolve service.
type Server struct {
	config *config.Config
	logger *slog.Logger
	http   *http.Server
}

// New creates a server listening on cfg.Port.
func New(cfg *config.Config, logger *slog.Logger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
		http: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      NewRouter(cfg, metrics.New(), logger),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", ln.Addr().String(), "environment", s.config.Environment)
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.logger.Info("shutdown complete")
	return nil
}
