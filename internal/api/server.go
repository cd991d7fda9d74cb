// Package api implements the sketchwire HTTP boundary.
//
// Two routes expose the render core: a JSON route returning the SVG as a
// string value, and a raw route returning the document with an image content
// type. Both call the same [studio.Runner], so they produce byte-identical
// output for identical parameters. The remaining routes are liveness and
// diagnostics endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sketchwire/sketchwire/pkg/studio"
)

// Config holds the server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string

	// AllowedOrigins configures CORS. Empty means allow all origins,
	// matching the permissive setup of typical sketch frontends.
	AllowedOrigins []string

	// MongoURI enables the database diagnostics in /test when non-empty.
	MongoURI string

	// DatabaseName is the database inspected by /test.
	DatabaseName string
}

// Server wires the render runner into an HTTP handler.
type Server struct {
	runner *studio.Runner
	logger *log.Logger
	cfg    Config
}

// New creates a server. The runner must not be nil.
func New(runner *studio.Runner, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	return &Server{
		runner: runner,
		logger: logger,
		cfg:    cfg,
	}
}

// Routes builds the route tree. Exposed separately from ListenAndServe so
// tests can drive the handler directly with httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.requestID)
	r.Use(s.cors)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/api/hello", s.handleHello)
	r.Get("/test", s.handleDiagnostics)
	r.Post("/api/sketch", s.handleSketch)
	r.Get("/api/sketch.svg", s.handleSketchImage)

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
