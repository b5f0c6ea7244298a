// Package server exposes the planning pipeline over HTTP.
//
// The API mirrors the planning flow: analyze a template, plan a deck
// against it (from supplied payloads or a generated topic), then revise
// the deck across a session. Routes:
//
//	GET  /api/health                     liveness and version
//	GET  /api/templates                  registered templates + analysis summary
//	POST /api/templates/{name}/analysis  run or fetch the memoized analysis
//	POST /api/plan                       payloads or topic -> deck plan, new session
//	POST /api/decks/{id}/revise          revision instructions -> replanned deck
//	GET  /api/decks/{id}                 session's latest plan
//
// Errors use the shared envelope: {"error": {"code": ..., "message": ...}}
// with statuses mapped by httputil.StatusCode.
//
// Templates are registered by dropping descriptor JSON files into the
// configured template directory; the file base name becomes the template
// name. Sessions live in the configured store and expire after the TTL.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nattu22/pptgenerator/pkg/contentgen"
	"github.com/nattu22/pptgenerator/pkg/httputil"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
)

// Default server settings.
const (
	// DefaultAddr is where the server listens when no address is given.
	DefaultAddr = ":8080"

	// shutdownTimeout bounds graceful shutdown on context cancellation.
	shutdownTimeout = 10 * time.Second

	// cleanupInterval is how often expired sessions are purged.
	cleanupInterval = time.Hour
)

// Config configures a Server. Zero values select working defaults
// everywhere except TemplateDir, which has no sensible default.
type Config struct {
	// TemplateDir is the directory of template descriptor JSON files.
	TemplateDir string

	// Store is the session backend. Nil selects an in-memory store.
	Store session.Store

	// Logger receives request and pipeline logs. Nil selects the
	// package default.
	Logger *log.Logger

	// Generator is the default content backend for topic requests.
	// Empty defers to the pipeline default.
	Generator string

	// Provider overrides backend selection entirely. Used by tests and
	// embedders with their own model client.
	Provider contentgen.Provider

	// Tunables adjusts layout selection scoring. Zero selects defaults.
	Tunables match.Tunables

	// TTL is the deck session lifetime. Zero selects session.DefaultTTL.
	TTL time.Duration
}

// Server ties the planning pipeline, the template registry, and the
// session store to an HTTP surface.
type Server struct {
	runner      *pipeline.Runner
	store       session.Store
	logger      *log.Logger
	templateDir string
	generator   string
	provider    contentgen.Provider
	tunables    match.Tunables
	ttl         time.Duration
}

// New creates a Server from cfg.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	store := cfg.Store
	if store == nil {
		store = session.NewMemoryStore()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = session.DefaultTTL
	}
	return &Server{
		runner:      pipeline.NewRunner(logger),
		store:       store,
		logger:      logger,
		templateDir: cfg.TemplateDir,
		generator:   cfg.Generator,
		provider:    cfg.Provider,
		tunables:    cfg.Tunables,
		ttl:         ttl,
	}
}

// Handler returns the router serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httputil.RequestLogger(s.logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates/{name}/analysis", s.handleAnalyzeTemplate)
		r.Post("/plan", s.handlePlan)
		r.Route("/decks", func(r chi.Router) {
			r.Get("/{id}", s.handleGetDeck)
			r.Post("/{id}/revise", s.handleRevise)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts
// down gracefully. Expired sessions are purged periodically while
// serving.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("server listening", "addr", addr, "templates", s.templateDir)

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			s.logger.Info("server stopped")
			return ctx.Err()
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ticker.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("session cleanup failed", "error", err)
			}
		}
	}
}
