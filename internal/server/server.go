// Package server provides the read-only HTTP API over the enriched corpus.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/hyperjump/kansou/internal/config"
	"github.com/hyperjump/kansou/internal/manager"
)

// Server is the HTTP server for the Kansou API. It exposes no write
// operations: the corpus and indices are built once and read-only.
type Server struct {
	manager *manager.Manager
	config  *config.ServerConfig
	logger  *zap.Logger
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(mgr *manager.Manager, cfg *config.ServerConfig, logger *zap.Logger) *Server {
	return &Server{
		manager: mgr,
		config:  cfg,
		logger:  logger,
	}
}

// Handler builds the router with all API routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/reviews", s.handleReviews)
	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/movies/{movie}/reviews", s.handleMovieReviews)
	r.Get("/api/v1/actors/{actor}/reviews", s.handleActorReviews)
	r.Get("/api/v1/languages/{lang}/reviews", s.handleLanguageReviews)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
