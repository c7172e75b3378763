// Package server provides the HTTP API for NutmegAI.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/nutmegai/nutmeg/internal/chat"
	"github.com/nutmegai/nutmeg/internal/config"
	"github.com/nutmegai/nutmeg/internal/history"
	"github.com/nutmegai/nutmeg/internal/knowledge"
)

// Server is the HTTP server for the NutmegAI API.
type Server struct {
	chat      *chat.Orchestrator
	knowledge *knowledge.Store
	history   *history.Store
	config    *config.ServerConfig
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. history may be
// nil when persistence is disabled.
func NewServer(
	orchestrator *chat.Orchestrator,
	kb *knowledge.Store,
	hist *history.Store,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		chat:      orchestrator,
		knowledge: kb,
		history:   hist,
		config:    cfg,
		logger:    logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/v1/chat", s.handleChat)
	r.Post("/api/v1/documents/search", s.handleDocumentSearch)
	r.Post("/api/v1/documents/{type}", s.handleDocumentHelp)
	r.Get("/api/v1/documents", s.handleListDocuments)
	r.Post("/api/v1/translate", s.handleTranslate)
	r.Get("/api/v1/languages", s.handleLanguages)
	r.Post("/api/v1/feedback", s.handleFeedback)
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleRoot)

	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
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
