package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openlms/canvas-mcp/internal/canvas/common"
	"github.com/openlms/canvas-mcp/internal/canvas/handlers"
	"github.com/openlms/canvas-mcp/internal/canvas/tools"
)

// Server manages the HTTP server and routes of the Canvas tool gateway.
type Server struct {
	config *common.Config
	logger *common.Logger
	router *http.ServeMux
	server *http.Server

	indexHandler   *handlers.IndexHandler
	healthHandler  *handlers.HealthHandler
	versionHandler *handlers.VersionHandler
	toolsHandler   *handlers.ToolsHandler
}

// New creates a new HTTP server over the given dispatcher.
func New(cfg *common.Config, dispatcher *tools.Dispatcher, logger *common.Logger) *Server {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	s := &Server{
		config:         cfg,
		logger:         logger,
		indexHandler:   handlers.NewIndexHandler("canvas-mcp"),
		healthHandler:  handlers.NewHealthHandler(logger),
		versionHandler: handlers.NewVersionHandler(logger),
		toolsHandler:   handlers.NewToolsHandler(dispatcher, logger),
	}

	s.router = s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withMiddleware(s.router),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // 5 min: paginated Canvas calls can walk many pages
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().
		Str("address", s.server.Addr).
		Str("url", fmt.Sprintf("http://%s", s.server.Addr)).
		Msg("HTTP server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("HTTP server stopped")
	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
