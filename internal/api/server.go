package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wingworks/catering-configurator-backend/internal/api/handlers"
	"github.com/wingworks/catering-configurator-backend/internal/api/middleware"
	"github.com/wingworks/catering-configurator-backend/internal/application/session"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
)

// Config holds API server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// DefaultConfig returns sensible defaults for the API server.
func DefaultConfig() Config {
	return Config{
		Port:           8080,
		AllowedOrigins: middleware.DefaultCORSConfig().AllowedOrigins,
	}
}

// Server is the configurator session API server.
type Server struct {
	config     Config
	router     chi.Router
	httpServer *http.Server
	logger     *slog.Logger
	repo       storage.Repository
	sessions   *session.Manager
}

// NewServer creates a new API server.
func NewServer(cfg Config, sessions *session.Manager, repo storage.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   cfg,
		router:   chi.NewRouter(),
		logger:   logger,
		repo:     repo,
		sessions: sessions,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	corsConfig := middleware.DefaultCORSConfig()
	if len(s.config.AllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = s.config.AllowedOrigins
	}
	s.router.Use(middleware.CORS(corsConfig))
	s.router.Use(middleware.Logging(s.logger))
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check (no /api prefix - for load balancers)
	healthHandler := handlers.NewHealthHandler()
	s.router.Get("/health", healthHandler.ServeHTTP)

	s.router.Route("/api", func(r chi.Router) {
		// Configurator sessions
		sessionsHandler := handlers.NewSessionsHandler(s.sessions)
		r.Post("/sessions", sessionsHandler.Create)
		r.Get("/sessions/{id}", sessionsHandler.Get)
		r.Put("/sessions/{id}/quantities", sessionsHandler.SetQuantity)
		r.Post("/sessions/{id}/preset", sessionsHandler.ApplyPreset)
		r.Put("/sessions/{id}/prep", sessionsHandler.SetPrep)
		r.Put("/sessions/{id}/style", sessionsHandler.SetStyle)
		r.Put("/sessions/{id}/flavor", sessionsHandler.SetFlavor)
		r.Post("/sessions/{id}/split", sessionsHandler.EnableSplit)
		r.Put("/sessions/{id}/split/count", sessionsHandler.SetSplitCount)
		r.Put("/sessions/{id}/split/flavor", sessionsHandler.SetSplitFlavor)
		r.Put("/sessions/{id}/selections", sessionsHandler.SetSelections)
		r.Put("/sessions/{id}/boxes/{index}", sessionsHandler.SetOverride)
		r.Delete("/sessions/{id}/boxes/{index}", sessionsHandler.ClearOverride)
		r.Post("/sessions/{id}/finalize", sessionsHandler.Finalize)

		// Finalized orders
		ordersHandler := handlers.NewOrdersHandler(s.repo)
		r.Get("/orders", ordersHandler.List)
		r.Get("/orders/{id}", ordersHandler.Get)
		r.Get("/orders/{id}/export", ordersHandler.Export)
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting API server", "addr", addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")

	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}
