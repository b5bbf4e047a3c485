// Package server implements the HTTP boundary of the tour planner: catalog
// reads and itinerary generation, served over gin.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourgen/internal/catalog"
	"tourgen/internal/config"
	"tourgen/internal/trip"
)

// Generator produces a Markdown itinerary for a validated trip request.
type Generator interface {
	Generate(ctx context.Context, r trip.Request) (string, error)
}

// Server is the HTTP server for the tour planner.
type Server struct {
	server    *http.Server
	catalog   *catalog.Store
	generator Generator
	logger    *zap.Logger
}

// New creates the server with all routes registered. It does not start
// listening until Start is called.
func New(cfg *config.Config, store *catalog.Store, generator Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		catalog:   store,
		generator: generator,
		logger:    logger,
	}

	engine := gin.New()
	engine.Use(RequestID(), RequestLogger(logger), gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        24 * time.Hour,
	}))

	engine.GET("/health", s.handleHealth)

	api := engine.Group("/api")
	{
		api.GET("/cities", s.handleCities)
		api.POST("/search", s.handleSearch)
		api.GET("/route-cards", s.handleRouteCards)
		api.GET("/tours/:id", s.handleTourByID)
		api.POST("/generate-tour", s.handleGenerateTour)
	}

	s.server = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Generation can legitimately take up to a minute; leave headroom
		// beyond the upstream request timeout.
		WriteTimeout: cfg.RequestTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler exposes the underlying handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start begins serving and blocks until the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
