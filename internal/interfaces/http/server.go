// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/printmart/internal/config"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
	"github.com/your-org/printmart/internal/interfaces/http/handlers"
	"github.com/your-org/printmart/internal/interfaces/http/middleware"
	"github.com/your-org/printmart/internal/interfaces/http/routes"
	"github.com/your-org/printmart/internal/pkg/auth"
	"github.com/your-org/printmart/internal/pkg/ratelimit"
)

const maxRequestBytes = 1 << 20

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	logger     *logrus.Logger
	gin        *gin.Engine
	httpServer *http.Server

	catalog  *catalog.Catalog
	registry *session.Registry
	limiter  ratelimit.Limiter
	redis    HealthChecker
	started  time.Time
}

// NewServer creates a new HTTP server instance. redis may be nil when the
// Redis backend is disabled.
func NewServer(cfg *config.Config, logger *logrus.Logger, cat *catalog.Catalog, registry *session.Registry, limiter ratelimit.Limiter, redis HealthChecker) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		catalog:  cat,
		registry: registry,
		limiter:  limiter,
		redis:    redis,
		started:  time.Now(),
	}
}

// Router builds the gin engine with middleware, API routes and the static
// fallback
func (s *Server) Router() *gin.Engine {
	s.gin = gin.New()

	if err := s.gin.SetTrustedProxies(s.config.Security.TrustedProxies); err != nil {
		s.logger.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s.gin
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	s.httpServer = &http.Server{
		Addr:         s.config.GetServerAddr(),
		Handler:      s.Router(),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"addr":        s.config.GetServerAddr(),
		"static_root": s.config.Static.Root,
		"api":         "/api/v1",
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.limiter, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(maxRequestBytes))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)
	s.gin.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello, World!")
	})

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, s.catalog, s.registry, auth.NewSessionManager(s.config), s.config)

	// Everything else is a storefront file
	static := handlers.NewStaticHandler(s.config.Static.Root, s.logger)
	s.gin.NoRoute(static.Serve)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(c *gin.Context) {
	if s.redis != nil {
		if err := s.redis.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "redis ping failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck handles readiness check requests
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.started).String(),
		"sessions":  s.registry.Len(),
		"products":  s.catalog.Len(),
	})
}
