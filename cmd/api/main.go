// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/printmart/internal/config"
	"github.com/your-org/printmart/internal/domain/catalog"
	"github.com/your-org/printmart/internal/domain/session"
	"github.com/your-org/printmart/internal/infrastructure/redis"
	"github.com/your-org/printmart/internal/interfaces/http"
	"github.com/your-org/printmart/internal/pkg/logger"
	"github.com/your-org/printmart/internal/pkg/ratelimit"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting")

	// Load catalog
	cat, err := loadCatalog(cfg)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load catalog")
	}
	appLogger.WithField("products", cat.Len()).Info("Catalog loaded")

	// Session registry and idle sweeper
	registry := session.NewRegistry(cat, cfg.Session.TTL, appLogger,
		session.WithTaxRate(cfg.Store.TaxRate),
		session.WithOrderNumbering(cfg.Store.OrderPrefix, cfg.Store.OrderNumberBase),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go registry.Run(ctx, cfg.Session.SweepInterval)

	// Rate limiting backend
	var (
		limiter ratelimit.Limiter
		health  http.HealthChecker
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg, appLogger)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()

		limiter = redis.NewLimiter(redisClient.Redis, cfg.Security.RateLimitPerMinute)
		health = redisClient
	} else {
		limiter = ratelimit.NewLocalLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst)
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, appLogger, cat, registry, limiter, health)

	go func() {
		if err := server.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down gracefully")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	appLogger.Info("Server shutdown completed")
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.File == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.File)
}
