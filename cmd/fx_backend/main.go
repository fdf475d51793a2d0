package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_companion_app/internal/adapters/exchangerate"
	"github.com/SscSPs/currency_companion_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/SscSPs/currency_companion_app/internal/handlers"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Currency Companion API
// @version 1.0
// @description Currency conversion, help bot and settings backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		RateProvider: exchangerate.NewOpenERAPIProvider(cfg.RatesAPIURL, exchangerate.WithTimeout(cfg.RatesFetchTimeout)),
		MessageRepo:  memory.NewMessageRepository(),
		SettingsRepo: memory.NewSettingsRepository(),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Initial fetch. A failure leaves the store in its error state; clients can retry via /rates/refresh.
	if _, err := serviceContainer.Rates.Initialize(middleware.WithLogger(context.Background(), logger)); err != nil {
		logger.Warn("Initial exchange rate fetch failed", slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
