package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/freight_desk/internal/adapters/ollama"
	"github.com/SscSPs/freight_desk/internal/core/services"
	"github.com/SscSPs/freight_desk/internal/handlers"
	"github.com/SscSPs/freight_desk/internal/middleware"
	"github.com/SscSPs/freight_desk/internal/platform/config"
	"github.com/SscSPs/freight_desk/internal/repositories/database/pgsql"
	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/SscSPs/freight_desk/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Freight Desk API
// @version 1.0
// @description Weekly exchange rate ledger, currency conversion and inquiry email extraction.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...")
	if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	llm, err := ollama.NewClient(cfg.OllamaHost, cfg.LLMTimeout)
	if err != nil {
		logger.Error("Failed to create language model client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, llm)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	rate, err := limiter.NewRateFromFormatted(cfg.ParseRateLimit)
	if err != nil {
		logger.Error("Invalid PARSE_RATE_LIMIT", slog.String("value", cfg.ParseRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	parseLimiter := limiter.New(memory.NewStore(), rate)

	if err := handlers.RegisterValidators(); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, parseLimiter, posthogClient)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("llm_model", cfg.LLMModel),
		slog.String("business_timezone", cfg.BusinessLocation.String()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
