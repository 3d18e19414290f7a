package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	MigrationsPath    string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	FrontendBaseURL   string
	PosthogAPIKey     string

	// Language model backend
	OllamaHost     string
	LLMModel       string
	LLMTimeout     time.Duration
	LLMTemperature float64
	LLMMaxTokens   int
	ParseRateLimit string

	// Rate ledger
	SourcePriority   []domain.RateSource
	BusinessLocation *time.Location
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "freight-desk")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("LLM_MODEL", "qwen2.5:7b")
	viper.SetDefault("LLM_TIMEOUT", "90s")
	viper.SetDefault("LLM_TEMPERATURE", 0.1)
	viper.SetDefault("LLM_MAX_TOKENS", 1024)
	viper.SetDefault("PARSE_RATE_LIMIT", "20-M")
	viper.SetDefault("RATE_SOURCE_PRIORITY", "BI,BCA,MANDIRI,MANUAL,API")
	viper.SetDefault("BUSINESS_TIMEZONE", "Asia/Jakarta")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		MigrationsPath:  viper.GetString("MIGRATIONS_PATH"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		OllamaHost:      viper.GetString("OLLAMA_HOST"),
		LLMModel:        viper.GetString("LLM_MODEL"),
		LLMTemperature:  viper.GetFloat64("LLM_TEMPERATURE"),
		LLMMaxTokens:    viper.GetInt("LLM_MAX_TOKENS"),
		ParseRateLimit:  viper.GetString("PARSE_RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	cfg.JWTExpiryDuration, err = time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}

	cfg.LLMTimeout, err = time.ParseDuration(viper.GetString("LLM_TIMEOUT"))
	if err != nil || cfg.LLMTimeout <= 0 {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: must be a positive duration", viper.GetString("LLM_TIMEOUT"))
	}

	cfg.SourcePriority, err = ParseSourcePriority(viper.GetString("RATE_SOURCE_PRIORITY"))
	if err != nil {
		return nil, err
	}

	cfg.BusinessLocation, err = time.LoadLocation(viper.GetString("BUSINESS_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// ParseSourcePriority parses a comma separated list such as "BI,BCA,MANUAL".
// Unknown and repeated sources are rejected.
func ParseSourcePriority(raw string) ([]domain.RateSource, error) {
	var sources []domain.RateSource
	seen := make(map[domain.RateSource]bool)
	for _, part := range strings.Split(raw, ",") {
		src := domain.RateSource(strings.ToUpper(strings.TrimSpace(part)))
		if src == "" {
			continue
		}
		if !src.Valid() {
			return nil, fmt.Errorf("invalid RATE_SOURCE_PRIORITY: unknown source %q", src)
		}
		if seen[src] {
			return nil, fmt.Errorf("invalid RATE_SOURCE_PRIORITY: %q listed twice", src)
		}
		seen[src] = true
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("invalid RATE_SOURCE_PRIORITY: at least one source is required")
	}
	return sources, nil
}
