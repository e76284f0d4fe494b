package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string

	// Database (submission records and audit log)
	DatabaseURL string

	// JWT
	JWTSecret string

	// Storage for archived quotes
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string

	// Prometheus endpoint at /metrics
	MetricsEnabled bool

	// Rental backend
	RentalAPIBaseURL string
	RentalAPIToken   string
	APITimeout       time.Duration

	// Draft sessions
	SessionTTL           time.Duration
	DefaultPaymentMethod string
	Currency             string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          getEnv("ENVIRONMENT", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		StoragePath:          getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:          getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:       getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:            getEnv("SENTRY_DSN", ""),
		MetricsEnabled:       getEnvAsBool("METRICS_ENABLED", true),
		RentalAPIBaseURL:     getEnv("RENTAL_API_BASE_URL", "http://127.0.0.1:8000"),
		RentalAPIToken:       getEnv("RENTAL_API_TOKEN", ""),
		APITimeout:           getEnvAsDuration("API_TIMEOUT", 15*time.Second),
		SessionTTL:           getEnvAsDuration("SESSION_TTL", 8*time.Hour),
		DefaultPaymentMethod: getEnv("DEFAULT_PAYMENT_METHOD", "Cash"),
		Currency:             getEnv("CURRENCY", "VND"),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if strings.TrimSpace(cfg.RentalAPIBaseURL) == "" {
		return nil, fmt.Errorf("RENTAL_API_BASE_URL must not be empty")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool reads an environment variable as boolean
func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration reads an environment variable as a Go duration ("15s", "8h")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
