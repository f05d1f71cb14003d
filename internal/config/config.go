package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the movie search service.
type Config struct {
	Port      string
	Ghibli    GhibliConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Search    SearchConfig
}

// GhibliConfig holds the film API configuration.
type GhibliConfig struct {
	BaseURL string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig holds session token configuration.
type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

// RateLimitConfig holds request rate limiting configuration.
type RateLimitConfig struct {
	MaxRequests   int
	WindowSeconds int
}

// SearchConfig holds search pipeline configuration.
type SearchConfig struct {
	DefaultPageSize int
	Debounce        time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "60"))
	rateMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	rateWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))
	pageSize, _ := strconv.Atoi(getEnv("SEARCH_PAGE_SIZE", "12"))
	debounceMs, _ := strconv.Atoi(getEnv("SEARCH_DEBOUNCE_MS", "600"))

	cfg := &Config{
		Port: getEnv("SERVER_PORT", "8080"),
		Ghibli: GhibliConfig{
			BaseURL: getEnv("GHIBLI_BASE_URL", "https://ghibliapi.vercel.app"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-me"),
			SessionTTL: time.Duration(sessionTTL) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			MaxRequests:   rateMax,
			WindowSeconds: rateWindow,
		},
		Search: SearchConfig{
			DefaultPageSize: pageSize,
			Debounce:        time.Duration(debounceMs) * time.Millisecond,
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
