package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseDSN string
	FrontendURL string
	LogLevel    string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

// Load reads configuration from the environment, picking up a local .env
// file when present. Every value has a development default.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DatabaseDSN:     getEnv("DATABASE_URL", "villa.db"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 15*60*1000)) * time.Millisecond,
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
