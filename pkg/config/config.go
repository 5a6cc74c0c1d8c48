package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	Environment      string
	DatabaseDSN      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	AuthCookieMaxAge int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	cookieMaxAge := int((24 * time.Hour).Seconds())
	if raw := os.Getenv("AUTH_COOKIE_MAX_AGE"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			cookieMaxAge = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=profile password=profile dbname=profile port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:  accessExpiry,
		AuthCookieMaxAge: cookieMaxAge,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
