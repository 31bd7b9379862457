// Package config centralises configuration parsing for the carbon tracker.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures runtime configuration values for the application.
type Config struct {
	HTTPAddress string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	DBPoolSize  int
	CacheTTL    time.Duration
	BcryptCost  int
}

// Load reads environment variables into Config, applying sensible defaults
// for local development.
func Load() Config {
	return Config{
		HTTPAddress: getEnv("HTTP_ADDRESS", ":8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getIntEnv("DB_PORT", 3306),
		DBUser:      getEnv("DB_USER", "root"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "carbon_tracker"),
		DBPoolSize:  getIntEnv("DB_POOL_SIZE", 5),
		CacheTTL:    getDurationEnv("CACHE_TTL", 30*time.Second),
		BcryptCost:  getIntEnv("BCRYPT_COST", 12),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
