package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable through STORE_BACKEND
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSync     = "sync"
	BackendMemory   = "memory"
	BackendNone     = "none"
)

// Config is the process configuration read from the environment
type Config struct {
	Port            string
	Prod            bool
	StoreBackend    string
	RedisURL        string
	MigratePostgres bool
	Key             string
	Location        *time.Location
	LogLevel        string
}

// Load reads .env when present and then the environment
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Prod:            os.Getenv("PROD") == "true",
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", BackendRedis)),
		RedisURL:        getEnv("REDIS_URL", "localhost:6379"),
		MigratePostgres: os.Getenv("MIGRATE_POSTGRES") == "true",
		Key:             getEnv("KEY", "gamehub-dev-key"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	switch cfg.StoreBackend {
	case BackendRedis, BackendPostgres, BackendSync, BackendMemory, BackendNone:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc
	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
