package config

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// Config carries the process configuration, read from the environment with
// an optional .env file on top
type Config struct {
	Port     string
	DataDir  string
	LogLevel string
}

// Load reads .env (when present) and the environment. Every value has a
// development default so a bare checkout runs.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn(fmt.Sprintf("Config: ignoring .env: %v", err))
	}

	return Config{
		Port:     envOr("CATALOG_PORT", "8080"),
		DataDir:  envOr("CATALOG_DATA_DIR", "./catalog-data"),
		LogLevel: envOr("CATALOG_LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
