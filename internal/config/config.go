package config

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"
)

type Config struct {
	DBSource string
	Port     string
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A .env file is a local convenience; a missing one is not an error and
	// real environment variables always win.
	_ = gotenv.Load()

	dbSource := os.Getenv("DB_SOURCE")
	if dbSource == "" {
		return nil, fmt.Errorf("DB_SOURCE environment variable is required")
	}

	return &Config{
		DBSource: dbSource,
		Port:     getEnv("SERVER_PORT", "8080"),
		Env:      getEnv("ENVIRONMENT", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
