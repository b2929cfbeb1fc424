package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	AppEnv   string
	Port     string
	LogLevel string

	// HTTPTimeout bounds each outbound call to the geocoding and forecast
	// services.
	HTTPTimeout time.Duration

	// SQLitePath is the favorites database location.
	SQLitePath string

	// Base URLs for the upstream services; empty selects the production
	// Open-Meteo endpoints.
	GeocodingBaseURL string
	ForecastBaseURL  string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "development")
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.SQLitePath = getenvDefault("SQLITE_PATH", "data/cityweather.db")

	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
