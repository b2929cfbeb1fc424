package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/cityweather/internal/api/http"
	"github.com/i474232898/cityweather/internal/config"
	"github.com/i474232898/cityweather/internal/db"
	"github.com/i474232898/cityweather/internal/favorites"
	"github.com/i474232898/cityweather/internal/logging"
	"github.com/i474232898/cityweather/internal/weather"
	"github.com/i474232898/cityweather/internal/weather/openmeteo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logging.New(cfg.AppEnv, cfg.LogLevel)
	slog.SetDefault(log)

	// Favorites persistence.
	database, err := db.Open(cfg.SQLitePath)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	favStore, err := favorites.NewSQLiteStore(database)
	if err != nil {
		log.Error("failed to init favorites store", "error", err)
		os.Exit(1)
	}

	// Shared HTTP client for outbound upstream calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := openmeteo.NewGeocodingClient(httpClient, cfg.GeocodingBaseURL)
	forecaster := openmeteo.NewForecastClient(httpClient, cfg.ForecastBaseURL)
	svc := weather.NewService(geocoder, forecaster)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "cityweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "cityweather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, svc, favStore)

	go func() {
		log.Info("listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", "error", err)
	}
}
