package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/weather-relay/internal/api/http"
	"github.com/i474232898/weather-relay/internal/config"
	"github.com/i474232898/weather-relay/internal/weather"
	"github.com/i474232898/weather-relay/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.WeatherAPIKey == "" {
		log.Printf("ERROR: WEATHER_API_KEY is not set; every lookup will fail until it is configured")
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.UpstreamTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.WeatherAPIKey,
		providers.WithBaseURL(cfg.OpenWeatherBaseURL),
		providers.WithRetries(cfg.UpstreamMaxRetries),
	)

	service := weather.NewService(provider, cfg.UpstreamTimeout)

	app := httpapi.NewApp(service, httpapi.Options{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		AccessLog:        true,
	})

	go func() {
		log.Printf("INFO: weather relay listening on :%s (health: /api/health)", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
