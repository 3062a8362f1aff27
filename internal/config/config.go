package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// WeatherAPIKey is the OpenWeatherMap credential. Empty is allowed at
	// startup; every lookup then fails with a configuration error.
	WeatherAPIKey string

	// OpenWeatherBaseURL is the provider API root.
	OpenWeatherBaseURL string

	// UpstreamTimeout bounds each outbound provider call.
	UpstreamTimeout time.Duration
	// UpstreamMaxRetries is the number of retries for transient provider failures (0 = none).
	UpstreamMaxRetries int

	CORSAllowOrigins string

	Port string

	// RelayBaseURL is where relay consumers reach the server.
	RelayBaseURL string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = strings.TrimSpace(os.Getenv("WEATHER_API_KEY"))
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")

	timeout, err := time.ParseDuration(getenvDefault("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.UpstreamTimeout = timeout

	retries, err := getenvInt("UPSTREAM_MAX_RETRIES", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_MAX_RETRIES: %w", err)
	}
	if retries < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_MAX_RETRIES: must not be negative, got %d", retries)
	}
	cfg.UpstreamMaxRetries = retries

	cfg.CORSAllowOrigins = getenvDefault("CORS_ALLOW_ORIGINS", "*")
	cfg.Port = getenvDefault("PORT", "5000")
	cfg.RelayBaseURL = getenvDefault("RELAY_BASE_URL", "http://localhost:"+cfg.Port)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
