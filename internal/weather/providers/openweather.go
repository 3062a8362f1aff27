package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/i474232898/weather-relay/internal/weather"
	"github.com/sony/gobreaker"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 API root.
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// OpenWeatherOption customizes an OpenWeatherProvider.
type OpenWeatherOption func(*OpenWeatherProvider)

// WithBaseURL points the provider at a different API root.
func WithBaseURL(baseURL string) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithRetries enables retrying transient failures with exponential backoff.
func WithRetries(maxRetries int) OpenWeatherOption {
	return func(p *OpenWeatherProvider) {
		if maxRetries > 0 {
			p.httpCfg.Backoff.MaxRetries = maxRetries
		}
	}
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...OpenWeatherOption) *OpenWeatherProvider {
	p := &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: DefaultOpenWeatherBaseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      0,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: newCircuitBreaker("openweather"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// FetchCurrent relays GET {base}/weather for the city.
func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, city string) (json.RawMessage, error) {
	return p.fetch(ctx, "weather", city, weather.MsgWeatherFailed)
}

// FetchForecast relays GET {base}/forecast for the city.
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, city string) (json.RawMessage, error) {
	return p.fetch(ctx, "forecast", city, weather.MsgForecastFailed)
}

func (p *OpenWeatherProvider) fetch(ctx context.Context, endpoint, city, failMsg string) (json.RawMessage, error) {
	if p.apiKey == "" {
		return nil, weather.NewError(weather.KindConfiguration, weather.MsgKeyMissing,
			errors.New("openweather api key is not configured"))
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", city)
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")

		u := fmt.Sprintf("%s/%s?%s", p.baseURL, endpoint, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	body, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, classify(endpoint, err, failMsg)
	}

	if !json.Valid(body) {
		return nil, weather.NewError(weather.KindUpstream, failMsg,
			fmt.Errorf("openweather %s: response is not valid JSON", endpoint))
	}
	return json.RawMessage(body), nil
}

func classify(endpoint string, err error, failMsg string) error {
	wrapped := fmt.Errorf("openweather %s: %w", endpoint, err)
	switch {
	case errors.Is(err, errNotFound):
		return weather.NewError(weather.KindNotFound, weather.MsgCityNotFound, wrapped)
	case errors.Is(err, errUnauthorized):
		return weather.NewError(weather.KindAuth, weather.MsgInvalidKey, wrapped)
	default:
		return weather.NewError(weather.KindUpstream, failMsg, wrapped)
	}
}
