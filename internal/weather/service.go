package weather

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"
)

// DefaultCallTimeout bounds a single outbound provider call when the
// service is built without an explicit timeout.
const DefaultCallTimeout = 10 * time.Second

// Report holds both payloads of a lookup. ForecastErr is set when the
// current conditions succeeded but the forecast did not.
type Report struct {
	City        string
	Current     json.RawMessage
	Forecast    json.RawMessage
	ForecastErr error
}

// Service relays city lookups to a single provider.
type Service struct {
	provider Provider
	timeout  time.Duration
}

// NewService creates a new Service. A non-positive timeout uses DefaultCallTimeout.
func NewService(provider Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Service{
		provider: provider,
		timeout:  timeout,
	}
}

// Current returns the provider's current-conditions payload for city.
func (s *Service) Current(ctx context.Context, city string) (json.RawMessage, error) {
	return s.call(ctx, "current", city, s.provider.FetchCurrent)
}

// Forecast returns the provider's 5-day/3-hour forecast payload for city.
func (s *Service) Forecast(ctx context.Context, city string) (json.RawMessage, error) {
	return s.call(ctx, "forecast", city, s.provider.FetchForecast)
}

// Lookup fetches current conditions and then the forecast. The forecast is
// only attempted once current conditions are known to exist; its failure
// does not discard the current payload.
func (s *Service) Lookup(ctx context.Context, city string) (Report, error) {
	current, err := s.Current(ctx, city)
	if err != nil {
		return Report{}, err
	}

	report := Report{City: strings.TrimSpace(city), Current: current}
	forecast, err := s.Forecast(ctx, city)
	if err != nil {
		report.ForecastErr = err
		return report, nil
	}
	report.Forecast = forecast
	return report, nil
}

func (s *Service) call(
	ctx context.Context,
	what, city string,
	fetch func(context.Context, string) (json.RawMessage, error),
) (json.RawMessage, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, NewError(KindValidation, MsgCityRequired, nil)
	}
	if s.provider == nil {
		return nil, NewError(KindConfiguration, MsgKeyMissing, errors.New("no weather provider configured"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log.Printf("DEBUG: %s lookup for %q via %s", what, city, s.provider.Name())
	payload, err := fetch(ctx, city)
	if err != nil {
		if KindOf(err) == "" {
			err = NewError(KindUpstream, upstreamMessage(what), err)
		}
		log.Printf("ERROR: %s lookup for %q failed: %v", what, city, err)
		return nil, err
	}
	return payload, nil
}

func upstreamMessage(what string) string {
	if what == "forecast" {
		return MsgForecastFailed
	}
	return MsgWeatherFailed
}
