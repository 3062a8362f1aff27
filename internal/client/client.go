// Package client consumes the weather relay the way the browser frontend
// does: current conditions first, then the forecast, condensed to one entry
// per day.
package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/weather-relay/internal/common"
	"github.com/i474232898/weather-relay/internal/weather"
)

// State is the mutually exclusive display state of a lookup.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateReady   State = "ready"
)

// View is everything a frontend needs to render one lookup. Only the
// fields that belong to State are populated.
type View struct {
	State   State
	City    string
	Message string

	Current *weather.CurrentConditions
	Theme   weather.Theme
	Icon    string
	Daily   []weather.DailyRepresentative
}

// Client talks to a weather relay over HTTP.
type Client struct {
	http *resty.Client
}

type messageBody struct {
	Message string `json:"message"`
}

// New creates a Client for the relay at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: r}
}

// Current fetches and decodes current conditions for city.
func (c *Client) Current(ctx context.Context, city string) (weather.CurrentConditions, error) {
	var out weather.CurrentConditions
	if err := c.get(ctx, "/api/weather", city, &out, weather.MsgWeatherFailed); err != nil {
		return weather.CurrentConditions{}, err
	}
	return out, nil
}

// Forecast fetches and decodes the 5-day/3-hour forecast for city.
func (c *Client) Forecast(ctx context.Context, city string) (weather.ForecastPayload, error) {
	var out weather.ForecastPayload
	if err := c.get(ctx, "/api/forecast", city, &out, weather.MsgForecastFailed); err != nil {
		return weather.ForecastPayload{}, err
	}
	return out, nil
}

// Lookup resolves city into a View in either StateError or StateReady.
// A failed forecast or an unreadable forecast sample leaves Daily empty
// without affecting the rest of the view.
func (c *Client) Lookup(ctx context.Context, city string) View {
	city = strings.TrimSpace(city)
	view := View{State: StateLoading, City: city}

	current, err := c.Current(ctx, city)
	if err != nil {
		return View{State: StateError, City: city, Message: userMessage(err, weather.MsgWeatherFailed)}
	}

	view.Current = &current
	view.Theme = weather.ThemeFor(current.Summary())
	view.Icon = weather.IconFor(current.Summary())

	forecast, err := c.Forecast(ctx, city)
	if err != nil {
		log.Printf("INFO: forecast for %q unavailable: %v", city, err)
		view.State = StateReady
		return view
	}

	daily, err := weather.SelectDailyRepresentatives(forecast.Samples())
	if err != nil {
		log.Printf("ERROR: forecast for %q could not be condensed: %v", city, err)
		view.State = StateReady
		return view
	}

	view.Daily = daily
	view.State = StateReady
	return view
}

func (c *Client) get(ctx context.Context, path, city string, out interface{}, failMsg string) error {
	if strings.TrimSpace(city) == "" {
		return weather.NewError(weather.KindValidation, weather.MsgCityRequired, nil)
	}

	var apiErr messageBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("city", city).
		SetResult(out).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return weather.NewError(weather.KindUpstream, failMsg, err)
	}
	if resp.IsError() {
		msg := common.FirstNonEmpty(apiErr.Message, failMsg)
		return weather.NewError(kindForStatus(resp.StatusCode(), msg), msg,
			fmt.Errorf("relay %s: status %d", path, resp.StatusCode()))
	}
	return nil
}

// kindForStatus recovers the error kind from the relay's status and message.
func kindForStatus(code int, msg string) weather.Kind {
	switch {
	case code == http.StatusBadRequest:
		return weather.KindValidation
	case code == http.StatusNotFound && msg == weather.MsgCityNotFound:
		return weather.KindNotFound
	case msg == weather.MsgKeyMissing:
		return weather.KindConfiguration
	case msg == weather.MsgInvalidKey:
		return weather.KindAuth
	default:
		return weather.KindUpstream
	}
}

func userMessage(err error, fallback string) string {
	var e *weather.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
