package weather

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the relay and the aggregator can report.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindConfiguration Kind = "configuration"
	KindNotFound      Kind = "not_found"
	KindAuth          Kind = "auth"
	KindUpstream      Kind = "upstream"
	KindAggregation   Kind = "aggregation"
)

// Client-facing messages. Upstream details never leave the server.
const (
	MsgCityRequired    = "City parameter is required"
	MsgKeyMissing      = "Weather API key not configured"
	MsgCityNotFound    = "City not found. Please check the spelling and try again."
	MsgInvalidKey      = "Invalid API key. Please check your configuration."
	MsgWeatherFailed   = "Failed to fetch weather data. Please try again later."
	MsgForecastFailed  = "Failed to fetch forecast data. Please try again later."
	MsgBadTimestamp    = "Forecast sample has an unreadable timestamp."
	MsgEndpointMissing = "Endpoint not found"
	MsgInternal        = "Internal server error"
)

// Error is a classified failure. Message is safe to show to end users;
// Err carries the internal cause for logging.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error.
func NewError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the Kind of err, or "" when err is not a classified error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
