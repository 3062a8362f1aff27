package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/i474232898/weather-relay/internal/weather"
)

var validate = validator.New()

// Relay is the subset of *weather.Service the routes depend on.
type Relay interface {
	Current(ctx context.Context, city string) (json.RawMessage, error)
	Forecast(ctx context.Context, city string) (json.RawMessage, error)
}

// RegisterRoutes wires the HTTP handlers into the Fiber app. Unmatched paths
// fall through to a JSON 404, so this must be registered last.
func RegisterRoutes(app *fiber.App, relay Relay) {
	api := app.Group("/api")

	api.Get("/weather", relayHandler(relay.Current))
	api.Get("/forecast", relayHandler(relay.Forecast))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "Weather API server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(messageBody{Message: weather.MsgEndpointMissing})
	})
}

func relayHandler(fetch func(context.Context, string) (json.RawMessage, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q, err := parseCityQuery(c)
		if err != nil {
			return err
		}

		payload, err := fetch(c.UserContext(), q.City)
		if err != nil {
			return err
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(payload)
	}
}

// cityQuery holds the query parameters for a relay lookup.
type cityQuery struct {
	City string `validate:"required"`
}

func parseCityQuery(c *fiber.Ctx) (cityQuery, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return q, weather.NewError(weather.KindValidation, weather.MsgCityRequired, err)
	}
	return q, nil
}

// messageBody is the shape of every error response.
type messageBody struct {
	Message string `json:"message"`
}

// ErrorHandler renders every error as {"message": ...} with the status its
// kind maps to. Internal causes are logged, never returned.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)

	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	if status >= fiber.StatusInternalServerError {
		log.Printf("ERROR: [%s] %s %s: %v", rid, c.Method(), c.Path(), err)
	} else {
		log.Printf("INFO: [%s] %s %s: %v", rid, c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(messageBody{Message: msg})
}

func statusFor(err error) (int, string) {
	var werr *weather.Error
	if errors.As(err, &werr) {
		switch werr.Kind {
		case weather.KindValidation:
			return fiber.StatusBadRequest, werr.Message
		case weather.KindNotFound:
			return fiber.StatusNotFound, werr.Message
		default:
			return fiber.StatusInternalServerError, werr.Message
		}
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		if ferr.Code == fiber.StatusNotFound {
			return ferr.Code, weather.MsgEndpointMissing
		}
		if ferr.Code < fiber.StatusInternalServerError {
			return ferr.Code, ferr.Message
		}
	}

	return fiber.StatusInternalServerError, weather.MsgInternal
}
