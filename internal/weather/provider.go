package weather

import (
	"context"
	"encoding/json"
)

// Provider abstracts the upstream weather API. Payloads are returned
// verbatim; failures are classified as *Error before they leave the provider.
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (json.RawMessage, error)
	FetchForecast(ctx context.Context, city string) (json.RawMessage, error)
}
