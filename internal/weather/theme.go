package weather

import (
	"strings"

	"github.com/i474232898/weather-relay/internal/common"
)

// ThemeFor maps a condition summary to a visual theme. Unknown or empty
// summaries fall back to ThemeClear.
func ThemeFor(summary string) Theme {
	switch s := strings.ToLower(strings.TrimSpace(summary)); s {
	case "mist", "fog", "haze":
		return ThemeMist
	case "rain", "drizzle":
		return ThemeRain
	case "clouds", "cloudy", "overcast":
		return ThemeClouds
	case "snow":
		return ThemeSnow
	case "thunderstorm":
		return ThemeThunderstorm
	default:
		return ThemeClear
	}
}

// IconFor picks a display icon name by substring match on the summary.
func IconFor(summary string) string {
	s := strings.ToLower(summary)
	switch {
	case common.HasAny(s, "rain", "drizzle"):
		return "cloud-rain"
	case common.HasAny(s, "snow"):
		return "cloud-snow"
	case common.HasAny(s, "cloud"):
		return "cloud"
	default:
		return "sun"
	}
}
