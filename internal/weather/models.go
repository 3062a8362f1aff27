package weather

import (
	"encoding/json"
)

// Theme is the decorative visual theme derived from a condition summary.
type Theme string

const (
	ThemeClear        Theme = "clear"
	ThemeClouds       Theme = "clouds"
	ThemeRain         Theme = "rain"
	ThemeSnow         Theme = "snow"
	ThemeThunderstorm Theme = "thunderstorm"
	ThemeMist         Theme = "mist"
)

// IntervalSample is one forecast data point reported by the provider.
// Time is the provider's local date-time string (2006-01-02 15:04:05);
// Unix is the same instant as epoch seconds and is only consulted when
// Time is empty.
type IntervalSample struct {
	Time         string  `json:"dtTxt"`
	Unix         int64   `json:"dt"`
	TemperatureC float64 `json:"temperatureC"`
	Summary      string  `json:"summary"`
	Description  string  `json:"description"`
}

// DailyRepresentative is the sample chosen to stand for a whole calendar day.
type DailyRepresentative struct {
	Day    string         `json:"day"`
	Hour   int            `json:"hour"`
	Sample IntervalSample `json:"sample"`
}

// condition is the provider's weather[] entry.
type condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ForecastPayload is the subset of the provider's 5-day/3-hour forecast
// response this system reads.
type ForecastPayload struct {
	Cnt  int `json:"cnt"`
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []condition `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// Samples flattens the payload's list into interval samples, preserving order.
func (f ForecastPayload) Samples() []IntervalSample {
	samples := make([]IntervalSample, 0, len(f.List))
	for _, item := range f.List {
		s := IntervalSample{
			Time:         item.DtTxt,
			Unix:         item.Dt,
			TemperatureC: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			s.Summary = item.Weather[0].Main
			s.Description = item.Weather[0].Description
		}
		samples = append(samples, s)
	}
	return samples
}

// DecodeForecast parses a raw forecast payload as relayed from the provider.
func DecodeForecast(raw json.RawMessage) (ForecastPayload, error) {
	var f ForecastPayload
	if err := json.Unmarshal(raw, &f); err != nil {
		return ForecastPayload{}, err
	}
	return f, nil
}

// CurrentConditions is the subset of the provider's current-weather
// response this system reads.
type CurrentConditions struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []condition `json:"weather"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Summary returns the short condition category ("Rain", "Clouds", ...), or "".
func (c CurrentConditions) Summary() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Main
}

// Description returns the human-readable condition text, or "".
func (c CurrentConditions) Description() string {
	if len(c.Weather) == 0 {
		return ""
	}
	return c.Weather[0].Description
}
