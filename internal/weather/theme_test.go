package weather

import "testing"

func TestThemeFor(t *testing.T) {
	cases := map[string]Theme{
		"Rain":         ThemeRain,
		"drizzle":      ThemeRain,
		"Clouds":       ThemeClouds,
		"Overcast":     ThemeClouds,
		"Mist":         ThemeMist,
		"Fog":          ThemeMist,
		"Haze":         ThemeMist,
		"Snow":         ThemeSnow,
		"Thunderstorm": ThemeThunderstorm,
		"Clear":        ThemeClear,
		"Tornado":      ThemeClear,
		"":             ThemeClear,
	}
	for in, want := range cases {
		if got := ThemeFor(in); got != want {
			t.Errorf("ThemeFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIconFor(t *testing.T) {
	cases := map[string]string{
		"Rain":          "cloud-rain",
		"Drizzle":       "cloud-rain",
		"Snow":          "cloud-snow",
		"Clouds":        "cloud",
		"Clear":         "sun",
		"Thunderstorm":  "sun",
		"freezing rain": "cloud-rain",
	}
	for in, want := range cases {
		if got := IconFor(in); got != want {
			t.Errorf("IconFor(%q) = %q, want %q", in, got, want)
		}
	}
}
