package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/i474232898/weather-relay/internal/client"
	"github.com/i474232898/weather-relay/internal/config"
	"github.com/i474232898/weather-relay/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	relayURL := flag.String("relay", cfg.RelayBaseURL, "weather relay base URL")
	timeout := flag.Duration("timeout", 2*cfg.UpstreamTimeout, "overall lookup timeout")
	flag.Parse()

	city := strings.Join(flag.Args(), " ")
	if strings.TrimSpace(city) == "" {
		fmt.Fprintln(os.Stderr, "usage: meteora [-relay URL] <city>")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	view := client.New(*relayURL, *timeout).Lookup(ctx, city)
	if view.State == client.StateError {
		fmt.Fprintf(os.Stderr, "Oops! %s\n", view.Message)
		os.Exit(1)
	}

	printView(view)
}

func printView(v client.View) {
	cur := v.Current
	place := cur.Name
	if cur.Sys.Country != "" {
		place = fmt.Sprintf("%s, %s", cur.Name, cur.Sys.Country)
	}

	fmt.Printf("%s  [%s / %s]\n", place, v.Icon, v.Theme)
	fmt.Printf("  %.0f°C (feels like %.0f°C), %s\n", cur.Main.Temp, cur.Main.FeelsLike, cur.Description())
	fmt.Printf("  humidity %.0f%%, wind %.1f m/s\n", cur.Main.Humidity, cur.Wind.Speed)

	if len(v.Daily) == 0 {
		return
	}
	fmt.Println()
	for _, d := range v.Daily {
		label := d.Day
		if t, err := time.Parse("2006-01-02", d.Day); err == nil {
			label = t.Format("Mon Jan 2")
		}
		fmt.Printf("  %-10s  %-10s %5.0f°C  %s\n", label, weather.IconFor(d.Sample.Summary), d.Sample.TemperatureC, d.Sample.Summary)
	}
}
