package weather

import (
	"errors"
	"fmt"
	"time"
)

// SampleLayout is the provider's local date-time format for forecast samples.
const SampleLayout = "2006-01-02 15:04:05"

const dayLayout = "2006-01-02"

const noonHour = 12

var errNoTimestamp = errors.New("sample has neither dt_txt nor dt")

// dayGroup is the run of samples sharing a day key, in input order.
type dayGroup struct {
	day     string
	hours   []int
	samples []IntervalSample
}

// SelectDailyRepresentatives condenses interval samples into one sample per
// calendar day: the one whose hour is nearest to noon, the earliest winning
// ties. Days appear in the order they are first seen in samples.
//
// A sample with an unreadable timestamp fails the whole call with a
// KindAggregation error.
func SelectDailyRepresentatives(samples []IntervalSample) ([]DailyRepresentative, error) {
	groups, err := groupByDay(samples)
	if err != nil {
		return nil, err
	}

	out := make([]DailyRepresentative, 0, len(groups))
	for _, g := range groups {
		out = append(out, nearestNoon(g))
	}
	return out, nil
}

func groupByDay(samples []IntervalSample) ([]dayGroup, error) {
	var groups []dayGroup
	index := make(map[string]int)

	for i, s := range samples {
		day, hour, err := s.DayAndHour()
		if err != nil {
			return nil, NewError(KindAggregation, MsgBadTimestamp, fmt.Errorf("sample %d: %w", i, err))
		}

		pos, ok := index[day]
		if !ok {
			pos = len(groups)
			index[day] = pos
			groups = append(groups, dayGroup{day: day})
		}
		groups[pos].hours = append(groups[pos].hours, hour)
		groups[pos].samples = append(groups[pos].samples, s)
	}

	return groups, nil
}

// nearestNoon replaces the current best only on strict improvement, so the
// first sample at the minimal distance wins.
func nearestNoon(g dayGroup) DailyRepresentative {
	best := 0
	bestDist := noonDistance(g.hours[0])
	for i := 1; i < len(g.samples); i++ {
		if d := noonDistance(g.hours[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return DailyRepresentative{
		Day:    g.day,
		Hour:   g.hours[best],
		Sample: g.samples[best],
	}
}

func noonDistance(hour int) int {
	if hour < noonHour {
		return noonHour - hour
	}
	return hour - noonHour
}

// DayAndHour derives the day key and hour-of-day of the sample. The
// date-time string is used verbatim with no timezone conversion; the epoch
// fallback is read in UTC, which is the zone the provider reports dt_txt in.
func (s IntervalSample) DayAndHour() (string, int, error) {
	var ts time.Time
	switch {
	case s.Time != "":
		t, err := time.Parse(SampleLayout, s.Time)
		if err != nil {
			return "", 0, err
		}
		ts = t
	case s.Unix != 0:
		ts = time.Unix(s.Unix, 0).UTC()
	default:
		return "", 0, errNoTimestamp
	}
	return ts.Format(dayLayout), ts.Hour(), nil
}
