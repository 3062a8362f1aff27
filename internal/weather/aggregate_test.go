package weather

import (
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func sampleAt(day string, hour int, summary string) IntervalSample {
	return IntervalSample{
		Time:         fmt.Sprintf("%s %02d:00:00", day, hour),
		TemperatureC: float64(hour),
		Summary:      summary,
	}
}

func hoursOf(day string, hours ...int) []IntervalSample {
	out := make([]IntervalSample, 0, len(hours))
	for _, h := range hours {
		out = append(out, sampleAt(day, h, "Clouds"))
	}
	return out
}

func TestSelectDailyRepresentatives(t *testing.T) {
	Convey("Given interval samples", t, func() {

		Convey("An empty input yields an empty output and no error", func() {
			got, err := SelectDailyRepresentatives(nil)
			So(err, ShouldBeNil)
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})

		Convey("A full day picks the exact-noon sample", func() {
			got, err := SelectDailyRepresentatives(hoursOf("2024-05-01", 0, 6, 9, 12, 15, 18, 21))
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Day, ShouldEqual, "2024-05-01")
			So(got[0].Hour, ShouldEqual, 12)
			So(got[0].Sample.Time, ShouldEqual, "2024-05-01 12:00:00")
		})

		Convey("Equal distances to noon keep the earlier sample", func() {
			got, err := SelectDailyRepresentatives(hoursOf("2024-05-01", 9, 15))
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Hour, ShouldEqual, 9)
		})

		Convey("The later of two tied samples never replaces the first, in either order", func() {
			got, err := SelectDailyRepresentatives(hoursOf("2024-05-01", 15, 9))
			So(err, ShouldBeNil)
			So(got[0].Hour, ShouldEqual, 15)
		})

		Convey("Two days keep first-seen order and a singleton day keeps its only sample", func() {
			in := append(hoursOf("2024-05-01", 11, 14), hoursOf("2024-05-02", 3)...)
			got, err := SelectDailyRepresentatives(in)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 2)
			So(got[0].Sample, ShouldResemble, in[0])
			So(got[1].Sample, ShouldResemble, in[2])
		})

		Convey("Interleaved days are grouped by day key, ordered by first appearance", func() {
			in := []IntervalSample{
				sampleAt("2024-05-03", 21, "Rain"),
				sampleAt("2024-05-01", 6, "Clear"),
				sampleAt("2024-05-03", 12, "Snow"),
				sampleAt("2024-05-02", 0, "Mist"),
				sampleAt("2024-05-01", 13, "Clouds"),
			}
			got, err := SelectDailyRepresentatives(in)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 3)
			So(got[0].Day, ShouldEqual, "2024-05-03")
			So(got[0].Sample.Summary, ShouldEqual, "Snow")
			So(got[1].Day, ShouldEqual, "2024-05-01")
			So(got[1].Sample.Summary, ShouldEqual, "Clouds")
			So(got[2].Day, ShouldEqual, "2024-05-02")
			So(got[2].Sample.Summary, ShouldEqual, "Mist")
		})

		Convey("A realistic 5-day series yields one noon-nearest sample per day", func() {
			var in []IntervalSample
			start := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
			for i := 0; i < 40; i++ {
				ts := start.Add(time.Duration(i) * 3 * time.Hour)
				in = append(in, IntervalSample{Time: ts.Format(SampleLayout)})
			}

			got, err := SelectDailyRepresentatives(in)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 6)

			seen := make(map[string]bool)
			for i, d := range got {
				So(seen[d.Day], ShouldBeFalse)
				seen[d.Day] = true
				if i == 0 {
					So(d.Hour, ShouldEqual, 15)
					continue
				}
				So(d.Hour, ShouldEqual, 12)
			}
		})

		Convey("Every chosen sample is at least as close to noon as the rest of its day", func() {
			in := append(hoursOf("2024-05-01", 2, 8, 17, 10, 14), hoursOf("2024-05-02", 23, 1, 19)...)
			got, err := SelectDailyRepresentatives(in)
			So(err, ShouldBeNil)
			for _, d := range got {
				for _, s := range in {
					day, hour, _ := s.DayAndHour()
					if day == d.Day {
						So(noonDistance(d.Hour), ShouldBeLessThanOrEqualTo, noonDistance(hour))
					}
				}
			}
			So(got[0].Hour, ShouldEqual, 10)
			So(got[1].Hour, ShouldEqual, 19)
		})

		Convey("The epoch field is used when the date-time string is absent", func() {
			noon := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).Unix()
			in := []IntervalSample{
				{Unix: noon - 3*3600},
				{Unix: noon},
			}
			got, err := SelectDailyRepresentatives(in)
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Day, ShouldEqual, "2024-05-01")
			So(got[0].Hour, ShouldEqual, 12)
		})

		Convey("An unreadable timestamp fails the whole call", func() {
			in := append(hoursOf("2024-05-01", 9), IntervalSample{Time: "tomorrow-ish"})
			got, err := SelectDailyRepresentatives(in)
			So(got, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(IsKind(err, KindAggregation), ShouldBeTrue)
		})

		Convey("A sample with no timestamp at all fails the whole call", func() {
			_, err := SelectDailyRepresentatives([]IntervalSample{{Summary: "Rain"}})
			So(IsKind(err, KindAggregation), ShouldBeTrue)
		})
	})
}

func TestForecastPayloadSamples(t *testing.T) {
	Convey("Given a provider forecast payload", t, func() {
		raw := []byte(`{
			"cnt": 2,
			"list": [
				{"dt": 1714564800, "dt_txt": "2024-05-01 12:00:00", "main": {"temp": 18.4},
				 "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}]},
				{"dt": 1714575600, "dt_txt": "2024-05-01 15:00:00", "main": {"temp": 19.1}, "weather": []}
			],
			"city": {"name": "Lisbon", "country": "PT"}
		}`)

		f, err := DecodeForecast(raw)
		So(err, ShouldBeNil)
		So(f.City.Name, ShouldEqual, "Lisbon")

		samples := f.Samples()
		So(samples, ShouldHaveLength, 2)
		So(samples[0], ShouldResemble, IntervalSample{
			Time:         "2024-05-01 12:00:00",
			Unix:         1714564800,
			TemperatureC: 18.4,
			Summary:      "Rain",
			Description:  "light rain",
		})
		So(samples[1].Summary, ShouldBeEmpty)
	})
}
