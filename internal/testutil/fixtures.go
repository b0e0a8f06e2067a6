package testutil

import "github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"

// SampleEvent returns an event between the given away and home teams.
func SampleEvent(away, home string) schedule.Event {
	return schedule.Event{Time: "4:00 PM", Away: away, Home: home}
}

// SampleSeason returns a small three-day season. The Houston Outlaws play on
// 2019-01-05 and 2019-01-12; nobody plays the Toronto Defiant.
func SampleSeason() []schedule.Day {
	return []schedule.Day{
		{Date: "2019-01-05", Events: []schedule.Event{
			SampleEvent("Dallas Fuel", "Houston Outlaws"),
			SampleEvent("Seoul Dynasty", "London Spitfire"),
		}},
		{Date: "2019-01-06", Events: []schedule.Event{
			SampleEvent("San Francisco Shock", "Vancouver Titans"),
		}},
		{Date: "2019-01-12", Events: []schedule.Event{
			SampleEvent("Houston Outlaws", "Paris Eternal"),
			SampleEvent("Dallas Fuel", "Seoul Dynasty"),
		}},
	}
}
