package schedule

import (
	"sort"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/teams"
)

// EventIncludesTeam reports whether team plays in the event, either as the
// exact away/home name or as the short identifier of either side. Matching
// is case-sensitive.
func EventIncludesTeam(event Event, team string) bool {
	return event.Away == team ||
		event.Home == team ||
		teams.ShortIdentifier(event.Away) == team ||
		teams.ShortIdentifier(event.Home) == team
}

// FilterTeam collects every (date, event) pair that includes team, in the
// order the days and events are given.
func FilterTeam(days []Day, team string) []TeamScheduleEntry {
	out := []TeamScheduleEntry{}
	for _, day := range days {
		for _, event := range day.Events {
			if EventIncludesTeam(event, team) {
				out = append(out, TeamScheduleEntry{Date: day.Date, Event: event})
			}
		}
	}
	return out
}

// SortEntries orders entries by date, keeping the in-day event order stable.
func SortEntries(entries []TeamScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
}

// SortDays orders days by date.
func SortDays(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
}
