package schedule

// Event is a single match on a day's card. Away and Home hold team names as
// they appear in the season data, normally the canonical full name.
type Event struct {
	Time string `json:"time"`
	Away string `json:"away"`
	Home string `json:"home"`
}

// Day groups the events played on one calendar date (YYYY-MM-DD).
type Day struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// TeamScheduleEntry pairs an event with the date it is played on.
type TeamScheduleEntry struct {
	Date  string `json:"date"`
	Event Event  `json:"event"`
}

// TeamScheduleResponse is the payload returned for a team's season schedule.
type TeamScheduleResponse struct {
	Team    string              `json:"team"`
	Entries []TeamScheduleEntry `json:"entries"`
}

// DatesResponse is the payload returned for scheduled-date lookups.
type DatesResponse struct {
	Start string   `json:"start,omitempty"`
	End   string   `json:"end,omitempty"`
	Dates []string `json:"dates"`
}

// NewTeamScheduleResponse builds a TeamScheduleResponse, never with a nil entry list.
func NewTeamScheduleResponse(team string, entries []TeamScheduleEntry) TeamScheduleResponse {
	if entries == nil {
		entries = []TeamScheduleEntry{}
	}
	return TeamScheduleResponse{Team: team, Entries: entries}
}

// NewDatesResponse builds a DatesResponse for the given range.
func NewDatesResponse(r DateRange, dates []string) DatesResponse {
	if dates == nil {
		dates = []string{}
	}
	return DatesResponse{Start: r.Start, End: r.End, Dates: dates}
}
