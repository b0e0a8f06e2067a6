package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

// StubStore is a test double for schedule.Store. Days is keyed by date.
type StubStore struct {
	Days     map[string]schedule.Day
	Entries  []schedule.TeamScheduleEntry
	Dates    []string
	Err      error
	CloseErr error

	Calls      atomic.Int32
	CloseCalls int

	LastTeam  string
	LastRange schedule.DateRange
}

// DaySchedule returns the configured day for date, if any.
func (s *StubStore) DaySchedule(ctx context.Context, date string) (schedule.Day, bool, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Err != nil {
		return schedule.Day{}, false, s.Err
	}
	day, ok := s.Days[date]
	return day, ok, nil
}

// TeamSchedule returns the configured entries and records the team.
func (s *StubStore) TeamSchedule(ctx context.Context, team string) ([]schedule.TeamScheduleEntry, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastTeam = team
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entries, nil
}

// ScheduledDates returns the configured dates and records the range.
func (s *StubStore) ScheduledDates(ctx context.Context, r schedule.DateRange) ([]string, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastRange = r
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Dates, nil
}

// Close counts calls and returns CloseErr.
func (s *StubStore) Close() error {
	s.CloseCalls++
	return s.CloseErr
}
