package schedule

import (
	"context"
	"fmt"
	"time"

	domain "github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

// Service answers schedule questions from a Store.
type Service struct {
	store domain.Store
}

// NewService constructs a Service with the provided Store.
func NewService(store domain.Store) *Service {
	return &Service{store: store}
}

// Day returns the schedule for date. A date with no document is ErrDateNotFound.
func (s *Service) Day(ctx context.Context, date string) (domain.Day, error) {
	key, err := domain.NormalizeDate(date)
	if err != nil {
		return domain.Day{}, err
	}
	day, ok, err := s.store.DaySchedule(ctx, key)
	if err != nil {
		return domain.Day{}, err
	}
	if !ok {
		return domain.Day{}, fmt.Errorf("%w: %s", domain.ErrDateNotFound, key)
	}
	return day, nil
}

// DayAt returns the schedule for the calendar date of t in t's location.
func (s *Service) DayAt(ctx context.Context, t time.Time) (domain.Day, error) {
	key, err := domain.DateOf(t)
	if err != nil {
		return domain.Day{}, err
	}
	return s.Day(ctx, key)
}

// TeamSchedule returns every event the team plays in, ordered by date.
func (s *Service) TeamSchedule(ctx context.Context, team string) (domain.TeamScheduleResponse, error) {
	entries, err := s.store.TeamSchedule(ctx, team)
	if err != nil {
		return domain.TeamScheduleResponse{}, err
	}
	return domain.NewTeamScheduleResponse(team, entries), nil
}

// ScheduledDates returns the dates inside r that have events.
func (s *Service) ScheduledDates(ctx context.Context, r domain.DateRange) (domain.DatesResponse, error) {
	r, err := r.Normalize()
	if err != nil {
		return domain.DatesResponse{}, err
	}
	dates, err := s.store.ScheduledDates(ctx, r)
	if err != nil {
		return domain.DatesResponse{}, err
	}
	return domain.NewDatesResponse(r, dates), nil
}
