package store

import (
	"context"

	"github.com/preston-bernstein/owl-schedule-service/internal/dataset"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
)

// BackendFile names the file-backed store in logs and metrics.
const BackendFile = "file"

// FileStore serves a season held entirely in memory. It is loaded once and
// never mutated, so reads need no locking. Every query is a linear scan and
// ignores ctx.
type FileStore struct {
	days []schedule.Day
}

// NewFileStore loads the season at path, or the bundled season when path is empty.
func NewFileStore(path string) (*FileStore, error) {
	days, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewFileStoreFromDays(days), nil
}

// NewFileStoreFromDays builds a store over already decoded days, sorted by date.
func NewFileStoreFromDays(days []schedule.Day) *FileStore {
	owned := make([]schedule.Day, len(days))
	for i, d := range days {
		owned[i] = copyDay(d)
	}
	schedule.SortDays(owned)
	return &FileStore{days: owned}
}

// DaySchedule returns the day whose date equals date exactly.
func (s *FileStore) DaySchedule(ctx context.Context, date string) (schedule.Day, bool, error) {
	_ = ctx
	key, err := schedule.NormalizeDate(date)
	if err != nil {
		return schedule.Day{}, false, err
	}
	for _, day := range s.days {
		if day.Date == key {
			return copyDay(day), true, nil
		}
	}
	return schedule.Day{}, false, nil
}

// TeamSchedule returns every event team plays in, in season order.
func (s *FileStore) TeamSchedule(ctx context.Context, team string) ([]schedule.TeamScheduleEntry, error) {
	_ = ctx
	return schedule.FilterTeam(s.days, team), nil
}

// ScheduledDates returns the dates inside r that have at least one event.
func (s *FileStore) ScheduledDates(ctx context.Context, r schedule.DateRange) ([]string, error) {
	_ = ctx
	r, err := r.Normalize()
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, day := range s.days {
		if len(day.Events) == 0 || !r.Contains(day.Date) {
			continue
		}
		out = append(out, day.Date)
	}
	return out, nil
}

// Close is a no-op; the season lives in process memory.
func (s *FileStore) Close() error {
	return nil
}

func copyDay(d schedule.Day) schedule.Day {
	events := make([]schedule.Event, len(d.Events))
	copy(events, d.Events)
	return schedule.Day{Date: d.Date, Events: events}
}
