package schedule

import "context"

// Store is the read contract every schedule backend implements.
//
// DaySchedule returns false when no day matches. TeamSchedule returns an
// empty slice for teams that play no events. ScheduledDates returns distinct
// dates in ascending order. Close releases backend resources and must be
// called exactly once by the owner.
//
// ctx bounds backend round trips. Backends that answer from memory, such as
// the file store, ignore it, so deadlines only apply to remote backends.
type Store interface {
	DaySchedule(ctx context.Context, date string) (Day, bool, error)
	TeamSchedule(ctx context.Context, team string) ([]TeamScheduleEntry, error)
	ScheduledDates(ctx context.Context, r DateRange) ([]string, error)
	Close() error
}
