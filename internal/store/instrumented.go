package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
	"github.com/preston-bernstein/owl-schedule-service/internal/metrics"
)

const (
	opDaySchedule     = "day_schedule"
	opTeamSchedule    = "team_schedule"
	opScheduledDates  = "scheduled_dates"
	fallbackStoreName = "store"
)

// instrumentedStore wraps a schedule.Store with query metrics and failure logging.
type instrumentedStore struct {
	next    schedule.Store
	backend string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedStore decorates next so every query is timed and counted under backend.
func NewInstrumentedStore(next schedule.Store, backend string, logger *slog.Logger, recorder *metrics.Recorder) schedule.Store {
	if backend == "" {
		backend = fallbackStoreName
	}
	return &instrumentedStore{
		next:    next,
		backend: backend,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (s *instrumentedStore) DaySchedule(ctx context.Context, date string) (schedule.Day, bool, error) {
	start := s.now()
	day, ok, err := s.next.DaySchedule(ctx, date)
	outcome := metrics.OutcomeOK
	if !ok {
		outcome = metrics.OutcomeNotFound
	}
	s.observe(ctx, opDaySchedule, outcome, start, err, slog.String(logging.FieldDate, date))
	return day, ok, err
}

func (s *instrumentedStore) TeamSchedule(ctx context.Context, team string) ([]schedule.TeamScheduleEntry, error) {
	start := s.now()
	entries, err := s.next.TeamSchedule(ctx, team)
	s.observe(ctx, opTeamSchedule, metrics.OutcomeOK, start, err, slog.String(logging.FieldTeam, team))
	return entries, err
}

func (s *instrumentedStore) ScheduledDates(ctx context.Context, r schedule.DateRange) ([]string, error) {
	start := s.now()
	dates, err := s.next.ScheduledDates(ctx, r)
	s.observe(ctx, opScheduledDates, metrics.OutcomeOK, start, err,
		slog.String("start", r.Start), slog.String("end", r.End))
	return dates, err
}

func (s *instrumentedStore) Close() error {
	err := s.next.Close()
	if err != nil {
		logging.Error(s.logger, "store close failed", err, slog.String(logging.FieldBackend, s.backend))
	}
	return err
}

func (s *instrumentedStore) observe(ctx context.Context, op, outcome string, start time.Time, err error, attrs ...any) {
	duration := s.now().Sub(start)
	if err != nil {
		outcome = metrics.OutcomeError
	}
	s.metrics.RecordStoreQuery(s.backend, op, outcome, duration, err)

	logger := logging.FromContext(ctx, s.logger)
	args := append([]any{
		slog.String(logging.FieldBackend, s.backend),
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}, attrs...)
	if err != nil {
		logging.Warn(logger, "store query failed", append(args, "error", err)...)
		return
	}
	logging.Debug(logger, "store query", args...)
}
