package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
	"github.com/preston-bernstein/owl-schedule-service/internal/metrics"
)

const (
	defaultRetryAttempts = 1
	defaultRetryBackoff  = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingStore re-runs queries that fail with schedule.ErrBackendUnavailable.
// Not-found and malformed-date outcomes are returned on the first attempt.
type retryingStore struct {
	next        schedule.Store
	backend     string
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingStore wraps next with linear backoff retries, counting each retry
// under backend. Non-positive maxAttempts or backoff select the defaults; a
// single attempt surfaces the first failure unchanged.
func NewRetryingStore(next schedule.Store, backend string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) schedule.Store {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultRetryBackoff
	}
	return &retryingStore{
		next:        next,
		backend:     backend,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingStore) DaySchedule(ctx context.Context, date string) (schedule.Day, bool, error) {
	var (
		day schedule.Day
		ok  bool
	)
	err := r.do(ctx, opDaySchedule, func() error {
		var err error
		day, ok, err = r.next.DaySchedule(ctx, date)
		return err
	})
	return day, ok, err
}

func (r *retryingStore) TeamSchedule(ctx context.Context, team string) ([]schedule.TeamScheduleEntry, error) {
	var entries []schedule.TeamScheduleEntry
	err := r.do(ctx, opTeamSchedule, func() error {
		var err error
		entries, err = r.next.TeamSchedule(ctx, team)
		return err
	})
	return entries, err
}

func (r *retryingStore) ScheduledDates(ctx context.Context, rng schedule.DateRange) ([]string, error) {
	var dates []string
	err := r.do(ctx, opScheduledDates, func() error {
		var err error
		dates, err = r.next.ScheduledDates(ctx, rng)
		return err
	})
	return dates, err
}

func (r *retryingStore) Close() error {
	return r.next.Close()
}

func (r *retryingStore) do(ctx context.Context, op string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := call()
		if err == nil || !errors.Is(err, schedule.ErrBackendUnavailable) {
			return err
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.metrics.RecordStoreRetry(r.backend, op)
		r.logWarn(ctx, "store query retry",
			slog.String(logging.FieldBackend, r.backend),
			slog.String(logging.FieldOperation, op),
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", r.maxAttempts),
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}
	return lastErr
}

func (r *retryingStore) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}
