package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
)

const (
	msgInvalidDate  = "invalid date format (expected YYYY-MM-DD)"
	msgDateNotFound = "no events scheduled on date"
	msgUnavailable  = "schedule data unavailable"
	msgTimeout      = "schedule query timed out"
)

// storeFailure marks an error raised while opening, querying or closing the
// schedule store that is not a lookup outcome the user can act on.
type storeFailure struct {
	err error
}

func (e *storeFailure) Error() string { return e.err.Error() }
func (e *storeFailure) Unwrap() error { return e.err }

func markStoreFailure(err error) error {
	if err == nil || isQueryOutcome(err) {
		return err
	}
	var sf *storeFailure
	if errors.As(err, &sf) {
		return err
	}
	return &storeFailure{err: err}
}

func isQueryOutcome(err error) bool {
	if _, ok := args.AsValidationError(err); ok {
		return true
	}
	return errors.Is(err, schedule.ErrDateConversion) ||
		errors.Is(err, schedule.ErrDateNotFound) ||
		errors.Is(err, context.DeadlineExceeded)
}

// UserMessage renders err the way owlctl prints it. Store failures collapse
// to a generic message; their cause belongs in the log.
func UserMessage(err error) string {
	if vErr, ok := args.AsValidationError(err); ok {
		return vErr.Message
	}
	var sf *storeFailure
	switch {
	case errors.Is(err, schedule.ErrDateConversion):
		return msgInvalidDate
	case errors.Is(err, schedule.ErrDateNotFound):
		return msgDateNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return msgTimeout
	case errors.As(err, &sf):
		return msgUnavailable
	default:
		return err.Error()
	}
}

// Report logs the cause of store failures and timeouts and writes the user
// message to w.
func Report(w io.Writer, logger *slog.Logger, err error) {
	if err == nil {
		return
	}
	var sf *storeFailure
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logging.Warn(logger, "schedule query timed out", "error", err)
	case errors.As(err, &sf):
		logging.Error(logger, "schedule query failed", err)
	}
	fmt.Fprintln(w, "Error:", UserMessage(err))
}
