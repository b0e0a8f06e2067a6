package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrDateNotFound means no day in the season matches the requested date.
	ErrDateNotFound = errors.New("no events scheduled on date")
	// ErrDateConversion means a date input could not be turned into a YYYY-MM-DD key.
	ErrDateConversion = errors.New("invalid date")
	// ErrBackendUnavailable wraps connection and query failures from a store backend.
	ErrBackendUnavailable = errors.New("schedule backend unavailable")
)

// BackendError wraps err so it matches ErrBackendUnavailable while keeping
// the underlying cause inspectable.
func BackendError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, op, err)
}

func conversionError(value string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrDateConversion, value, err)
}
