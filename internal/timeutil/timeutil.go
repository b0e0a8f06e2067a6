package timeutil

import (
	"errors"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrZeroTime is returned when a zero time.Time is converted to a date key.
var ErrZeroTime = errors.New("zero time has no calendar date")

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate trims the value and confirms it is a zero-padded YYYY-MM-DD date.
// The returned string is the canonical key used by schedule data.
func NormalizeDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := ParseDate(trimmed)
	if err != nil {
		return "", err
	}
	return FormatDate(parsed), nil
}

// DateKey converts a time into the canonical YYYY-MM-DD key using the calendar
// date of the value's own location.
func DateKey(t time.Time) (string, error) {
	if t.IsZero() {
		return "", ErrZeroTime
	}
	return FormatDate(t), nil
}
