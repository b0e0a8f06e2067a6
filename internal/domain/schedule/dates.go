package schedule

import (
	"time"

	"github.com/preston-bernstein/owl-schedule-service/internal/timeutil"
)

// NormalizeDate validates a YYYY-MM-DD date string and returns its canonical form.
func NormalizeDate(value string) (string, error) {
	key, err := timeutil.NormalizeDate(value)
	if err != nil {
		return "", conversionError(value, err)
	}
	return key, nil
}

// DateOf converts a time into the YYYY-MM-DD key of its calendar date.
func DateOf(t time.Time) (string, error) {
	key, err := timeutil.DateKey(t)
	if err != nil {
		return "", conversionError(t.String(), err)
	}
	return key, nil
}

// DateRange bounds a scheduled-dates lookup. Empty Start or End leaves that
// side open; both bounds are inclusive.
type DateRange struct {
	Start string
	End   string
}

// Normalize validates every non-empty bound.
func (r DateRange) Normalize() (DateRange, error) {
	out := DateRange{}
	if r.Start != "" {
		start, err := NormalizeDate(r.Start)
		if err != nil {
			return DateRange{}, err
		}
		out.Start = start
	}
	if r.End != "" {
		end, err := NormalizeDate(r.End)
		if err != nil {
			return DateRange{}, err
		}
		out.End = end
	}
	return out, nil
}

// Contains reports whether date falls inside the range. ISO dates compare
// correctly as strings.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}
