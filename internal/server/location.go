package server

import (
	"log/slog"
	"time"

	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
)

// ResolveLocation loads the zone used for "today" lookups. Empty or unknown
// names resolve to UTC.
func ResolveLocation(name string, logger *slog.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logging.Warn(logger, "unknown timezone, using UTC", slog.String("timezone", name), "error", err)
		return time.UTC
	}
	return loc
}
