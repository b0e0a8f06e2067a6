package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/owl-schedule-service/internal/args"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/http/middleware"
	"github.com/preston-bernstein/owl-schedule-service/internal/http/requestutil"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
)

const (
	msgInvalidDate     = "invalid date format (expected YYYY-MM-DD)"
	msgDateNotFound    = "no events scheduled on date"
	msgUnavailable     = "schedule data unavailable"
	msgTimeout         = "schedule query timed out"
	msgInvalidTimezone = "invalid timezone"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeQueryError maps argument, date and backend failures onto a status.
// Backend details are logged, never returned.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if vErr, ok := args.AsValidationError(err); ok {
		writeError(w, r, http.StatusBadRequest, vErr.Message, logger)
		return
	}
	switch {
	case errors.Is(err, schedule.ErrDateConversion):
		writeError(w, r, http.StatusBadRequest, msgInvalidDate, logger)
	case errors.Is(err, schedule.ErrDateNotFound):
		writeError(w, r, http.StatusNotFound, msgDateNotFound, logger)
	case errors.Is(err, context.DeadlineExceeded):
		logging.Warn(loggerFromContext(r, logger), "schedule query timed out", "error", err)
		writeError(w, r, http.StatusGatewayTimeout, msgTimeout, logger)
	default:
		logging.Error(loggerFromContext(r, logger), "schedule query failed", err)
		writeError(w, r, http.StatusBadGateway, msgUnavailable, logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
