package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	appschedule "github.com/preston-bernstein/owl-schedule-service/internal/app/schedule"
	appteams "github.com/preston-bernstein/owl-schedule-service/internal/app/teams"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
)

type nowFunc func() time.Time

// Options tunes query deadlines and the zone used for "today".
type Options struct {
	QueryTimeout time.Duration
	Location     *time.Location
}

// Handler wires HTTP routes to the schedule and team services.
type Handler struct {
	schedules *appschedule.Service
	roster    *appteams.Service
	logger    *slog.Logger
	now       nowFunc
	timeout   time.Duration
	loc       *time.Location
}

// NewHandler constructs a Handler with defaults.
func NewHandler(schedules *appschedule.Service, roster *appteams.Service, logger *slog.Logger, opts Options) *Handler {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		schedules: schedules,
		roster:    roster,
		logger:    logger,
		now:       time.Now,
		timeout:   opts.QueryTimeout,
		loc:       loc,
	}
}

type teamsResponse struct {
	Teams []appteams.RosterEntry `json:"teams"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The store is opened before the
// handler exists, so a live request context means ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Teams lists the roster in argument-index order.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, teamsResponse{Teams: h.roster.Roster()}, h.logger)
}

// TeamSchedule returns every event for the team named by the path. The path
// value goes through the same argument rules as the chat command, so indexes,
// short names and "list" all work.
func (h *Handler) TeamSchedule(w http.ResponseWriter, r *http.Request) {
	arg, err := h.roster.Resolve(r.PathValue("team"))
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	if arg.List {
		h.Teams(w, r)
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()
	resp, err := h.schedules.TeamSchedule(ctx, arg.Team.Name)
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served team schedule",
		slog.String(logging.FieldTeam, resp.Team),
		slog.Int(logging.FieldCount, len(resp.Entries)),
	)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Day returns the schedule for the date in the path.
func (h *Handler) Day(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()
	day, err := h.schedules.Day(ctx, r.PathValue("date"))
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, day, h.logger)
}

// Today returns the schedule for the current date in the configured zone,
// or in the zone named by the tz query parameter.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	loc := h.loc
	if tz := strings.TrimSpace(r.URL.Query().Get("tz")); tz != "" {
		parsed, err := time.LoadLocation(tz)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, msgInvalidTimezone, h.logger)
			return
		}
		loc = parsed
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()
	day, err := h.schedules.DayAt(ctx, h.now().In(loc))
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, day, h.logger)
}

// Dates lists scheduled dates between the optional start and end parameters.
func (h *Handler) Dates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx, cancel := h.queryContext(r)
	defer cancel()
	resp, err := h.schedules.ScheduledDates(ctx, schedule.DateRange{Start: q.Get("start"), End: q.Get("end")})
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, resp, h.logger)
}

func (h *Handler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}
