package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/owl-schedule-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Method-qualified patterns
// give 405 responses for other verbs.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /ready", handler.Ready)
	mux.HandleFunc("GET /teams", handler.Teams)
	mux.HandleFunc("GET /teams/{team}/schedule", handler.TeamSchedule)
	mux.HandleFunc("GET /schedule/today", handler.Today)
	mux.HandleFunc("GET /schedule/{date}", handler.Day)
	mux.HandleFunc("GET /dates", handler.Dates)
	return mux
}
