package metrics

import (
	"sync"
	"time"
)

type backendStats struct {
	queries         int
	errors          int
	notFound        int
	retries         int
	lastLatency     time.Duration
	lastOperation   string
	lastErrorReason string
}

// Recorder captures lightweight, in-memory metrics about store queries and
// forwards them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*backendStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*backendStats),
		otel:  otel,
	}
}

// RecordStoreQuery counts one query against a backend and stores its latency.
// outcome is one of OutcomeOK, OutcomeNotFound or OutcomeError.
func (r *Recorder) RecordStoreQuery(backend, operation, outcome string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsFor(backend)
	stats.queries++
	stats.lastLatency = duration
	stats.lastOperation = operation
	switch {
	case err != nil:
		stats.errors++
		stats.lastErrorReason = err.Error()
	case outcome == OutcomeNotFound:
		stats.notFound++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreQuery(backend, operation, outcome, duration, err)
	}
}

// RecordStoreRetry counts one retried attempt of operation against a backend.
func (r *Recorder) RecordStoreRetry(backend, operation string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.statsFor(backend).retries++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStoreRetry(backend, operation)
	}
}

// statsFor must be called with r.mu held.
func (r *Recorder) statsFor(backend string) *backendStats {
	stats, ok := r.stats[backend]
	if !ok {
		stats = &backendStats{}
		r.stats[backend] = stats
	}
	return stats
}

// Queries returns the total queries recorded for a backend.
func (r *Recorder) Queries(backend string) int {
	return r.Snapshot(backend).Queries
}

// QueryErrors returns the failed queries recorded for a backend.
func (r *Recorder) QueryErrors(backend string) int {
	return r.Snapshot(backend).Errors
}

// Snapshot returns a copy of the current stats for a backend.
type Snapshot struct {
	Queries         int
	Errors          int
	NotFound        int
	Retries         int
	LastLatency     time.Duration
	LastOperation   string
	LastErrorReason string
}

func (r *Recorder) Snapshot(backend string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[backend]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Queries:         stats.queries,
		Errors:          stats.errors,
		NotFound:        stats.notFound,
		Retries:         stats.retries,
		LastLatency:     stats.lastLatency,
		LastOperation:   stats.lastOperation,
		LastErrorReason: stats.lastErrorReason,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
