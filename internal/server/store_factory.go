package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/owl-schedule-service/internal/config"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
	"github.com/preston-bernstein/owl-schedule-service/internal/metrics"
	"github.com/preston-bernstein/owl-schedule-service/internal/store"
	"github.com/preston-bernstein/owl-schedule-service/internal/store/pgstore"
)

// storeFactory opens the backend and wraps it with shared instrumentation.
type storeFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newStoreFactory(logger *slog.Logger, metrics *metrics.Recorder) storeFactory {
	return storeFactory{logger: logger, metrics: metrics}
}

func (f storeFactory) build(ctx context.Context, cfg config.StoreConfig) (schedule.Store, error) {
	base, backend, err := selectStore(ctx, cfg, f.logger)
	if err != nil {
		return nil, err
	}
	if backend == pgstore.BackendName && cfg.RetryAttempts > 1 {
		base = store.NewRetryingStore(base, backend, f.logger, f.metrics, cfg.RetryAttempts, cfg.RetryBackoff)
	}
	logging.Info(f.logger, "schedule store ready", slog.String(logging.FieldBackend, backend))
	return store.NewInstrumentedStore(base, backend, f.logger, f.metrics), nil
}

// OpenStore opens the configured backend for callers outside the server, such
// as the command-line client. The caller owns the store and must Close it.
func OpenStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger, recorder *metrics.Recorder) (schedule.Store, error) {
	return newStoreFactory(logger, recorder).build(ctx, cfg)
}
