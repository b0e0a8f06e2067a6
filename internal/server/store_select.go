package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/owl-schedule-service/internal/config"
	"github.com/preston-bernstein/owl-schedule-service/internal/domain/schedule"
	"github.com/preston-bernstein/owl-schedule-service/internal/logging"
	"github.com/preston-bernstein/owl-schedule-service/internal/store"
	"github.com/preston-bernstein/owl-schedule-service/internal/store/pgstore"
)

var errMissingDatabaseURL = errors.New("postgres backend requires DATABASE_URL")

// openDocumentStore is swapped in tests to avoid a live database.
var openDocumentStore = func(ctx context.Context, cfg pgstore.Config) (schedule.Store, error) {
	s, err := pgstore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// selectStore opens the configured backend and returns it with its label.
// Unknown backends fall back to the file store.
func selectStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (schedule.Store, string, error) {
	backend := normalizeBackendName(cfg.Backend)
	switch backend {
	case store.BackendFile:
		return openFileStore(cfg)
	case pgstore.BackendName:
		if cfg.DatabaseURL == "" {
			return nil, "", errMissingDatabaseURL
		}
		s, err := openDocumentStore(ctx, pgstore.Config{
			URL:      cfg.DatabaseURL,
			Season:   cfg.Season,
			MaxConns: cfg.MaxConns,
		})
		if err != nil {
			return nil, "", err
		}
		return s, pgstore.BackendName, nil
	default:
		logging.Warn(logger, "unknown store backend, falling back to file", slog.String(logging.FieldBackend, cfg.Backend))
		return openFileStore(cfg)
	}
}

func openFileStore(cfg config.StoreConfig) (schedule.Store, string, error) {
	s, err := store.NewFileStore(cfg.DatasetPath)
	if err != nil {
		return nil, "", err
	}
	return s, store.BackendFile, nil
}
