package config

import (
	"time"

	"github.com/preston-bernstein/owl-schedule-service/internal/dataset"
)

const (
	envPort          = "PORT"
	envTimezone      = "SCHEDULE_TIMEZONE"
	envLogosDir      = "LOGOS_DIR"
	envBackend       = "STORE_BACKEND"
	envDatasetPath   = "SCHEDULE_DATASET_PATH"
	envDatabaseURL   = "DATABASE_URL"
	envSeason        = "SCHEDULE_SEASON"
	envMaxConns      = "DATABASE_MAX_CONNS"
	envQueryTimeout  = "STORE_QUERY_TIMEOUT"
	envRetryAttempts = "STORE_RETRY_ATTEMPTS"
	envRetryBackoff  = "STORE_RETRY_BACKOFF"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envLogFile       = "LOG_FILE"

	defaultPort     = "4000"
	defaultTimezone = "UTC"
	defaultLogosDir = "assets/img/logos"
	defaultBackend  = "file"
	defaultSeason   = dataset.BundledSeason
	defaultMaxConns = 4
	// Queries are single-document or single-table scans; anything slower is an outage.
	defaultQueryTimeout  = 5 * Duration(time.Second)
	defaultRetryAttempts = 1
	defaultRetryBackoff  = 200 * time.Millisecond
	defaultMetricsPort   = "9090"
	defaultServiceName   = "owl-schedule-service"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)
