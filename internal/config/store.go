package config

import "time"

// StoreConfig selects and locates the schedule backend.
type StoreConfig struct {
	// Backend is "file" or "postgres".
	Backend      string
	DatasetPath  string
	DatabaseURL  string
	Season       string
	MaxConns     int
	QueryTimeout time.Duration
	// RetryAttempts and RetryBackoff apply to the document store only.
	RetryAttempts int
	RetryBackoff  time.Duration
}

func loadStore() StoreConfig {
	return StoreConfig{
		Backend:       envOrDefault(envBackend, defaultBackend),
		DatasetPath:   envOrDefault(envDatasetPath, ""),
		DatabaseURL:   envOrDefault(envDatabaseURL, ""),
		Season:        envOrDefault(envSeason, defaultSeason),
		MaxConns:      intEnvOrDefault(envMaxConns, defaultMaxConns),
		QueryTimeout:  durationEnvOrDefault(envQueryTimeout, defaultQueryTimeout),
		RetryAttempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		RetryBackoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
