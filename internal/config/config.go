package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port     string
	Timezone string
	LogosDir string
	Store    StoreConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Timezone: envOrDefault(envTimezone, defaultTimezone),
		LogosDir: envOrDefault(envLogosDir, defaultLogosDir),
		Store:    loadStore(),
		Metrics:  loadMetrics(),
		Log:      loadLog(),
	}
}
