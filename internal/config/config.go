// Package config defines service configuration and loading.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ProviderBaseURL points at the upstream ranking API.
	ProviderBaseURL string `koanf:"provider_base_url"`

	// ProviderTimeoutMS bounds a single upstream request.
	ProviderTimeoutMS int `koanf:"provider_timeout_ms"`

	// ProviderRetries enables transport-level retries against the upstream.
	ProviderRetries int `koanf:"provider_retries"`

	// FetchWorkers bounds concurrent per-country retrievals.
	FetchWorkers int `koanf:"fetch_workers"`

	// CatalogTTLMinutes controls how long the country catalog is cached.
	CatalogTTLMinutes int `koanf:"catalog_ttl_minutes"`

	// CORSOrigins lists allowed browser origins; empty allows all.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":8080",
		ProviderBaseURL:   "https://api.fifa-ranking.local",
		ProviderTimeoutMS: 10_000,
		ProviderRetries:   2,
		FetchWorkers:      8,
		CatalogTTLMinutes: 60,
	}
}
