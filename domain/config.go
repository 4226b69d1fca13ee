package domain

// Config defines the config for the swap routing service.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// ChainNodeEndpoint is the base URL of the node exposing the read-only
	// quoting oracle.
	ChainNodeEndpoint string `mapstructure:"chain-node-endpoint"`

	// PoolRegistryURL is the endpoint serving the current pool set.
	PoolRegistryURL string `mapstructure:"pool-registry-url"`

	// TokenRegistryURL is the endpoint serving the token metadata list.
	TokenRegistryURL string `mapstructure:"token-registry-url"`

	// PoolRefreshIntervalSecs is how often the pool registry is re-fetched
	// and the routing graph rebuilt.
	PoolRefreshIntervalSecs int `mapstructure:"pool-refresh-interval-secs"`

	// TokenRefreshIntervalSecs is how often the token metadata list is
	// re-fetched. Metadata changes rarely, so this is typically much
	// longer than the pool refresh interval.
	TokenRefreshIntervalSecs int `mapstructure:"token-refresh-interval-secs"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// RouterConfig defines the config for the routing engine.
type RouterConfig struct {
	// MaxHops is the hop cap for callers without extended-hop eligibility.
	MaxHops int `mapstructure:"max-hops"`

	// MaxExtendedHops is the hop cap for qualifying callers. Every extra
	// hop multiplies the number of oracle calls needed to price a path, so
	// the cap trades route optimality for bounded latency.
	MaxExtendedHops int `mapstructure:"max-extended-hops"`

	// OracleTimeoutSecs bounds a single oracle quoting call so that one
	// hung candidate path cannot stall the pricing fan-in indefinitely.
	OracleTimeoutSecs int `mapstructure:"oracle-timeout-secs"`

	// MaxOracleConcurrency is the number of workers pricing candidate
	// paths concurrently.
	MaxOracleConcurrency int `mapstructure:"max-oracle-concurrency"`

	// PricingCacheTTLSecs is the time-to-live of a pricing cache entry.
	PricingCacheTTLSecs int `mapstructure:"pricing-cache-ttl-secs"`

	// PricingCacheMaxEntries is the entry-count ceiling past which expired
	// entries are swept on insert.
	PricingCacheMaxEntries int `mapstructure:"pricing-cache-max-entries"`
}

// CORSConfig defines the CORS headers set on every response.
type CORSConfig struct {
	AllowedOrigin  string `mapstructure:"allowed-origin"`
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
}

// OTELConfig defines the Sentry/OTEL reporting configuration.
type OTELConfig struct {
	// DSN is the Sentry DSN. Empty disables reporting.
	DSN string `mapstructure:"dsn"`

	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	TracesSampleRate   float64 `mapstructure:"traces-sample-rate"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
}

// DefaultRouterConfig holds the policy values observed in production.
var DefaultRouterConfig = RouterConfig{
	MaxHops:                2,
	MaxExtendedHops:        4,
	OracleTimeoutSecs:      5,
	MaxOracleConcurrency:   10,
	PricingCacheTTLSecs:    30,
	PricingCacheMaxEntries: 100,
}
