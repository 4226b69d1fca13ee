package main

import (
	"github.com/charisma-labs/srs/domain"
)

// DefaultConfig defines the default config for the swap routing service.
var DefaultConfig = domain.Config{
	ServerAddress: ":9092",

	LoggerFilename:     "srs.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainNodeEndpoint: "http://localhost:3999",
	PoolRegistryURL:   "http://localhost:3999/v2/amm/pools",
	TokenRegistryURL:  "http://localhost:3999/v2/amm",

	PoolRefreshIntervalSecs:  60,
	TokenRefreshIntervalSecs: 300,

	Router: &domain.RouterConfig{
		MaxHops:                2,
		MaxExtendedHops:        4,
		OracleTimeoutSecs:      5,
		MaxOracleConcurrency:   10,
		PricingCacheTTLSecs:    30,
		PricingCacheMaxEntries: 100,
	},

	CORS: &domain.CORSConfig{
		AllowedOrigin:  "*",
		AllowedHeaders: "Origin, X-Requested-With, Content-Type, Accept",
		AllowedMethods: "GET, POST, OPTIONS",
	},
}
