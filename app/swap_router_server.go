package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/chain"
	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/cache"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
	"github.com/charisma-labs/srs/middleware"
	"github.com/charisma-labs/srs/srsutil/datafetchers"
	poolsHttpDelivery "github.com/charisma-labs/srs/pools/delivery/http"
	poolsUseCase "github.com/charisma-labs/srs/pools/usecase"
	routerHttpDelivery "github.com/charisma-labs/srs/router/delivery/http"
	routerUseCase "github.com/charisma-labs/srs/router/usecase"
	systemhttpdelivery "github.com/charisma-labs/srs/system/delivery/http"
	tokenshttpdelivery "github.com/charisma-labs/srs/tokens/delivery/http"
	tokensUseCase "github.com/charisma-labs/srs/tokens/usecase"
	txassemblerHttpDelivery "github.com/charisma-labs/srs/txassembler/delivery/http"
	txassemblerUseCase "github.com/charisma-labs/srs/txassembler/usecase"
)

// SwapRouterServer defines an interface for the swap routing service (SRS).
// It wires the pool registry, the quoting oracle and the routing engine
// together and exposes HTTP endpoints for path finding, pricing and
// transaction assembly.
type SwapRouterServer interface {
	GetPoolsUseCase() mvc.PoolsUsecase
	GetRouterUseCase() mvc.RouterUsecase
	GetTokensUseCase() mvc.TokensUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type swapRouterServer struct {
	poolsUseCase  mvc.PoolsUsecase
	routerUseCase mvc.RouterUsecase
	tokensUseCase mvc.TokensUsecase
	tokenFetcher  *datafetchers.IntervalFetcher[[]domain.Token]
	e             *echo.Echo
	srsAddress    string
	refreshEvery  time.Duration
	logger        log.Logger
}

const (
	// registryFetchTimeout bounds one registry round-trip during refresh.
	registryFetchTimeout = 15 * time.Second

	// defaultPoolRefreshInterval applies when the config omits
	// pool-refresh-interval-secs.
	defaultPoolRefreshInterval = time.Minute

	// defaultTokenRefreshInterval applies when the config omits
	// token-refresh-interval-secs.
	defaultTokenRefreshInterval = 5 * time.Minute
)

// GetPoolsUseCase implements SwapRouterServer.
func (srs *swapRouterServer) GetPoolsUseCase() mvc.PoolsUsecase {
	return srs.poolsUseCase
}

// GetRouterUseCase implements SwapRouterServer.
func (srs *swapRouterServer) GetRouterUseCase() mvc.RouterUsecase {
	return srs.routerUseCase
}

// GetTokensUseCase implements SwapRouterServer.
func (srs *swapRouterServer) GetTokensUseCase() mvc.TokensUsecase {
	return srs.tokensUseCase
}

// GetLogger implements SwapRouterServer.
func (srs *swapRouterServer) GetLogger() log.Logger {
	return srs.logger
}

// Shutdown implements SwapRouterServer.
func (srs *swapRouterServer) Shutdown(ctx context.Context) error {
	srs.tokenFetcher.Close()
	return srs.e.Shutdown(ctx)
}

// Start implements SwapRouterServer.
func (srs *swapRouterServer) Start(ctx context.Context) error {
	go srs.refreshPoolsLoop(ctx)

	srs.logger.Info("Starting swap routing service", zap.String("address", srs.srsAddress))
	err := srs.e.Start(srs.srsAddress)
	if err != nil {
		return err
	}

	return nil
}

// refreshPoolsLoop re-fetches the pool registry on a fixed interval until
// the context is cancelled. A failed refresh keeps the previous snapshot
// serving.
func (srs *swapRouterServer) refreshPoolsLoop(ctx context.Context) {
	ticker := time.NewTicker(srs.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := srs.poolsUseCase.RefreshPools(ctx); err != nil {
				srs.logger.Error("failed to refresh pool registry", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

// NewSwapRouterServer creates a new swap router server (SRS).
func NewSwapRouterServer(ctx context.Context, config domain.Config, logger log.Logger) (SwapRouterServer, error) {
	// Setup echo server
	e := echo.New()
	mw := middleware.New(config.CORS)
	e.Use(mw.CORS)
	e.Use(mw.Instrument)
	e.Use(mw.TraceWithParams("srs"))

	// Initialize pools provider, usecase and the initial graph snapshot.
	poolProvider := poolsUseCase.NewRegistryClient(config.PoolRegistryURL, registryFetchTimeout, logger)
	poolsUseCase := poolsUseCase.NewPoolsUsecase(poolProvider, logger)

	logger.Info("Fetching initial pool registry snapshot", zap.String("registry_url", config.PoolRegistryURL))
	if err := poolsUseCase.RefreshPools(ctx); err != nil {
		return nil, err
	}

	// Load token metadata and initialize the tokens usecase.
	tokens, err := tokensUseCase.LoadTokensFromRegistry(ctx, tokensUseCase.DefaultRegistryHTTPClient(), config.TokenRegistryURL, logger)
	if err != nil {
		return nil, err
	}
	tokensUsecase := tokensUseCase.NewTokensUsecase(tokens, logger)

	// Keep token metadata fresh in the background. A failed refetch keeps
	// the last good set serving.
	tokenRefreshInterval := time.Duration(config.TokenRefreshIntervalSecs) * time.Second
	if tokenRefreshInterval <= 0 {
		tokenRefreshInterval = defaultTokenRefreshInterval
	}
	tokenFetcher := datafetchers.NewIntervalFetcher(func() ([]domain.Token, error) {
		refreshed, err := tokensUseCase.LoadTokensFromRegistry(context.Background(), tokensUseCase.DefaultRegistryHTTPClient(), config.TokenRegistryURL, logger)
		if err != nil {
			return nil, err
		}

		tokensUsecase.UpdateTokens(refreshed)

		return refreshed, nil
	}, tokenRefreshInterval)

	// Quoting oracle client against the chain node.
	quoter := chain.NewQuoterClient(config.ChainNodeEndpoint, time.Duration(config.Router.OracleTimeoutSecs)*time.Second)

	// Pricing cache owned by the composition root and injected into the
	// router usecase.
	pricingCache := cache.NewPricingCache(
		time.Duration(config.Router.PricingCacheTTLSecs)*time.Second,
		config.Router.PricingCacheMaxEntries,
	)

	routerUsecase := routerUseCase.NewRouterUsecase(*config.Router, poolsUseCase, tokensUsecase, quoter, pricingCache, logger)

	poolRefreshInterval := time.Duration(config.PoolRefreshIntervalSecs) * time.Second
	if poolRefreshInterval <= 0 {
		poolRefreshInterval = defaultPoolRefreshInterval
	}

	txAssemblerUsecase := txassemblerUseCase.NewTxAssemblerUsecase(routerUsecase, tokensUsecase, logger)

	// HTTP handlers
	poolsHttpDelivery.NewPoolsHandler(e, poolsUseCase)
	systemhttpdelivery.NewSystemHandler(e, config, logger, poolsUseCase)
	tokenshttpdelivery.NewTokensHandler(e, tokensUsecase, logger)
	routerHttpDelivery.NewRouterHandler(e, routerUsecase, logger)
	txassemblerHttpDelivery.NewTxAssemblerHandler(e, txAssemblerUsecase, logger)

	return &swapRouterServer{
		poolsUseCase:  poolsUseCase,
		routerUseCase: routerUsecase,
		tokensUseCase: tokensUsecase,
		tokenFetcher:  tokenFetcher,
		e:             e,
		srsAddress:    config.ServerAddress,
		refreshEvery:  poolRefreshInterval,
		logger:        logger,
	}, nil
}
