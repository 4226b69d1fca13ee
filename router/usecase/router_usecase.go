package usecase

import (
	"context"
	"strings"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/cache"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/domain/workerpool"
	"github.com/charisma-labs/srs/log"
)

var (
	pricingCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "srs_pricing_cache_hits_total",
			Help: "Total number of pricing cache hits",
		},
	)
	pricingCacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "srs_pricing_cache_misses_total",
			Help: "Total number of pricing cache misses",
		},
	)
	pricedPathsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "srs_priced_paths_failed_total",
			Help: "Total number of candidate paths that failed pricing",
		},
	)
)

func init() {
	prometheus.MustRegister(pricingCacheHits)
	prometheus.MustRegister(pricingCacheMisses)
	prometheus.MustRegister(pricedPathsFailed)
}

type routerUseCase struct {
	config domain.RouterConfig

	poolsUsecase  mvc.PoolsUsecase
	tokensUsecase mvc.TokensUsecase
	quoter        domain.Quoter
	pricingCache  *cache.PricingCache

	logger log.Logger
}

var _ mvc.RouterUsecase = &routerUseCase{}

// NewRouterUsecase creates a new router usecase.
func NewRouterUsecase(config domain.RouterConfig, poolsUsecase mvc.PoolsUsecase, tokensUsecase mvc.TokensUsecase, quoter domain.Quoter, pricingCache *cache.PricingCache, logger log.Logger) mvc.RouterUsecase {
	// A zero or negative worker count would start no pricing workers and
	// the fan-out would never reach the oracle.
	if config.MaxOracleConcurrency < 1 {
		config.MaxOracleConcurrency = domain.DefaultRouterConfig.MaxOracleConcurrency
	}
	return &routerUseCase{
		config:        config,
		poolsUsecase:  poolsUsecase,
		tokensUsecase: tokensUsecase,
		quoter:        quoter,
		pricingCache:  pricingCache,
		logger:        logger,
	}
}

// indexedPricedPath carries the candidate's enumeration index through the
// worker pool so that ranking can tie-break deterministically even though
// results arrive in completion order.
type indexedPricedPath struct {
	index  int
	priced domain.PricedPath
}

// GetBestPath implements mvc.RouterUsecase.
func (r *routerUseCase) GetBestPath(ctx context.Context, tokenInContractID, tokenOutContractID string, amountInHuman string, allowExtendedHops bool) (domain.BestPathResult, error) {
	amountIn, err := r.tokensUsecase.ChainAmount(amountInHuman, tokenInContractID)
	if err != nil {
		return domain.BestPathResult{}, err
	}
	if !amountIn.IsPositive() {
		return domain.BestPathResult{}, domain.ErrBadParamInput
	}

	paths, err := r.FindCandidatePaths(ctx, tokenInContractID, tokenOutContractID, allowExtendedHops)
	if err != nil {
		return domain.BestPathResult{}, err
	}

	// No route is a normal outcome, not an error.
	if len(paths) == 0 {
		return domain.BestPathResult{}, nil
	}

	// With a single candidate there is nothing to rank, so the oracle
	// round-trips are skipped entirely.
	if len(paths) == 1 {
		return domain.BestPathResult{
			Path:             paths[0],
			AmountOut:        math.ZeroInt(),
			PricingConfirmed: false,
		}, nil
	}

	results := r.priceCandidates(ctx, amountIn, paths)

	best := domain.BestPathResult{AmountOut: math.ZeroInt()}
	for i, priced := range results {
		if !priced.IsPriced() {
			pricedPathsFailed.Inc()
			r.logger.Warn("candidate path failed pricing",
				zap.String("path", paths[i].String()),
				zap.Error(priced.Err),
			)
			continue
		}

		// Strictly greater, so the earliest enumerated candidate wins ties.
		if best.Path == nil || priced.AmountOut.GT(best.AmountOut) {
			best = domain.BestPathResult{
				Path:             priced.Path,
				Quotes:           priced.Quotes,
				AmountOut:        priced.AmountOut,
				PricingConfirmed: true,
			}
		}
	}

	// Degraded mode: every candidate failed to price. Returning the first
	// candidate unconfirmed keeps the route discoverable while the caller
	// decides whether to proceed without a quote.
	if best.Path == nil {
		r.logger.Warn("all candidate paths failed pricing, falling back to first candidate",
			zap.String("token_in", tokenInContractID),
			zap.String("token_out", tokenOutContractID),
		)
		return domain.BestPathResult{
			Path:             paths[0],
			AmountOut:        math.ZeroInt(),
			PricingConfirmed: false,
		}, nil
	}

	return best, nil
}

// priceCandidates fans the candidates out to the pricing workers and
// collects the results back into enumeration order.
func (r *routerUseCase) priceCandidates(ctx context.Context, amountIn math.Int, paths []domain.CandidatePath) []domain.PricedPath {
	graph := r.poolsUsecase.GetGraph()

	dispatcher := workerpool.NewDispatcher[indexedPricedPath](r.config.MaxOracleConcurrency)
	go dispatcher.Run()
	defer dispatcher.Stop()

	go func() {
		for i, path := range paths {
			dispatcher.JobQueue <- workerpool.Job[indexedPricedPath]{
				Task: func() (indexedPricedPath, error) {
					return indexedPricedPath{
						index:  i,
						priced: r.priceCached(ctx, graph, amountIn, path),
					}, nil
				},
			}
		}
	}()

	results := make([]domain.PricedPath, len(paths))
	for range paths {
		jobResult := <-dispatcher.ResultQueue
		results[jobResult.Result.index] = jobResult.Result.priced
	}

	return results
}

// priceCached prices one path through the pricing cache. Failures are
// carried in the result, never cached, so a transient oracle outage heals
// on the next attempt.
func (r *routerUseCase) priceCached(ctx context.Context, graph *domain.SwapGraph, amountIn math.Int, path domain.CandidatePath) domain.PricedPath {
	key := pricingCacheKey(amountIn, path)

	if _, ok := r.pricingCache.Get(key); ok {
		pricingCacheHits.Inc()
	} else {
		pricingCacheMisses.Inc()
	}

	value, err := r.pricingCache.GetOrCompute(key, func() (interface{}, error) {
		return pricePath(ctx, graph, r.quoter, amountIn, path)
	})
	if err != nil {
		return domain.PricedPath{Path: path, Err: err}
	}

	quotes := value.([]domain.HopQuote)

	return domain.PricedPath{
		Path:      path,
		Quotes:    quotes,
		AmountOut: quotes[len(quotes)-1].AmountOut,
	}
}

// pricingCacheKey identifies a pricing result by the exact input amount and
// the full token sequence of the path.
func pricingCacheKey(amountIn math.Int, path domain.CandidatePath) string {
	return amountIn.String() + "|" + strings.Join(path.ContractIDs(), ",")
}

// FindCandidatePaths implements mvc.RouterUsecase.
func (r *routerUseCase) FindCandidatePaths(ctx context.Context, tokenInContractID, tokenOutContractID string, allowExtendedHops bool) ([]domain.CandidatePath, error) {
	maxHops := r.config.MaxHops
	if allowExtendedHops {
		maxHops = r.config.MaxExtendedHops
	}

	graph := r.poolsUsecase.GetGraph()

	return findAllPaths(graph, tokenInContractID, tokenOutContractID, maxHops), nil
}

// IsTokenPairSupported implements mvc.RouterUsecase.
func (r *routerUseCase) IsTokenPairSupported(ctx context.Context, tokenAContractID, tokenBContractID string) (bool, error) {
	graph := r.poolsUsecase.GetGraph()

	if _, ok := graph.GetDirectPool(tokenAContractID, tokenBContractID); ok {
		return true, nil
	}

	return findPath(graph, tokenAContractID, tokenBContractID, r.config.MaxExtendedHops) != nil, nil
}

// PricePath implements mvc.RouterUsecase. Pricing here always goes to the
// oracle; transaction assembly must never reuse a stale exploratory quote.
func (r *routerUseCase) PricePath(ctx context.Context, amountIn math.Int, path domain.CandidatePath) ([]domain.HopQuote, error) {
	return pricePath(ctx, r.poolsUsecase.GetGraph(), r.quoter, amountIn, path)
}

// ClearPricingCache implements mvc.RouterUsecase.
func (r *routerUseCase) ClearPricingCache() {
	r.pricingCache.Clear()
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCase) GetConfig() domain.RouterConfig {
	return r.config
}
