package usecase

import (
	"context"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

var _ mvc.PoolsUsecase = &poolsUseCase{}

type poolsUseCase struct {
	poolProvider domain.PoolProvider
	logger       log.Logger

	// graph and pools hold the current snapshot. Readers never observe a
	// partially rebuilt graph: a refresh constructs a new graph wholesale
	// and swaps the pointer.
	graph atomic.Pointer[domain.SwapGraph]
	pools atomic.Pointer[[]domain.Pool]
}

var (
	poolsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "srs_pools_total",
			Help: "Number of valid pools in the current registry snapshot",
		},
	)
	graphTokensTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "srs_graph_tokens_total",
			Help: "Number of tokens in the current routing graph",
		},
	)
)

func init() {
	prometheus.MustRegister(poolsTotal)
	prometheus.MustRegister(graphTokensTotal)
}

// NewPoolsUsecase will create a new pools use case object.
// The initial snapshot is empty until the first refresh.
func NewPoolsUsecase(poolProvider domain.PoolProvider, logger log.Logger) mvc.PoolsUsecase {
	uc := &poolsUseCase{
		poolProvider: poolProvider,
		logger:       logger,
	}

	uc.graph.Store(domain.NewSwapGraph(nil))
	uc.pools.Store(&[]domain.Pool{})

	return uc
}

// RefreshPools implements mvc.PoolsUsecase.
func (p *poolsUseCase) RefreshPools(ctx context.Context) error {
	pools, err := p.poolProvider.ListPools(ctx)
	if err != nil {
		return err
	}

	graph := domain.NewSwapGraph(pools)

	p.pools.Store(&pools)
	p.graph.Store(graph)

	poolsTotal.Set(float64(len(pools)))
	graphTokensTotal.Set(float64(graph.NumTokens()))

	p.logger.Info("rebuilt routing graph",
		zap.Int("num_pools", len(pools)),
		zap.Int("num_tokens", graph.NumTokens()),
	)

	return nil
}

// GetGraph implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetGraph() *domain.SwapGraph {
	return p.graph.Load()
}

// GetAllPools implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetAllPools() []domain.Pool {
	return *p.pools.Load()
}

// GetDirectPool implements mvc.PoolsUsecase.
func (p *poolsUseCase) GetDirectPool(tokenAContractID, tokenBContractID string) (domain.Pool, error) {
	pool, ok := p.GetGraph().GetDirectPool(tokenAContractID, tokenBContractID)
	if !ok {
		return domain.Pool{}, domain.PoolNotFoundError{
			TokenInContractID:  tokenAContractID,
			TokenOutContractID: tokenBContractID,
		}
	}
	return pool, nil
}
