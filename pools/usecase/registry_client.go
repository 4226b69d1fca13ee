package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/log"
	"github.com/charisma-labs/srs/srsutil/srshttp"
)

// registryTokenPayload is the loosely typed token shape served by the
// pool registry.
type registryTokenPayload struct {
	ContractID string `json:"contract_id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Decimals   int    `json:"decimals"`
}

// registryPoolPayload is the loosely typed pool shape served by the pool
// registry. Amounts arrive as strings in smallest-unit precision.
type registryPoolPayload struct {
	ContractID string               `json:"contract_id"`
	Token0     registryTokenPayload `json:"token0"`
	Token1     registryTokenPayload `json:"token1"`
	Reserve0   string               `json:"reserve0"`
	Reserve1   string               `json:"reserve1"`
	SwapFee    string               `json:"swap_fee"`
}

// toPool parses and validates the payload into a domain pool.
func (p registryPoolPayload) toPool() (domain.Pool, error) {
	reserve0, ok := math.NewIntFromString(p.Reserve0)
	if !ok {
		return domain.Pool{}, fmt.Errorf("pool %s: cannot parse reserve0 %q", p.ContractID, p.Reserve0)
	}

	reserve1, ok := math.NewIntFromString(p.Reserve1)
	if !ok {
		return domain.Pool{}, fmt.Errorf("pool %s: cannot parse reserve1 %q", p.ContractID, p.Reserve1)
	}

	swapFee, err := math.LegacyNewDecFromStr(p.SwapFee)
	if err != nil {
		return domain.Pool{}, fmt.Errorf("pool %s: cannot parse swap fee %q: %w", p.ContractID, p.SwapFee, err)
	}

	pool := domain.Pool{
		ContractID: p.ContractID,
		Token0: domain.Token{
			ContractID: p.Token0.ContractID,
			Symbol:     p.Token0.Symbol,
			Name:       p.Token0.Name,
			Decimals:   p.Token0.Decimals,
		},
		Token1: domain.Token{
			ContractID: p.Token1.ContractID,
			Symbol:     p.Token1.Symbol,
			Name:       p.Token1.Name,
			Decimals:   p.Token1.Decimals,
		},
		Reserve0: reserve0,
		Reserve1: reserve1,
		SwapFee:  swapFee,
	}

	if err := pool.Validate(); err != nil {
		return domain.Pool{}, err
	}

	return pool, nil
}

var _ domain.PoolProvider = &registryClient{}

// registryClient fetches the current pool set from the registry endpoint.
// Malformed entries are skipped with a warning rather than propagated
// into path finding and pricing.
type registryClient struct {
	client      *http.Client
	registryURL string
	logger      log.Logger
}

// NewRegistryClient creates a pool provider reading from the given
// registry URL.
func NewRegistryClient(registryURL string, timeout time.Duration, logger log.Logger) domain.PoolProvider {
	return &registryClient{
		client:      &http.Client{Timeout: timeout},
		registryURL: registryURL,
		logger:      logger,
	}
}

// ListPools implements domain.PoolProvider.
func (r *registryClient) ListPools(ctx context.Context) ([]domain.Pool, error) {
	payloads, err := srshttp.GetWithContext[[]registryPoolPayload](ctx, r.client, r.registryURL, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pool registry: %w", err)
	}

	pools := make([]domain.Pool, 0, len(*payloads))
	for _, payload := range *payloads {
		pool, err := payload.toPool()
		if err != nil {
			r.logger.Warn("skipping malformed pool registry entry", zap.String("pool", payload.ContractID), zap.Error(err))
			continue
		}

		pools = append(pools, pool)
	}

	return pools, nil
}
