package mvc

import (
	"context"

	"github.com/charisma-labs/srs/domain"
)

// PoolsUsecase represent the pool area's usecases.
type PoolsUsecase interface {
	// RefreshPools re-fetches the pool registry, validates the entries and
	// atomically replaces the routing graph snapshot. Malformed registry
	// entries are skipped, not propagated.
	RefreshPools(ctx context.Context) error

	// GetGraph returns the current routing graph snapshot. The snapshot is
	// immutable; a refresh replaces it wholesale.
	GetGraph() *domain.SwapGraph

	// GetAllPools returns the validated pools of the current snapshot.
	GetAllPools() []domain.Pool

	// GetDirectPool returns the pool directly connecting the two tokens.
	// Returns domain.PoolNotFoundError if no such pool exists.
	GetDirectPool(tokenAContractID, tokenBContractID string) (domain.Pool, error)
}
