package mvc

import (
	"context"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

// RouterUsecase represent the router's usecases.
type RouterUsecase interface {
	// GetBestPath finds all candidate paths between the given tokens,
	// prices them concurrently through the pricing cache, and returns the
	// path with the maximum final output.
	//
	// A zero-value result with a nil Path means no route exists; that is a
	// normal outcome, not an error. When exactly one candidate exists it
	// is returned without pricing. When every candidate fails pricing, the
	// first enumerated candidate is returned with PricingConfirmed false.
	GetBestPath(ctx context.Context, tokenInContractID, tokenOutContractID string, amountInHuman string, allowExtendedHops bool) (domain.BestPathResult, error)

	// FindCandidatePaths returns all candidate paths between the given
	// tokens, shortest first. allowExtendedHops raises the hop cap for
	// qualifying callers.
	FindCandidatePaths(ctx context.Context, tokenInContractID, tokenOutContractID string, allowExtendedHops bool) ([]domain.CandidatePath, error)

	// IsTokenPairSupported returns true if the pair is swappable at all:
	// either a direct pool exists or some path connects the two tokens.
	IsTokenPairSupported(ctx context.Context, tokenAContractID, tokenBContractID string) (bool, error)

	// PricePath prices the given path hop by hop against the quoting
	// oracle, bypassing the pricing cache. Used for the authoritative
	// re-pricing at transaction build time.
	PricePath(ctx context.Context, amountIn math.Int, path domain.CandidatePath) ([]domain.HopQuote, error)

	// ClearPricingCache drops every cached pricing result. Exposed for
	// forced invalidation after a known reserve-changing event.
	ClearPricingCache()

	// GetConfig returns the router configuration.
	GetConfig() domain.RouterConfig
}
