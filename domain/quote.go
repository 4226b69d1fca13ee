package domain

import (
	"context"

	"cosmossdk.io/math"
)

// QuoteResult is the outcome of a single oracle quoting call.
type QuoteResult struct {
	// AmountOut is the exact output amount in smallest-unit precision.
	AmountOut math.Int `json:"amount_out"`
	// FeeAmount is the fee taken by the pool, in units of the input token.
	FeeAmount math.Int `json:"fee_amount"`
}

// Quoter is the on-chain quoting oracle: given a pool, a direction and an
// input amount it returns the exact output amount and fee taken.
// The call is read-only and idempotent; it is authoritative over any
// off-chain estimate. Implementations must respect context cancellation
// and impose a per-call timeout.
type Quoter interface {
	// QuoteExactIn quotes a swap of amountIn through the pool.
	// zeroForOne is true when swapping token0 for token1.
	QuoteExactIn(ctx context.Context, pool Pool, zeroForOne bool, amountIn math.Int) (QuoteResult, error)
}

// HopQuote is the priced traversal of one pool as part of a path.
// Immutable once computed. For a sequence of hop quotes along a path,
// hop[i].AmountOut equals hop[i+1].AmountIn for every i.
type HopQuote struct {
	// PoolContractID references the pool traversed by this hop.
	PoolContractID string `json:"pool_contract_id"`

	TokenIn  Token `json:"token_in"`
	TokenOut Token `json:"token_out"`

	// ZeroForOne is true when the hop swaps the pool's token0 for token1.
	ZeroForOne bool `json:"zero_for_one"`

	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`
	FeeAmount math.Int `json:"fee_amount"`
}

// PricedPath is the tagged outcome of pricing one candidate path.
// Either Quotes/AmountOut are set (Err == nil) or Err explains the
// failure. A legitimately zero-output quote is distinguishable from a
// pricing failure.
type PricedPath struct {
	Path      CandidatePath
	Quotes    []HopQuote
	AmountOut math.Int
	Err       error
}

// IsPriced returns true if pricing succeeded.
func (p PricedPath) IsPriced() bool {
	return p.Err == nil
}

// BestPathResult is the outcome of best-path selection.
type BestPathResult struct {
	// Path is the selected candidate path. Nil when no route exists.
	Path CandidatePath `json:"path"`

	// Quotes holds the per-hop breakdown when the path was priced.
	// Empty when PricingConfirmed is false.
	Quotes []HopQuote `json:"quotes,omitempty"`

	// AmountOut is the final output amount of the selected path.
	// Zero when PricingConfirmed is false.
	AmountOut math.Int `json:"amount_out"`

	// PricingConfirmed is false when the path was returned without live
	// pricing: either it was the only candidate, or every candidate
	// failed pricing and the first enumerated path was returned as a
	// fallback. Callers must treat amounts as unconfirmed until the
	// transaction build step re-prices the path.
	PricingConfirmed bool `json:"pricing_confirmed"`
}
