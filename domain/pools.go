package domain

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
)

// Pool represents a single liquidity pool holding reserves of two distinct
// tokens. Storage is direction-agnostic; every query against a pool
// specifies a direction (token0 -> token1 or the reverse).
type Pool struct {
	// ContractID is the on-chain contract reference used when issuing calls
	// against the pool.
	ContractID string `json:"contract_id"`

	Token0 Token `json:"token0"`
	Token1 Token `json:"token1"`

	// Reserve0 and Reserve1 are the current reserves in smallest-unit
	// precision.
	Reserve0 math.Int `json:"reserve0"`
	Reserve1 math.Int `json:"reserve1"`

	// SwapFee is the fee/rebate fraction in [0, 1).
	SwapFee math.LegacyDec `json:"swap_fee"`
}

// Validate returns an error if the pool entry is malformed.
// Registry payloads are loosely typed chain responses; every pool must pass
// validation before entering the graph.
func (p Pool) Validate() error {
	if p.ContractID == "" {
		return fmt.Errorf("pool has empty contract id")
	}
	if err := p.Token0.Validate(); err != nil {
		return fmt.Errorf("pool %s: invalid token0: %w", p.ContractID, err)
	}
	if err := p.Token1.Validate(); err != nil {
		return fmt.Errorf("pool %s: invalid token1: %w", p.ContractID, err)
	}
	if p.Token0.ContractID == p.Token1.ContractID {
		return fmt.Errorf("pool %s references the same token twice (%s)", p.ContractID, p.Token0.ContractID)
	}
	if p.Reserve0.IsNil() || p.Reserve1.IsNil() {
		return fmt.Errorf("pool %s has nil reserves", p.ContractID)
	}
	if p.Reserve0.IsNegative() || p.Reserve1.IsNegative() {
		return fmt.Errorf("pool %s has negative reserves", p.ContractID)
	}
	if p.SwapFee.IsNil() || p.SwapFee.IsNegative() || p.SwapFee.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("pool %s has swap fee outside [0, 1)", p.ContractID)
	}
	return nil
}

// HasToken returns true if the given token contract id is one of the
// pool's two tokens.
func (p Pool) HasToken(tokenContractID string) bool {
	return p.Token0.ContractID == tokenContractID || p.Token1.ContractID == tokenContractID
}

// IsToken0 returns true if the given token contract id is the pool's token0.
func (p Pool) IsToken0(tokenContractID string) bool {
	return p.Token0.ContractID == tokenContractID
}

// OtherToken returns the pool token that is not the given one.
// The second return value is false if the given token is not in the pool.
func (p Pool) OtherToken(tokenContractID string) (Token, bool) {
	switch tokenContractID {
	case p.Token0.ContractID:
		return p.Token1, true
	case p.Token1.ContractID:
		return p.Token0, true
	default:
		return Token{}, false
	}
}

// PoolProvider supplies the current set of liquidity pools.
// Implemented by the pool registry client; the routing engine only
// consumes this read interface.
type PoolProvider interface {
	// ListPools returns the current pool set.
	ListPools(ctx context.Context) ([]Pool, error)
}
