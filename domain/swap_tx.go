package domain

import "cosmossdk.io/math"

// GuaranteeBound is the direction of a balance-change guarantee.
type GuaranteeBound string

const (
	// GuaranteeSendAtMost bounds the party to send no more than Amount.
	GuaranteeSendAtMost GuaranteeBound = "send_at_most"
	// GuaranteeSendAtLeast requires the party to send no less than Amount.
	GuaranteeSendAtLeast GuaranteeBound = "send_at_least"
)

// BalanceGuarantee is a single balance-change guarantee attached to the
// swap transaction: a party must send at most/at least the given amount
// of the given token or the whole transaction aborts.
type BalanceGuarantee struct {
	// Party is the address or contract reference the guarantee binds.
	Party string `json:"party"`

	TokenContractID string `json:"token_contract_id"`

	Bound GuaranteeBound `json:"bound"`

	Amount math.Int `json:"amount"`
}

// SwapHopDescriptor is one ordered hop of the final swap call:
// the pool to traverse, the direction, and the amounts quoted at
// build time along with the slippage-floored minimum output.
type SwapHopDescriptor struct {
	PoolContractID string `json:"pool_contract_id"`

	TokenIn  Token `json:"token_in"`
	TokenOut Token `json:"token_out"`

	// ZeroForOne is true when the hop swaps the pool's token0 for token1.
	ZeroForOne bool `json:"zero_for_one"`

	AmountIn  math.Int `json:"amount_in"`
	AmountOut math.Int `json:"amount_out"`

	// MinAmountOut is the slippage floor: floor(AmountOut * (1 - tolerance)).
	MinAmountOut math.Int `json:"min_amount_out"`
}

// SwapTransactionDescriptor is the hand-off data for the external
// transaction builder/signer: the ordered hops, the total input, and the
// ordered balance-change guarantees. This core never submits or signs.
type SwapTransactionDescriptor struct {
	Caller string `json:"caller"`

	Hops []SwapHopDescriptor `json:"hops"`

	// TotalAmountIn is the input amount of the first hop in smallest-unit
	// precision.
	TotalAmountIn math.Int `json:"total_amount_in"`

	// MinAmountOut is the slippage-floored output of the final hop.
	MinAmountOut math.Int `json:"min_amount_out"`

	Guarantees []BalanceGuarantee `json:"guarantees"`
}
