package usecase

import (
	"context"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

// pricePath walks the path hop by hop, feeding each hop's quoted output
// into the next hop's input. Hops are sequential by nature; only whole
// paths are priced concurrently.
//
// Any failure aborts the walk with no partial result: a path either prices
// fully or not at all. Missing pools surface as domain.PoolNotFoundError,
// oracle failures as domain.OracleQueryError.
func pricePath(ctx context.Context, graph *domain.SwapGraph, quoter domain.Quoter, amountIn math.Int, path domain.CandidatePath) ([]domain.HopQuote, error) {
	quotes := make([]domain.HopQuote, 0, path.NumHops())

	hopAmountIn := amountIn
	for i := 0; i < len(path)-1; i++ {
		tokenIn := path[i]
		tokenOut := path[i+1]

		pool, ok := graph.GetDirectPool(tokenIn.ContractID, tokenOut.ContractID)
		if !ok {
			return nil, domain.PoolNotFoundError{
				TokenInContractID:  tokenIn.ContractID,
				TokenOutContractID: tokenOut.ContractID,
			}
		}

		zeroForOne := pool.IsToken0(tokenIn.ContractID)

		result, err := quoter.QuoteExactIn(ctx, pool, zeroForOne, hopAmountIn)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, domain.HopQuote{
			PoolContractID: pool.ContractID,
			TokenIn:        tokenIn,
			TokenOut:       tokenOut,
			ZeroForOne:     zeroForOne,
			AmountIn:       hopAmountIn,
			AmountOut:      result.AmountOut,
			FeeAmount:      result.FeeAmount,
		})

		hopAmountIn = result.AmountOut
	}

	return quotes, nil
}
