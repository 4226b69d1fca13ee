package mvc

import (
	"context"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

// TxAssemblerUsecase represent the transaction assembler's usecases.
type TxAssemblerUsecase interface {
	// BuildSwap re-prices the chosen path with the freshest oracle amounts
	// and converts it into the ordered hop descriptors and balance-change
	// guarantees required to submit the swap as a single on-chain call.
	//
	// slippageTolerancePercent is a percentage (0.5 means 0.5%). Unlike the
	// exploratory ranking phase, any pricing or pool resolution failure
	// here is returned as domain.TransactionAssemblyError: assembly must
	// block submission rather than silently degrade.
	BuildSwap(ctx context.Context, pathContractIDs []string, amountInHuman string, slippageTolerancePercent math.LegacyDec, caller string) (domain.SwapTransactionDescriptor, error)

	// MinimumAmountOut applies the slippage floor to a quoted output:
	// floor(amountOut * (1 - tolerance/100)). Never rounds up.
	MinimumAmountOut(amountOut math.Int, slippageTolerancePercent math.LegacyDec) math.Int
}
