package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
)

var _ mvc.TxAssemblerUsecase = &TxAssemblerUsecaseMock{}

// TxAssemblerUsecaseMock is a mock implementation of the mvc.TxAssemblerUsecase interface.
type TxAssemblerUsecaseMock struct {
	BuildSwapFunc        func(ctx context.Context, pathContractIDs []string, amountInHuman string, slippageTolerancePercent math.LegacyDec, caller string) (domain.SwapTransactionDescriptor, error)
	MinimumAmountOutFunc func(amountOut math.Int, slippageTolerancePercent math.LegacyDec) math.Int
}

// BuildSwap implements mvc.TxAssemblerUsecase.
func (m *TxAssemblerUsecaseMock) BuildSwap(ctx context.Context, pathContractIDs []string, amountInHuman string, slippageTolerancePercent math.LegacyDec, caller string) (domain.SwapTransactionDescriptor, error) {
	if m.BuildSwapFunc != nil {
		return m.BuildSwapFunc(ctx, pathContractIDs, amountInHuman, slippageTolerancePercent, caller)
	}
	panic("unimplemented")
}

// MinimumAmountOut implements mvc.TxAssemblerUsecase.
func (m *TxAssemblerUsecaseMock) MinimumAmountOut(amountOut math.Int, slippageTolerancePercent math.LegacyDec) math.Int {
	if m.MinimumAmountOutFunc != nil {
		return m.MinimumAmountOutFunc(amountOut, slippageTolerancePercent)
	}
	panic("unimplemented")
}
