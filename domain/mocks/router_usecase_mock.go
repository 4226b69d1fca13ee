package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

// RouterUsecaseMock is a mock implementation of the mvc.RouterUsecase interface.
type RouterUsecaseMock struct {
	GetBestPathFunc          func(ctx context.Context, tokenInContractID, tokenOutContractID string, amountInHuman string, allowExtendedHops bool) (domain.BestPathResult, error)
	FindCandidatePathsFunc   func(ctx context.Context, tokenInContractID, tokenOutContractID string, allowExtendedHops bool) ([]domain.CandidatePath, error)
	IsTokenPairSupportedFunc func(ctx context.Context, tokenAContractID, tokenBContractID string) (bool, error)
	PricePathFunc            func(ctx context.Context, amountIn math.Int, path domain.CandidatePath) ([]domain.HopQuote, error)
	ClearPricingCacheFunc    func()
	GetConfigFunc            func() domain.RouterConfig
}

// GetBestPath implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetBestPath(ctx context.Context, tokenInContractID, tokenOutContractID string, amountInHuman string, allowExtendedHops bool) (domain.BestPathResult, error) {
	if m.GetBestPathFunc != nil {
		return m.GetBestPathFunc(ctx, tokenInContractID, tokenOutContractID, amountInHuman, allowExtendedHops)
	}
	panic("unimplemented")
}

// FindCandidatePaths implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) FindCandidatePaths(ctx context.Context, tokenInContractID, tokenOutContractID string, allowExtendedHops bool) ([]domain.CandidatePath, error) {
	if m.FindCandidatePathsFunc != nil {
		return m.FindCandidatePathsFunc(ctx, tokenInContractID, tokenOutContractID, allowExtendedHops)
	}
	panic("unimplemented")
}

// IsTokenPairSupported implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) IsTokenPairSupported(ctx context.Context, tokenAContractID, tokenBContractID string) (bool, error) {
	if m.IsTokenPairSupportedFunc != nil {
		return m.IsTokenPairSupportedFunc(ctx, tokenAContractID, tokenBContractID)
	}
	panic("unimplemented")
}

// PricePath implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) PricePath(ctx context.Context, amountIn math.Int, path domain.CandidatePath) ([]domain.HopQuote, error) {
	if m.PricePathFunc != nil {
		return m.PricePathFunc(ctx, amountIn, path)
	}
	panic("unimplemented")
}

// ClearPricingCache implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) ClearPricingCache() {
	if m.ClearPricingCacheFunc != nil {
		m.ClearPricingCacheFunc()
	}
}

// GetConfig implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetConfig() domain.RouterConfig {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}
	return domain.DefaultRouterConfig
}
