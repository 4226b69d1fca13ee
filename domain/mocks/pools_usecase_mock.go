package mocks

import (
	"context"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
)

var _ mvc.PoolsUsecase = &PoolsUsecaseMock{}

// PoolsUsecaseMock is a mock implementation of the mvc.PoolsUsecase interface.
type PoolsUsecaseMock struct {
	RefreshPoolsFunc  func(ctx context.Context) error
	GetGraphFunc      func() *domain.SwapGraph
	GetAllPoolsFunc   func() []domain.Pool
	GetDirectPoolFunc func(tokenAContractID, tokenBContractID string) (domain.Pool, error)

	// Graph is returned when GetGraphFunc is unset.
	Graph *domain.SwapGraph
}

// RefreshPools implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) RefreshPools(ctx context.Context) error {
	if m.RefreshPoolsFunc != nil {
		return m.RefreshPoolsFunc(ctx)
	}
	return nil
}

// GetGraph implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) GetGraph() *domain.SwapGraph {
	if m.GetGraphFunc != nil {
		return m.GetGraphFunc()
	}
	if m.Graph != nil {
		return m.Graph
	}
	return domain.NewSwapGraph(nil)
}

// GetAllPools implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) GetAllPools() []domain.Pool {
	if m.GetAllPoolsFunc != nil {
		return m.GetAllPoolsFunc()
	}
	return nil
}

// GetDirectPool implements mvc.PoolsUsecase.
func (m *PoolsUsecaseMock) GetDirectPool(tokenAContractID, tokenBContractID string) (domain.Pool, error) {
	if m.GetDirectPoolFunc != nil {
		return m.GetDirectPoolFunc(tokenAContractID, tokenBContractID)
	}
	pool, ok := m.GetGraph().GetDirectPool(tokenAContractID, tokenBContractID)
	if !ok {
		return domain.Pool{}, domain.PoolNotFoundError{
			TokenInContractID:  tokenAContractID,
			TokenOutContractID: tokenBContractID,
		}
	}
	return pool, nil
}
