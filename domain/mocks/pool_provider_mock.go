package mocks

import (
	"context"

	"github.com/charisma-labs/srs/domain"
)

var _ domain.PoolProvider = &PoolProviderMock{}

// PoolProviderMock is a mock implementation of the domain.PoolProvider interface.
type PoolProviderMock struct {
	ListPoolsFunc func(ctx context.Context) ([]domain.Pool, error)

	// Pools is returned when ListPoolsFunc is unset.
	Pools []domain.Pool
}

// ListPools implements domain.PoolProvider.
func (m *PoolProviderMock) ListPools(ctx context.Context) ([]domain.Pool, error) {
	if m.ListPoolsFunc != nil {
		return m.ListPoolsFunc(ctx)
	}
	return m.Pools, nil
}
