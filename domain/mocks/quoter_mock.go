package mocks

import (
	"context"
	"sync"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

var _ domain.Quoter = &QuoterMock{}

// QuoterMock is a call-counting mock implementation of the domain.Quoter
// interface.
type QuoterMock struct {
	QuoteExactInFunc func(ctx context.Context, pool domain.Pool, zeroForOne bool, amountIn math.Int) (domain.QuoteResult, error)

	mu       sync.Mutex
	numCalls int
}

// QuoteExactIn implements domain.Quoter.
func (m *QuoterMock) QuoteExactIn(ctx context.Context, pool domain.Pool, zeroForOne bool, amountIn math.Int) (domain.QuoteResult, error) {
	m.mu.Lock()
	m.numCalls++
	m.mu.Unlock()

	if m.QuoteExactInFunc != nil {
		return m.QuoteExactInFunc(ctx, pool, zeroForOne, amountIn)
	}
	panic("unimplemented")
}

// NumCalls returns how many times QuoteExactIn was invoked.
func (m *QuoterMock) NumCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.numCalls
}
