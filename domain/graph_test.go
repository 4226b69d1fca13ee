package domain_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/charisma-labs/srs/domain"
)

var (
	stx   = domain.Token{ContractID: "STX", Symbol: "STX", Name: "Stacks", Decimals: 6}
	usda  = domain.Token{ContractID: "SP2.usda", Symbol: "USDA", Name: "USDA", Decimals: 6}
	welsh = domain.Token{ContractID: "SP3.welsh", Symbol: "WELSH", Name: "Welshcorgicoin", Decimals: 6}
)

func validPool(id string, token0, token1 domain.Token) domain.Pool {
	return domain.Pool{
		ContractID: id,
		Token0:     token0,
		Token1:     token1,
		Reserve0:   math.NewInt(1_000_000),
		Reserve1:   math.NewInt(2_000_000),
		SwapFee:    math.LegacyMustNewDecFromStr("0.003"),
	}
}

func TestNewSwapGraph(t *testing.T) {
	poolAB := validPool("SP1.pool-stx-usda", stx, usda)
	poolBC := validPool("SP1.pool-usda-welsh", usda, welsh)

	graph := domain.NewSwapGraph([]domain.Pool{poolAB, poolBC})

	require.Equal(t, 3, graph.NumTokens())
	require.Equal(t, 2, graph.NumPools())
	require.True(t, graph.HasToken(stx.ContractID))
	require.False(t, graph.HasToken("SP9.unknown"))

	token, ok := graph.Token(usda.ContractID)
	require.True(t, ok)
	require.Equal(t, usda, token)

	// Edges are bidirectional.
	pool, ok := graph.GetDirectPool(stx.ContractID, usda.ContractID)
	require.True(t, ok)
	require.Equal(t, poolAB.ContractID, pool.ContractID)

	pool, ok = graph.GetDirectPool(usda.ContractID, stx.ContractID)
	require.True(t, ok)
	require.Equal(t, poolAB.ContractID, pool.ContractID)

	_, ok = graph.GetDirectPool(stx.ContractID, welsh.ContractID)
	require.False(t, ok)
}

func TestNewSwapGraph_Empty(t *testing.T) {
	graph := domain.NewSwapGraph(nil)

	require.Zero(t, graph.NumTokens())
	require.Zero(t, graph.NumPools())
	require.Nil(t, graph.Edges(stx.ContractID))
}

func TestSwapGraph_EdgeOrderIsInsertionOrder(t *testing.T) {
	poolAB := validPool("SP1.pool-stx-usda", stx, usda)
	poolAC := validPool("SP1.pool-stx-welsh", stx, welsh)

	graph := domain.NewSwapGraph([]domain.Pool{poolAB, poolAC})

	edges := graph.Edges(stx.ContractID)
	require.Len(t, edges, 2)
	require.Equal(t, usda.ContractID, edges[0].Token.ContractID)
	require.Equal(t, welsh.ContractID, edges[1].Token.ContractID)
}

func TestSwapGraph_LaterPoolReplacesSamePairEdge(t *testing.T) {
	older := validPool("SP1.pool-stx-usda-v1", stx, usda)
	newer := validPool("SP1.pool-stx-usda-v2", stx, usda)

	graph := domain.NewSwapGraph([]domain.Pool{older, newer})

	pool, ok := graph.GetDirectPool(stx.ContractID, usda.ContractID)
	require.True(t, ok)
	require.Equal(t, newer.ContractID, pool.ContractID)

	// The replacement does not duplicate the edge.
	require.Len(t, graph.Edges(stx.ContractID), 1)
}

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Pool)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *domain.Pool) {}},
		{name: "empty contract id", mutate: func(p *domain.Pool) { p.ContractID = "" }, wantErr: true},
		{name: "same token twice", mutate: func(p *domain.Pool) { p.Token1 = p.Token0 }, wantErr: true},
		{name: "nil reserve", mutate: func(p *domain.Pool) { p.Reserve0 = math.Int{} }, wantErr: true},
		{name: "negative reserve", mutate: func(p *domain.Pool) { p.Reserve1 = math.NewInt(-1) }, wantErr: true},
		{name: "zero reserves allowed", mutate: func(p *domain.Pool) { p.Reserve0 = math.ZeroInt(); p.Reserve1 = math.ZeroInt() }},
		{name: "nil fee", mutate: func(p *domain.Pool) { p.SwapFee = math.LegacyDec{} }, wantErr: true},
		{name: "fee of one", mutate: func(p *domain.Pool) { p.SwapFee = math.LegacyOneDec() }, wantErr: true},
		{name: "invalid token", mutate: func(p *domain.Pool) { p.Token0.ContractID = "" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool("SP1.pool-stx-usda", stx, usda)
			tc.mutate(&pool)

			err := pool.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPoolDirectionHelpers(t *testing.T) {
	pool := validPool("SP1.pool-stx-usda", stx, usda)

	require.True(t, pool.HasToken(stx.ContractID))
	require.True(t, pool.HasToken(usda.ContractID))
	require.False(t, pool.HasToken(welsh.ContractID))

	require.True(t, pool.IsToken0(stx.ContractID))
	require.False(t, pool.IsToken0(usda.ContractID))

	other, ok := pool.OtherToken(stx.ContractID)
	require.True(t, ok)
	require.Equal(t, usda, other)

	_, ok = pool.OtherToken(welsh.ContractID)
	require.False(t, ok)
}

func TestCandidatePath(t *testing.T) {
	path := domain.CandidatePath{stx, usda, welsh}

	require.Equal(t, stx, path.Source())
	require.Equal(t, welsh, path.Destination())
	require.Equal(t, 2, path.NumHops())
	require.Equal(t, []string{"STX", "SP2.usda", "SP3.welsh"}, path.ContractIDs())
	require.Equal(t, "STX -> USDA -> WELSH", path.String())
}
