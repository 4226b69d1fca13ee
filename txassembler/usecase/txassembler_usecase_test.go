package usecase_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/cache"
	"github.com/charisma-labs/srs/domain/mocks"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
	routerusecase "github.com/charisma-labs/srs/router/usecase"
	txusecase "github.com/charisma-labs/srs/txassembler/usecase"
)

const caller = "SP000000000000000000002Q6VF78.caller"

var (
	tokenA = domain.Token{ContractID: "STX", Symbol: "STX", Name: "Stacks", Decimals: 6}
	tokenB = domain.Token{ContractID: "SP2.usda", Symbol: "USDA", Name: "USDA", Decimals: 6}
	tokenC = domain.Token{ContractID: "SP3.welsh", Symbol: "WELSH", Name: "Welshcorgicoin", Decimals: 6}

	tokensByID = map[string]domain.Token{
		tokenA.ContractID: tokenA,
		tokenB.ContractID: tokenB,
		tokenC.ContractID: tokenC,
	}
)

func newPool(id string, token0, token1 domain.Token) domain.Pool {
	return domain.Pool{
		ContractID: id,
		Token0:     token0,
		Token1:     token1,
		Reserve0:   math.NewInt(1_000_000_000),
		Reserve1:   math.NewInt(1_000_000_000),
		SwapFee:    math.LegacyMustNewDecFromStr("0.003"),
	}
}

var (
	poolAB = newPool("SP1.pool-stx-usda", tokenA, tokenB)
	poolBC = newPool("SP1.pool-usda-welsh", tokenB, tokenC)
)

func tokensMock() *mocks.TokensUsecaseMock {
	return &mocks.TokensUsecaseMock{
		GetTokenFunc: func(contractID string) (domain.Token, error) {
			token, ok := tokensByID[contractID]
			if !ok {
				return domain.Token{}, domain.TokenNotFoundError{ContractID: contractID}
			}
			return token, nil
		},
		ChainAmountFunc: func(amountHuman string, tokenContractID string) (math.Int, error) {
			amount, err := math.LegacyNewDecFromStr(amountHuman)
			if err != nil {
				return math.Int{}, domain.ErrBadParamInput
			}
			return amount.MulInt64(1_000_000).RoundInt(), nil
		},
	}
}

// doublingQuoter doubles the input on every hop.
func doublingQuoter() *mocks.QuoterMock {
	return &mocks.QuoterMock{
		QuoteExactInFunc: func(ctx context.Context, pool domain.Pool, zeroForOne bool, amountIn math.Int) (domain.QuoteResult, error) {
			return domain.QuoteResult{AmountOut: amountIn.MulRaw(2), FeeAmount: math.NewInt(1)}, nil
		},
	}
}

func newAssembler(t *testing.T, pools []domain.Pool, quoter domain.Quoter) mvc.TxAssemblerUsecase {
	t.Helper()

	tokens := tokensMock()
	router := routerusecase.NewRouterUsecase(
		domain.DefaultRouterConfig,
		&mocks.PoolsUsecaseMock{Graph: domain.NewSwapGraph(pools)},
		tokens,
		quoter,
		cache.NewPricingCache(30*time.Second, 100),
		&log.NoOpLogger{},
	)

	return txusecase.NewTxAssemblerUsecase(router, tokens, &log.NoOpLogger{})
}

func TestBuildSwap(t *testing.T) {
	assembler := newAssembler(t, []domain.Pool{poolAB, poolBC}, doublingQuoter())

	descriptor, err := assembler.BuildSwap(
		context.Background(),
		[]string{tokenA.ContractID, tokenB.ContractID, tokenC.ContractID},
		"1",
		math.LegacyMustNewDecFromStr("0.5"),
		caller,
	)
	require.NoError(t, err)

	require.Equal(t, caller, descriptor.Caller)
	require.Equal(t, math.NewInt(1_000_000), descriptor.TotalAmountIn)
	require.Len(t, descriptor.Hops, 2)

	// 1_000_000 -> 2_000_000 -> 4_000_000, floored by 0.5%.
	first, second := descriptor.Hops[0], descriptor.Hops[1]
	require.Equal(t, poolAB.ContractID, first.PoolContractID)
	require.Equal(t, math.NewInt(2_000_000), first.AmountOut)
	require.Equal(t, math.NewInt(1_990_000), first.MinAmountOut)
	require.Equal(t, first.AmountOut, second.AmountIn)
	require.Equal(t, math.NewInt(4_000_000), second.AmountOut)
	require.Equal(t, math.NewInt(3_980_000), second.MinAmountOut)
	require.Equal(t, second.MinAmountOut, descriptor.MinAmountOut)

	// Guarantee order: the caller's input bound first, then one floor per
	// traversed pool.
	require.Equal(t, []domain.BalanceGuarantee{
		{Party: caller, TokenContractID: tokenA.ContractID, Bound: domain.GuaranteeSendAtMost, Amount: math.NewInt(1_000_000)},
		{Party: poolAB.ContractID, TokenContractID: tokenB.ContractID, Bound: domain.GuaranteeSendAtLeast, Amount: math.NewInt(1_990_000)},
		{Party: poolBC.ContractID, TokenContractID: tokenC.ContractID, Bound: domain.GuaranteeSendAtLeast, Amount: math.NewInt(3_980_000)},
	}, descriptor.Guarantees)
}

func TestBuildSwap_ZeroSlippage(t *testing.T) {
	assembler := newAssembler(t, []domain.Pool{poolAB}, doublingQuoter())

	descriptor, err := assembler.BuildSwap(
		context.Background(),
		[]string{tokenA.ContractID, tokenB.ContractID},
		"1",
		math.LegacyZeroDec(),
		caller,
	)
	require.NoError(t, err)

	// Zero tolerance demands the full quoted output.
	require.Equal(t, descriptor.Hops[0].AmountOut, descriptor.MinAmountOut)
}

func TestBuildSwap_RemovedPoolBlocksAssembly(t *testing.T) {
	// The graph only has the A-B pool, so the B-C hop cannot resolve.
	assembler := newAssembler(t, []domain.Pool{poolAB}, doublingQuoter())

	_, err := assembler.BuildSwap(
		context.Background(),
		[]string{tokenA.ContractID, tokenB.ContractID, tokenC.ContractID},
		"1",
		math.LegacyMustNewDecFromStr("0.5"),
		caller,
	)

	var assemblyErr domain.TransactionAssemblyError
	require.ErrorAs(t, err, &assemblyErr)

	var notFound domain.PoolNotFoundError
	require.ErrorAs(t, assemblyErr.Err, &notFound)
}

func TestBuildSwap_OracleFailureBlocksAssembly(t *testing.T) {
	quoter := &mocks.QuoterMock{
		QuoteExactInFunc: func(ctx context.Context, pool domain.Pool, zeroForOne bool, amountIn math.Int) (domain.QuoteResult, error) {
			return domain.QuoteResult{}, domain.OracleQueryError{PoolContractID: pool.ContractID, Err: context.DeadlineExceeded}
		},
	}
	assembler := newAssembler(t, []domain.Pool{poolAB}, quoter)

	_, err := assembler.BuildSwap(
		context.Background(),
		[]string{tokenA.ContractID, tokenB.ContractID},
		"1",
		math.LegacyMustNewDecFromStr("0.5"),
		caller,
	)

	var assemblyErr domain.TransactionAssemblyError
	require.ErrorAs(t, err, &assemblyErr)
}

func TestBuildSwap_InvalidInputs(t *testing.T) {
	assembler := newAssembler(t, []domain.Pool{poolAB}, doublingQuoter())
	slippage := math.LegacyMustNewDecFromStr("0.5")
	path := []string{tokenA.ContractID, tokenB.ContractID}

	tests := []struct {
		name     string
		path     []string
		amount   string
		slippage math.LegacyDec
		caller   string
	}{
		{name: "single token path", path: []string{tokenA.ContractID}, amount: "1", slippage: slippage, caller: caller},
		{name: "empty caller", path: path, amount: "1", slippage: slippage, caller: ""},
		{name: "negative slippage", path: path, amount: "1", slippage: math.LegacyMustNewDecFromStr("-1"), caller: caller},
		{name: "slippage at 100 percent", path: path, amount: "1", slippage: math.LegacyNewDec(100), caller: caller},
		{name: "zero amount", path: path, amount: "0", slippage: slippage, caller: caller},
		{name: "malformed amount", path: path, amount: "one", slippage: slippage, caller: caller},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := assembler.BuildSwap(context.Background(), tc.path, tc.amount, tc.slippage, tc.caller)
			require.ErrorIs(t, err, domain.ErrBadParamInput)
		})
	}
}

func TestBuildSwap_UnknownTokenInPath(t *testing.T) {
	assembler := newAssembler(t, []domain.Pool{poolAB}, doublingQuoter())

	_, err := assembler.BuildSwap(
		context.Background(),
		[]string{tokenA.ContractID, "SP9.unknown"},
		"1",
		math.LegacyMustNewDecFromStr("0.5"),
		caller,
	)

	var assemblyErr domain.TransactionAssemblyError
	require.ErrorAs(t, err, &assemblyErr)
}

func TestMinimumAmountOut(t *testing.T) {
	assembler := newAssembler(t, []domain.Pool{poolAB}, doublingQuoter())

	tests := []struct {
		name      string
		amountOut math.Int
		slippage  string
		want      math.Int
	}{
		{name: "half percent", amountOut: math.NewInt(1_000_000), slippage: "0.5", want: math.NewInt(995_000)},
		{name: "truncates, never rounds up", amountOut: math.NewInt(999), slippage: "0.5", want: math.NewInt(994)},
		{name: "zero tolerance", amountOut: math.NewInt(1_000), slippage: "0", want: math.NewInt(1_000)},
		{name: "zero amount", amountOut: math.ZeroInt(), slippage: "0.5", want: math.ZeroInt()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := assembler.MinimumAmountOut(tc.amountOut, math.LegacyMustNewDecFromStr(tc.slippage))
			require.Equal(t, tc.want, got)
		})
	}
}
