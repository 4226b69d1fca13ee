package usecase

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

// oneHundredDec converts between percentage and fractional tolerance.
var oneHundredDec = math.LegacyNewDec(100)

type txAssemblerUseCase struct {
	routerUsecase mvc.RouterUsecase
	tokensUsecase mvc.TokensUsecase

	logger log.Logger
}

var _ mvc.TxAssemblerUsecase = &txAssemblerUseCase{}

// NewTxAssemblerUsecase creates a new transaction assembler usecase.
func NewTxAssemblerUsecase(routerUsecase mvc.RouterUsecase, tokensUsecase mvc.TokensUsecase, logger log.Logger) mvc.TxAssemblerUsecase {
	return &txAssemblerUseCase{
		routerUsecase: routerUsecase,
		tokensUsecase: tokensUsecase,
		logger:        logger,
	}
}

// BuildSwap implements mvc.TxAssemblerUsecase.
func (t *txAssemblerUseCase) BuildSwap(ctx context.Context, pathContractIDs []string, amountInHuman string, slippageTolerancePercent math.LegacyDec, caller string) (domain.SwapTransactionDescriptor, error) {
	if len(pathContractIDs) < 2 {
		return domain.SwapTransactionDescriptor{}, domain.ErrBadParamInput
	}
	if caller == "" {
		return domain.SwapTransactionDescriptor{}, domain.ErrBadParamInput
	}
	if slippageTolerancePercent.IsNegative() || slippageTolerancePercent.GTE(oneHundredDec) {
		return domain.SwapTransactionDescriptor{}, domain.ErrBadParamInput
	}

	path := make(domain.CandidatePath, 0, len(pathContractIDs))
	for _, contractID := range pathContractIDs {
		token, err := t.tokensUsecase.GetToken(contractID)
		if err != nil {
			return domain.SwapTransactionDescriptor{}, domain.TransactionAssemblyError{Err: err}
		}
		path = append(path, token)
	}

	amountIn, err := t.tokensUsecase.ChainAmount(amountInHuman, path.Source().ContractID)
	if err != nil {
		return domain.SwapTransactionDescriptor{}, err
	}
	if !amountIn.IsPositive() {
		return domain.SwapTransactionDescriptor{}, domain.ErrBadParamInput
	}

	// Authoritative re-pricing against the oracle. Exploratory quotes from
	// the ranking phase may be stale; a submitted transaction is built only
	// from amounts the chain just reported. A pool removed from the
	// registry since the route was found fails here and blocks submission.
	quotes, err := t.routerUsecase.PricePath(ctx, amountIn, path)
	if err != nil {
		t.logger.Warn("swap assembly re-pricing failed",
			zap.String("path", path.String()),
			zap.Error(err),
		)
		return domain.SwapTransactionDescriptor{}, domain.TransactionAssemblyError{Err: err}
	}
	if len(quotes) == 0 {
		return domain.SwapTransactionDescriptor{}, domain.TransactionAssemblyError{Err: fmt.Errorf("no hops priced for path %s", path)}
	}

	hops := make([]domain.SwapHopDescriptor, 0, len(quotes))
	guarantees := make([]domain.BalanceGuarantee, 0, len(quotes)+1)

	// The caller sends no more than the declared input of the first hop.
	guarantees = append(guarantees, domain.BalanceGuarantee{
		Party:           caller,
		TokenContractID: path.Source().ContractID,
		Bound:           domain.GuaranteeSendAtMost,
		Amount:          amountIn,
	})

	for _, quote := range quotes {
		minAmountOut := t.MinimumAmountOut(quote.AmountOut, slippageTolerancePercent)

		hops = append(hops, domain.SwapHopDescriptor{
			PoolContractID: quote.PoolContractID,
			TokenIn:        quote.TokenIn,
			TokenOut:       quote.TokenOut,
			ZeroForOne:     quote.ZeroForOne,
			AmountIn:       quote.AmountIn,
			AmountOut:      quote.AmountOut,
			MinAmountOut:   minAmountOut,
		})

		// Each traversed pool sends at least the floored hop output.
		guarantees = append(guarantees, domain.BalanceGuarantee{
			Party:           quote.PoolContractID,
			TokenContractID: quote.TokenOut.ContractID,
			Bound:           domain.GuaranteeSendAtLeast,
			Amount:          minAmountOut,
		})
	}

	return domain.SwapTransactionDescriptor{
		Caller:        caller,
		Hops:          hops,
		TotalAmountIn: amountIn,
		MinAmountOut:  hops[len(hops)-1].MinAmountOut,
		Guarantees:    dedupeGuarantees(guarantees),
	}, nil
}

// MinimumAmountOut implements mvc.TxAssemblerUsecase. The floor always
// truncates: rounding a minimum up could demand more than the pool will
// deliver and abort an otherwise acceptable swap.
func (t *txAssemblerUseCase) MinimumAmountOut(amountOut math.Int, slippageTolerancePercent math.LegacyDec) math.Int {
	factor := math.LegacyOneDec().Sub(slippageTolerancePercent.Quo(oneHundredDec))
	if factor.IsNegative() {
		return math.ZeroInt()
	}

	return math.LegacyNewDecFromInt(amountOut).Mul(factor).TruncateInt()
}

// dedupeGuarantees drops exact duplicates while preserving the order of
// first appearance. The transaction builder downstream treats each
// guarantee as a distinct abort condition, so repeating one is noise.
func dedupeGuarantees(guarantees []domain.BalanceGuarantee) []domain.BalanceGuarantee {
	seen := make(map[string]struct{}, len(guarantees))
	deduped := make([]domain.BalanceGuarantee, 0, len(guarantees))

	for _, guarantee := range guarantees {
		key := guarantee.Party + "|" + guarantee.TokenContractID + "|" + string(guarantee.Bound) + "|" + guarantee.Amount.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, guarantee)
	}

	return deduped
}
