package chain

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/srsutil/srshttp"
)

// quotePayload is the node's response to a read-only quote call.
// Amounts arrive as strings in smallest-unit precision.
type quotePayload struct {
	AmountOut string `json:"amount_out"`
	FeeAmount string `json:"fee_amount"`
}

var _ domain.Quoter = &quoterClient{}

// quoterClient queries the node's read-only AMM quote endpoint. The call
// is side-effect-free and authoritative over any off-chain estimate.
type quoterClient struct {
	client       *http.Client
	nodeEndpoint string
	callTimeout  time.Duration
}

// NewQuoterClient creates a quoting oracle client against the given node
// endpoint. Every call is bounded by callTimeout so that one hung quote
// cannot stall a pricing fan-in indefinitely.
func NewQuoterClient(nodeEndpoint string, callTimeout time.Duration) domain.Quoter {
	return &quoterClient{
		client:       &http.Client{Timeout: callTimeout},
		nodeEndpoint: nodeEndpoint,
		callTimeout:  callTimeout,
	}
}

// QuoteExactIn implements domain.Quoter.
func (q *quoterClient) QuoteExactIn(ctx context.Context, pool domain.Pool, zeroForOne bool, amountIn math.Int) (domain.QuoteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, q.callTimeout)
	defer cancel()

	direction := "0"
	if !zeroForOne {
		direction = "1"
	}

	endpoint := fmt.Sprintf("/v2/amm/quote?pool=%s&direction=%s&amount_in=%s",
		url.QueryEscape(pool.ContractID), direction, amountIn.String())

	payload, err := srshttp.GetWithContext[quotePayload](ctx, q.client, q.nodeEndpoint, endpoint)
	if err != nil {
		return domain.QuoteResult{}, domain.OracleQueryError{PoolContractID: pool.ContractID, Err: err}
	}

	amountOut, ok := math.NewIntFromString(payload.AmountOut)
	if !ok {
		return domain.QuoteResult{}, domain.OracleQueryError{
			PoolContractID: pool.ContractID,
			Err:            fmt.Errorf("cannot parse amount out %q", payload.AmountOut),
		}
	}

	feeAmount, ok := math.NewIntFromString(payload.FeeAmount)
	if !ok {
		return domain.QuoteResult{}, domain.OracleQueryError{
			PoolContractID: pool.ContractID,
			Err:            fmt.Errorf("cannot parse fee amount %q", payload.FeeAmount),
		}
	}

	return domain.QuoteResult{
		AmountOut: amountOut,
		FeeAmount: feeAmount,
	}, nil
}
