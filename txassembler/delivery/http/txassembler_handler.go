package http

import (
	"net/http"

	"cosmossdk.io/math"
	"github.com/labstack/echo/v4"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

// TxAssemblerHandler  represent the httphandler for the transaction assembler
type TxAssemblerHandler struct {
	AUsecase mvc.TxAssemblerUsecase
	logger   log.Logger
}

const txAssemblerResource = "/txassembler"

// BuildSwapRequest is the request body of the swap build endpoint.
type BuildSwapRequest struct {
	// Path is the ordered token contract id sequence of the chosen path.
	Path []string `json:"path"`

	// AmountIn is the human-readable input amount.
	AmountIn string `json:"amount_in"`

	// SlippageTolerancePercent is a percentage string; "0.5" means 0.5%.
	SlippageTolerancePercent string `json:"slippage_tolerance_percent"`

	// Caller is the address submitting the swap.
	Caller string `json:"caller"`
}

// NewTxAssemblerHandler will initialize the txassembler/ resources endpoint
func NewTxAssemblerHandler(e *echo.Echo, au mvc.TxAssemblerUsecase, logger log.Logger) {
	handler := &TxAssemblerHandler{
		AUsecase: au,
		logger:   logger,
	}

	e.POST(txAssemblerResource+"/swap", handler.BuildSwap)
}

// @Summary Build a swap transaction
// @Description Re-prices the given path with fresh oracle quotes and returns the
// @Description ordered hop descriptors and balance-change guarantees for the
// @Description external transaction builder. Assembly fails with 422 when any hop
// @Description cannot be re-priced.
// @ID build-swap
// @Accept  json
// @Produce  json
// @Param  request  body  BuildSwapRequest  true  "Swap build request"
// @Success 200 {object} domain.SwapTransactionDescriptor "Success"
// @Router /txassembler/swap [post]
func (a *TxAssemblerHandler) BuildSwap(c echo.Context) error {
	ctx := c.Request().Context()

	var req BuildSwapRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	slippage, err := math.LegacyNewDecFromStr(req.SlippageTolerancePercent)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "invalid slippage_tolerance_percent"})
	}

	descriptor, err := a.AUsecase.BuildSwap(ctx, req.Path, req.AmountIn, slippage, req.Caller)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, descriptor)
}
