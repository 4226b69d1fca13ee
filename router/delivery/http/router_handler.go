package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase mvc.RouterUsecase
	logger   log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, ru mvc.RouterUsecase, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase: ru,
		logger:   logger,
	}

	e.GET(formatRouterResource("/best-path"), handler.GetBestPath)
	e.GET(formatRouterResource("/paths"), handler.GetCandidatePaths)
	e.GET(formatRouterResource("/supported"), handler.GetIsTokenPairSupported)
	e.POST(formatRouterResource("/clear-cache"), handler.ClearPricingCache)
}

// @Summary Best swap path
// @Description Returns the candidate path with the maximum quoted output for the given
// @Description token pair and input amount. When no route exists the path is null.
// @Description When pricing_confirmed is false the amounts are unconfirmed and the
// @Description transaction build step re-prices the path.
// @ID get-best-path
// @Produce  json
// @Param  token_in  query  string  true  "Input token contract id"
// @Param  token_out  query  string  true  "Output token contract id"
// @Param  amount_in  query  string  true  "Human-readable input amount"
// @Param  extended_hops  query  bool  false  "Raise the hop cap for qualifying callers"
// @Success 200 {object} domain.BestPathResult "Success"
// @Router /router/best-path [get]
func (a *RouterHandler) GetBestPath(c echo.Context) error {
	ctx := c.Request().Context()

	tokenIn, tokenOut, err := getTokenPairParams(c, "token_in", "token_out")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	amountIn := c.QueryParam("amount_in")
	if len(amountIn) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "amount_in is required"})
	}

	extendedHops, err := domain.GetBoolQueryParam(c, "extended_hops")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	result, err := a.RUsecase.GetBestPath(ctx, tokenIn, tokenOut, amountIn, extendedHops)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}

// @Summary Candidate swap paths
// @Description Returns every candidate path between the two tokens, shortest first,
// @Description without pricing any of them.
// @ID get-candidate-paths
// @Produce  json
// @Param  token_in  query  string  true  "Input token contract id"
// @Param  token_out  query  string  true  "Output token contract id"
// @Param  extended_hops  query  bool  false  "Raise the hop cap for qualifying callers"
// @Success 200 {array} domain.CandidatePath "Success"
// @Router /router/paths [get]
func (a *RouterHandler) GetCandidatePaths(c echo.Context) error {
	ctx := c.Request().Context()

	tokenIn, tokenOut, err := getTokenPairParams(c, "token_in", "token_out")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	extendedHops, err := domain.GetBoolQueryParam(c, "extended_hops")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	paths, err := a.RUsecase.FindCandidatePaths(ctx, tokenIn, tokenOut, extendedHops)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, paths)
}

// @Summary Token pair support
// @Description Returns whether any route, direct or multi-hop, connects the two tokens.
// @ID get-token-pair-supported
// @Produce  json
// @Param  token_a  query  string  true  "First token contract id"
// @Param  token_b  query  string  true  "Second token contract id"
// @Success 200 {object} map[string]bool "Success"
// @Router /router/supported [get]
func (a *RouterHandler) GetIsTokenPairSupported(c echo.Context) error {
	ctx := c.Request().Context()

	tokenA, tokenB, err := getTokenPairParams(c, "token_a", "token_b")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	supported, err := a.RUsecase.IsTokenPairSupported(ctx, tokenA, tokenB)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]bool{"supported": supported})
}

// @Summary Clear the pricing cache
// @Description Drops every cached pricing result. Intended for forced invalidation
// @Description after a known reserve-changing event.
// @ID clear-pricing-cache
// @Produce  json
// @Success 200 {object} map[string]string "Success"
// @Router /router/clear-cache [post]
func (a *RouterHandler) ClearPricingCache(c echo.Context) error {
	a.RUsecase.ClearPricingCache()

	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}

func getTokenPairParams(c echo.Context, firstParam, secondParam string) (string, string, error) {
	first := c.QueryParam(firstParam)
	second := c.QueryParam(secondParam)

	if len(first) == 0 || len(second) == 0 {
		return "", "", fmt.Errorf("%s and %s are required", firstParam, secondParam)
	}

	return first, second, nil
}
