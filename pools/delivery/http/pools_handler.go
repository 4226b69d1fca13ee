package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
)

// PoolsHandler  represent the httphandler for pools
type PoolsHandler struct {
	PUsecase mvc.PoolsUsecase
}

const resourcePrefix = "/pools"

func formatPoolsResource(resource string) string {
	return resourcePrefix + resource
}

// NewPoolsHandler will initialize the pools/ resources endpoint
func NewPoolsHandler(e *echo.Echo, us mvc.PoolsUsecase) {
	handler := &PoolsHandler{
		PUsecase: us,
	}

	e.GET(formatPoolsResource(""), handler.GetPools)
	e.GET(formatPoolsResource("/direct"), handler.GetDirectPool)
}

// @Summary Get all pools
// @Description Returns the validated pools of the current registry snapshot.
// @ID get-pools
// @Produce  json
// @Success 200  {array}  domain.Pool  "List of pools"
// @Router /pools [get]
func (a *PoolsHandler) GetPools(c echo.Context) error {
	return c.JSON(http.StatusOK, a.PUsecase.GetAllPools())
}

// @Summary Get the direct pool for a token pair
// @Description Returns the pool directly connecting the two tokens, if one exists.
// @ID get-direct-pool
// @Produce  json
// @Param  token_a  query  string  true  "First token contract id"
// @Param  token_b  query  string  true  "Second token contract id"
// @Success 200  {object}  domain.Pool  "Pool details"
// @Router /pools/direct [get]
func (a *PoolsHandler) GetDirectPool(c echo.Context) error {
	tokenA := c.QueryParam("token_a")
	tokenB := c.QueryParam("token_b")

	if len(tokenA) == 0 || len(tokenB) == 0 {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: "token_a and token_b are required"})
	}

	pool, err := a.PUsecase.GetDirectPool(tokenA, tokenB)
	if err != nil {
		var notFound domain.PoolNotFoundError
		if errors.As(err, &notFound) {
			return c.JSON(http.StatusNotFound, domain.ResponseError{Message: err.Error()})
		}
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, pool)
}
