package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
)

// TokensHandler  represent the httphandler for tokens
type TokensHandler struct {
	TUsecase mvc.TokensUsecase
	logger   log.Logger
}

const tokensResource = "/tokens"

func formatTokensResource(resource string) string {
	return tokensResource + resource
}

// NewTokensHandler will initialize the tokens/ resources endpoint
func NewTokensHandler(e *echo.Echo, ts mvc.TokensUsecase, logger log.Logger) {
	handler := &TokensHandler{
		TUsecase: ts,
		logger:   logger,
	}

	e.GET(formatTokensResource("/metadata"), handler.GetMetadata)
}

// @Summary Token Metadata
// @Description Returns token metadata with contract id, display symbol and decimals.
// @Description Returns all known tokens when the contract_ids parameter is not given.
// @ID get-token-metadata
// @Produce  json
// @Param  contract_ids  query  string  false  "Comma-separated list of token contract ids"
// @Success 200 {object} map[string]domain.Token "Success"
// @Router /tokens/metadata [get]
func (a *TokensHandler) GetMetadata(c echo.Context) error {
	contractIDsStr := c.QueryParam("contract_ids")
	if len(contractIDsStr) == 0 {
		return c.JSON(http.StatusOK, a.TUsecase.GetAllTokens())
	}

	contractIDs := strings.Split(contractIDsStr, ",")

	result := make(map[string]domain.Token, len(contractIDs))
	for _, contractID := range contractIDs {
		token, err := a.TUsecase.GetToken(contractID)
		if err != nil {
			var notFound domain.TokenNotFoundError
			if errors.As(err, &notFound) {
				return c.JSON(http.StatusNotFound, domain.ResponseError{Message: err.Error()})
			}
			return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
		}

		result[contractID] = token
	}

	return c.JSON(http.StatusOK, result)
}
