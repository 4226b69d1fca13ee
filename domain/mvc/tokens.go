package mvc

import (
	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
)

// TokensUsecase represent the token area's usecases.
type TokensUsecase interface {
	// GetToken returns the metadata of the given token.
	// Returns domain.TokenNotFoundError if the token is unknown.
	GetToken(tokenContractID string) (domain.Token, error)

	// GetAllTokens returns all known token metadata.
	GetAllTokens() []domain.Token

	// ChainAmount converts a human-readable decimal amount of the given
	// token into smallest-unit precision, rounding to the nearest integer.
	ChainAmount(amountHuman string, tokenContractID string) (math.Int, error)

	// HumanAmount formats a smallest-unit amount of the given token as a
	// human-readable decimal string.
	HumanAmount(amount math.Int, tokenContractID string) (string, error)

	// UpdateTokens replaces the metadata set wholesale. Called by the
	// periodic registry refresh.
	UpdateTokens(tokens []domain.Token)
}
