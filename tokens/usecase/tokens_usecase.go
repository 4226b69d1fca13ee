package usecase

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cosmossdk.io/math"
	"go.uber.org/zap"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
	"github.com/charisma-labs/srs/log"
	"github.com/charisma-labs/srs/srsutil/srshttp"
)

type tokensUseCase struct {
	mu     sync.RWMutex
	tokens map[string]domain.Token

	logger log.Logger
}

var _ mvc.TokensUsecase = &tokensUseCase{}

// tenDec is the base for decimal scaling between human and chain amounts.
var tenDec = math.LegacyNewDec(10)

// NewTokensUsecase creates a tokens usecase seeded with the given metadata.
func NewTokensUsecase(tokens []domain.Token, logger log.Logger) mvc.TokensUsecase {
	byContract := make(map[string]domain.Token, len(tokens))
	for _, token := range tokens {
		byContract[token.ContractID] = token
	}

	return &tokensUseCase{
		tokens: byContract,
		logger: logger,
	}
}

// registryTokenPayload is one entry of the token registry response.
type registryTokenPayload struct {
	ContractID string `json:"contract_id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Decimals   int    `json:"decimals"`
}

// LoadTokensFromRegistry fetches the token metadata list from the registry URL.
// Malformed entries are skipped with a warning rather than failing the load.
func LoadTokensFromRegistry(ctx context.Context, client *http.Client, registryURL string, logger log.Logger) ([]domain.Token, error) {
	payload, err := srshttp.GetWithContext[[]registryTokenPayload](ctx, client, registryURL, "/tokens")
	if err != nil {
		return nil, err
	}

	tokens := make([]domain.Token, 0, len(*payload))
	for _, entry := range *payload {
		token := domain.Token{
			ContractID: entry.ContractID,
			Symbol:     entry.Symbol,
			Name:       entry.Name,
			Decimals:   entry.Decimals,
		}

		if err := token.Validate(); err != nil {
			logger.Warn("skipping invalid token registry entry", zap.String("contract_id", entry.ContractID), zap.Error(err))
			continue
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// GetToken implements mvc.TokensUsecase.
func (t *tokensUseCase) GetToken(contractID string) (domain.Token, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	token, ok := t.tokens[contractID]
	if !ok {
		return domain.Token{}, domain.TokenNotFoundError{ContractID: contractID}
	}

	return token, nil
}

// GetAllTokens implements mvc.TokensUsecase.
func (t *tokensUseCase) GetAllTokens() []domain.Token {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tokens := make([]domain.Token, 0, len(t.tokens))
	for _, token := range t.tokens {
		tokens = append(tokens, token)
	}

	return tokens
}

// ChainAmount implements mvc.TokensUsecase. The human amount is scaled by
// the token's decimals and rounded to the nearest integer unit. Rounding,
// not truncation, so that 0.0000015 of a 6-decimal token becomes 2 units.
func (t *tokensUseCase) ChainAmount(amountHuman string, tokenContractID string) (math.Int, error) {
	token, err := t.GetToken(tokenContractID)
	if err != nil {
		return math.Int{}, err
	}

	amount, err := math.LegacyNewDecFromStr(amountHuman)
	if err != nil {
		return math.Int{}, domain.ErrBadParamInput
	}

	if amount.IsNegative() {
		return math.Int{}, domain.ErrBadParamInput
	}

	scale := tenDec.Power(uint64(token.Decimals))
	return amount.Mul(scale).RoundInt(), nil
}

// HumanAmount implements mvc.TokensUsecase.
func (t *tokensUseCase) HumanAmount(amount math.Int, tokenContractID string) (string, error) {
	token, err := t.GetToken(tokenContractID)
	if err != nil {
		return "", err
	}

	scale := tenDec.Power(uint64(token.Decimals))
	return math.LegacyNewDecFromInt(amount).Quo(scale).String(), nil
}

// UpdateTokens replaces the metadata set. Used by the periodic refresh.
func (t *tokensUseCase) UpdateTokens(tokens []domain.Token) {
	byContract := make(map[string]domain.Token, len(tokens))
	for _, token := range tokens {
		byContract[token.ContractID] = token
	}

	t.mu.Lock()
	t.tokens = byContract
	t.mu.Unlock()
}

// defaultRegistryClient bounds registry fetches independently of caller contexts.
var defaultRegistryClient = &http.Client{Timeout: 15 * time.Second}

// DefaultRegistryHTTPClient returns the shared client for registry fetches.
func DefaultRegistryHTTPClient() *http.Client {
	return defaultRegistryClient
}
