package mocks

import (
	"cosmossdk.io/math"

	"github.com/charisma-labs/srs/domain"
	"github.com/charisma-labs/srs/domain/mvc"
)

var _ mvc.TokensUsecase = &TokensUsecaseMock{}

// TokensUsecaseMock is a mock implementation of the mvc.TokensUsecase interface.
type TokensUsecaseMock struct {
	GetTokenFunc     func(tokenContractID string) (domain.Token, error)
	GetAllTokensFunc func() []domain.Token
	ChainAmountFunc  func(amountHuman string, tokenContractID string) (math.Int, error)
	HumanAmountFunc  func(amount math.Int, tokenContractID string) (string, error)
	UpdateTokensFunc func(tokens []domain.Token)
}

// GetToken implements mvc.TokensUsecase.
func (m *TokensUsecaseMock) GetToken(tokenContractID string) (domain.Token, error) {
	if m.GetTokenFunc != nil {
		return m.GetTokenFunc(tokenContractID)
	}
	panic("unimplemented")
}

// GetAllTokens implements mvc.TokensUsecase.
func (m *TokensUsecaseMock) GetAllTokens() []domain.Token {
	if m.GetAllTokensFunc != nil {
		return m.GetAllTokensFunc()
	}
	return nil
}

// ChainAmount implements mvc.TokensUsecase.
func (m *TokensUsecaseMock) ChainAmount(amountHuman string, tokenContractID string) (math.Int, error) {
	if m.ChainAmountFunc != nil {
		return m.ChainAmountFunc(amountHuman, tokenContractID)
	}
	panic("unimplemented")
}

// UpdateTokens implements mvc.TokensUsecase.
func (m *TokensUsecaseMock) UpdateTokens(tokens []domain.Token) {
	if m.UpdateTokensFunc != nil {
		m.UpdateTokensFunc(tokens)
	}
}

// HumanAmount implements mvc.TokensUsecase.
func (m *TokensUsecaseMock) HumanAmount(amount math.Int, tokenContractID string) (string, error) {
	if m.HumanAmountFunc != nil {
		return m.HumanAmountFunc(amount, tokenContractID)
	}
	panic("unimplemented")
}
