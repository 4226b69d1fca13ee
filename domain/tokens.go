package domain

import "fmt"

// Token represents a fungible token tradable through the routing engine.
// Identity is always the chain-unique ContractID. Symbols collide across
// contracts and must never be used as identity.
type Token struct {
	// ContractID is the chain-unique contract reference of the token.
	ContractID string `json:"contract_id"`
	// Symbol is the display symbol. Display only, not identity.
	Symbol string `json:"symbol"`
	// Name is the display name. Display only, not identity.
	Name string `json:"name"`
	// Decimals is the number of decimal places in the human-readable
	// representation of the token.
	Decimals int `json:"decimals"`
}

// Validate returns an error if the token metadata is malformed.
func (t Token) Validate() error {
	if t.ContractID == "" {
		return fmt.Errorf("token has empty contract id")
	}
	if t.Decimals < 0 {
		return fmt.Errorf("token %s has negative decimals (%d)", t.ContractID, t.Decimals)
	}
	return nil
}
