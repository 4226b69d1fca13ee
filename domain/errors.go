package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var assemblyErr TransactionAssemblyError
	switch {
	case errors.Is(err, ErrInternalServerError):
		return http.StatusInternalServerError
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	case errors.As(err, &assemblyErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// PoolNotFoundError is returned when a hop in an otherwise valid path has
// no backing pool in the graph, e.g. when the pool was removed from the
// registry mid-flight.
type PoolNotFoundError struct {
	TokenInContractID  string
	TokenOutContractID string
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("no pool found between %s and %s", e.TokenInContractID, e.TokenOutContractID)
}

// OracleQueryError is returned when the remote quoting call errors, times
// out, or returns unparseable data.
type OracleQueryError struct {
	PoolContractID string
	Err            error
}

func (e OracleQueryError) Error() string {
	return fmt.Sprintf("oracle quote failed for pool %s: %v", e.PoolContractID, e.Err)
}

func (e OracleQueryError) Unwrap() error {
	return e.Err
}

// TokenNotFoundError is returned when a referenced token is not known to
// the token metadata store.
type TokenNotFoundError struct {
	ContractID string
}

func (e TokenNotFoundError) Error() string {
	return fmt.Sprintf("token %s not found in metadata store", e.ContractID)
}

// TransactionAssemblyError is returned when the authoritative re-pricing
// or pool resolution fails at transaction build time. Unlike the
// exploratory ranking phase, assembly must never proceed on stale or
// missing data, so this error is propagated to the caller.
type TransactionAssemblyError struct {
	Err error
}

func (e TransactionAssemblyError) Error() string {
	return fmt.Sprintf("failed to assemble swap transaction: %v", e.Err)
}

func (e TransactionAssemblyError) Unwrap() error {
	return e.Err
}
