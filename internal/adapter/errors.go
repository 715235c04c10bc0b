package adapter

import "errors"

// Revert errors. The ledger node names the reason in the response body.
var (
	ErrEmptyDreamData    = errors.New("empty dream data")
	ErrDreamDoesNotExist = errors.New("dream does not exist")
	ErrInvalidInputProof = errors.New("invalid input proof")
	ErrInsufficientFunds = errors.New("insufficient funds for gas")
	ErrNotAllowed        = errors.New("not allowed to decrypt")
	ErrContractNotServed = errors.New("contract is not served by the relayer")
)

// Transport errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNetwork wraps failures to reach the ledger node at all.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse is returned when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed ledger response")
)
