package service

import "errors"

// Ledger node errors. Handlers turn them into a status code and the
// matching revert message.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyDreamData      = errors.New("empty dream data")
	ErrDreamDoesNotExist   = errors.New("dream does not exist")
	ErrInvalidInputProof   = errors.New("invalid input proof")
	ErrInsufficientFunds   = errors.New("insufficient funds for gas")
	ErrNotAllowedToDecrypt = errors.New("sender is not allowed to decrypt handle")
	ErrContractNotServed   = errors.New("contract is not served by this runtime")

	ErrInvalidSignature        = errors.New("invalid login signature")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
)

// Client errors.
var (
	// ErrNotOwner is returned when an account other than the owner asks to
	// read a note. No decryption is attempted.
	ErrNotOwner = errors.New("only the owner can read this dream")

	// ErrNotLoggedIn is returned when a client operation runs before the
	// wallet signed in to the ledger.
	ErrNotLoggedIn = errors.New("wallet is not signed in")
)
