package fhe

import "errors"

var (
	// ErrInvalidProof is returned when an input proof is malformed, does not
	// list the handle, or its signature does not verify for the
	// (contract, user) pair it is presented with.
	ErrInvalidProof = errors.New("invalid input proof")

	// ErrUnknownHandle is returned when a handle is not registered.
	ErrUnknownHandle = errors.New("unknown ciphertext handle")

	// ErrTypeMismatch is returned when an operation receives a ciphertext of
	// the wrong encrypted type.
	ErrTypeMismatch = errors.New("ciphertext type mismatch")

	// ErrNotAllowed is returned when user decryption is requested for a
	// handle the user or the contract has not been granted.
	ErrNotAllowed = errors.New("sender is not allowed to decrypt handle")

	// ErrContractNotServed is returned when an input is requested for a
	// contract other than the one the runtime is attached to.
	ErrContractNotServed = errors.New("contract is not served by this runtime")

	// ErrTooManyInputs is returned when a single input holds more values than
	// one proof can list.
	ErrTooManyInputs = errors.New("too many values in one input")
)
