package confidential

import "errors"

var (
	// ErrRuntimeNotReady is returned by every operation attempted while the
	// session is not in the ready state.
	ErrRuntimeNotReady = errors.New("confidential runtime is not ready")

	// ErrChainMismatch is returned when the relayer serves a different chain
	// than the wallet is connected to.
	ErrChainMismatch = errors.New("relayer chain does not match wallet chain")

	// ErrContractMismatch is returned when the relayer serves a different
	// contract than the one configured for the chain.
	ErrContractMismatch = errors.New("relayer contract does not match configured contract")

	// ErrEmptyValue is returned when a raw handle or proof is empty.
	ErrEmptyValue = errors.New("empty raw value")

	// ErrInvalidHex is returned when a raw string value is not hex.
	ErrInvalidHex = errors.New("raw value is not hex")

	// ErrUnexpectedHandleCount is returned when an encryption yields a
	// number of handles other than the number of added values.
	ErrUnexpectedHandleCount = errors.New("unexpected number of handles")

	// ErrInvalidHandleLength is returned when a normalized handle is not
	// 32 bytes.
	ErrInvalidHandleLength = errors.New("handle must be 32 bytes")
)
