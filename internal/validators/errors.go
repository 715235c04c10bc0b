package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyNote      = errors.New("note text is required")
	ErrNoteTooLong    = errors.New("note text is too long")
	ErrEmptyBody      = errors.New("encrypted body is required")
	ErrInvalidBody    = errors.New("encrypted body must be 0x-prefixed lower-case hex")
	ErrInvalidHandle  = errors.New("handle must be a 0x-prefixed 32-byte lower-case hex value")
	ErrInvalidProof   = errors.New("proof must be 0x-prefixed lower-case hex")
	ErrInvalidAddress = errors.New("invalid account address")
	ErrEmptyValues    = errors.New("values list cannot be empty")
	ErrTooManyValues  = errors.New("too many values in one input")
	ErrInvalidSig     = errors.New("signature must be 0x-prefixed 65-byte hex")
	ErrInvalidLoginTs = errors.New("invalid login timestamp")
)
