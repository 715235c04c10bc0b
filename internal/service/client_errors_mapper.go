// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/internal/crypto"
	"github.com/MKhiriev/go-dream-cipher/internal/validators"
)

// categorize infers the category of a client-side failure. Typed errors are
// matched first; the message text is the fallback for errors that only
// carry a reason string.
func categorize(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Category
	}

	switch {
	case errors.Is(err, context.Canceled):
		return CategoryCancellation

	case errors.Is(err, validators.ErrEmptyNote),
		errors.Is(err, validators.ErrNoteTooLong),
		errors.Is(err, crypto.ErrMalformedEnvelope),
		errors.Is(err, crypto.ErrEmptySeed),
		errors.Is(err, adapter.ErrEmptyDreamData),
		errors.Is(err, adapter.ErrBadRequest):
		return CategoryValidation

	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return CategoryAuthentication

	case errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrNotLoggedIn),
		errors.Is(err, adapter.ErrNotAllowed),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden):
		return CategoryAuthorization

	case errors.Is(err, adapter.ErrDreamDoesNotExist),
		errors.Is(err, adapter.ErrNotFound):
		return CategoryNotFound

	case errors.Is(err, confidential.ErrRuntimeNotReady),
		errors.Is(err, confidential.ErrChainMismatch),
		errors.Is(err, confidential.ErrContractMismatch),
		errors.Is(err, adapter.ErrContractNotServed):
		return CategoryRuntimeNotReady

	case errors.Is(err, adapter.ErrInvalidInputProof),
		errors.Is(err, confidential.ErrInvalidHandleLength),
		errors.Is(err, confidential.ErrUnexpectedHandleCount):
		return CategoryProofRejected

	case errors.Is(err, adapter.ErrInsufficientFunds):
		return CategoryInsufficientResources

	case errors.Is(err, adapter.ErrNetwork),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrMalformedResponse),
		errors.Is(err, context.DeadlineExceeded):
		return CategoryTransport
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user rejected"):
		return CategoryCancellation
	case strings.Contains(msg, "insufficient funds"):
		return CategoryInsufficientResources
	case strings.Contains(msg, "network"):
		return CategoryTransport
	}

	return CategoryUnknown
}
