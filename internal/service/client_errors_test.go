package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/internal/crypto"
	"github.com/MKhiriev/go-dream-cipher/internal/validators"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryUnknown},
		{"empty note", validators.ErrEmptyNote, CategoryValidation},
		{"too long", fmt.Errorf("draft: %w", validators.ErrNoteTooLong), CategoryValidation},
		{"empty data revert", adapter.ErrEmptyDreamData, CategoryValidation},
		{"tampered", crypto.ErrAuthenticationFailed, CategoryAuthentication},
		{"not owner", ErrNotOwner, CategoryAuthorization},
		{"acl", adapter.ErrNotAllowed, CategoryAuthorization},
		{"missing dream", adapter.ErrDreamDoesNotExist, CategoryNotFound},
		{"runtime loading", confidential.ErrRuntimeNotReady, CategoryRuntimeNotReady},
		{"wrong chain", confidential.ErrChainMismatch, CategoryRuntimeNotReady},
		{"bad proof", adapter.ErrInvalidInputProof, CategoryProofRejected},
		{"gas", adapter.ErrInsufficientFunds, CategoryInsufficientResources},
		{"network", fmt.Errorf("%w: dial tcp", adapter.ErrNetwork), CategoryTransport},
		{"cancelled", context.Canceled, CategoryCancellation},
		{"user rejected text", errors.New("User rejected the request"), CategoryCancellation},
		{"insufficient funds text", errors.New("sender has insufficient funds"), CategoryInsufficientResources},
		{"network text", errors.New("network changed"), CategoryTransport},
		{"anything else", errors.New("boom"), CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.err))
		})
	}
}

func TestCategorize_KeepsOperationErrorCategory(t *testing.T) {
	inner := &OperationError{Op: "submit dream", Step: "encrypt", Category: CategoryAuthentication, Err: errors.New("x")}
	assert.Equal(t, CategoryAuthentication, categorize(fmt.Errorf("outer: %w", inner)))
}

func TestCategoryMessagesAreDistinct(t *testing.T) {
	seen := map[string]Category{}
	for c := range categoryNames {
		msg := c.Message()
		assert.NotEmpty(t, msg)
		if other, ok := seen[msg]; ok {
			t.Errorf("%s and %s share message %q", c, other, msg)
		}
		seen[msg] = c
	}
}

func TestOperationError(t *testing.T) {
	err := newOperationError("interpret dream", "decrypt", crypto.ErrAuthenticationFailed)

	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
	assert.Equal(t, CategoryAuthentication, err.Category)
	assert.Contains(t, err.Error(), "interpret dream: decrypt failed (authentication)")
	assert.Equal(t, "category(99)", Category(99).String())
}
