// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the ledger node.
//
// [LedgerAdapter] is the typed boundary over the ledger contract: only
// primitives and byte sequences cross it. [RelayerAdapter] reaches the
// confidential runtime's relayer endpoints and satisfies
// confidential.Backend. The HTTP implementation ([NewHTTPLedgerAdapter])
// serves both.
//
// Rejected calls come back as the sentinel errors in errors.go. The revert
// reason in the response body is matched first; the status code is the
// fallback, so callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter is the client's view of the note ledger.
type LedgerAdapter interface {
	// SetToken stores the session token attached to authenticated calls.
	SetToken(token string)

	// Token returns the stored session token or "".
	Token() string

	// Login exchanges a signed login message for a session token and
	// stores it via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Submit records a new note for the signed-in account.
	Submit(ctx context.Context, req models.SubmitRequest) (models.Receipt, error)

	GetCount(ctx context.Context) (uint64, error)
	GetCountByOwner(ctx context.Context, owner common.Address) (uint64, error)
	GetIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error)
	GetMeta(ctx context.Context, id uint64) (models.NoteMeta, error)
	GetData(ctx context.Context, id uint64) ([]byte, error)
	GetInterpretationCount(ctx context.Context, id uint64) (common.Hash, error)

	// IncrementInterpretationCount adds the operand to the counter of note id
	// on behalf of the signed-in account.
	IncrementInterpretationCount(ctx context.Context, id uint64, req models.IncrementRequest) (models.Receipt, error)

	// Events returns the ledger events with a sequence number above fromSeq.
	Events(ctx context.Context, fromSeq uint64) ([]models.Event, error)
}

// RelayerAdapter reaches the relayer of the confidential runtime.
type RelayerAdapter interface {
	Metadata(ctx context.Context) (models.RuntimeMetadata, error)
	EncryptInput(ctx context.Context, contract, user common.Address, values []uint32) (confidential.RawInput, error)
	UserDecrypt(ctx context.Context, handle common.Hash, contract common.Address) (uint64, error)
}

// Adapter is the full client transport.
type Adapter interface {
	LedgerAdapter
	RelayerAdapter
}

var _ confidential.Backend = (RelayerAdapter)(nil)
