package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// Identity is the wallet as the client services see it: the active account,
// its chain and the login signature.
type Identity interface {
	Address() common.Address
	ChainID() uint64
	// Seed is the key seed of the note codec.
	Seed() string
	SignLogin(ts time.Time) (models.LoginRequest, error)
}

// OperandEncoder produces and opens confidential operands through the
// current confidential session.
type OperandEncoder interface {
	EncodeUint32(ctx context.Context, value uint32, contract, account common.Address) (models.EncryptedOperand, error)
	DecryptUint32(ctx context.Context, handle common.Hash, contract, account common.Address) (uint64, error)
}

// SessionInitializer returns the initialized confidential session for a
// (chain, account) pairing.
type SessionInitializer interface {
	Session(ctx context.Context, key confidential.Key) (*confidential.Session, error)
}

// ClientAuthService signs the wallet in to the ledger node and prepares the
// confidential session for the account.
type ClientAuthService interface {
	// Login signs a login message, stores the session token and initializes
	// the confidential session for (chain, account).
	Login(ctx context.Context) (common.Address, error)
}

// SubmissionService creates notes.
type SubmissionService interface {
	// Submit validates the draft, encrypts it under the owner's seed,
	// attaches an encrypted zero and records the note on the ledger.
	Submit(ctx context.Context, draft models.NoteDraft) (models.Receipt, error)
}

// InterpretationService reads one's own notes.
type InterpretationService interface {
	// Interpret decrypts note id for its owner and records the
	// interpretation by incrementing the note's encrypted counter.
	Interpret(ctx context.Context, id uint64) (models.Interpretation, error)

	// History returns the interpretations recorded for note id, oldest
	// first, as read from the ledger's event log.
	History(ctx context.Context, id uint64) ([]models.Event, error)
}

// GalleryService builds the aggregate view of the ledger.
type GalleryService interface {
	// Refresh rebuilds the snapshot from scratch. A note that cannot be
	// fetched is recorded in Snapshot.Failed and skipped.
	Refresh(ctx context.Context) (models.Snapshot, error)

	// Snapshot returns the last snapshot built by Refresh.
	Snapshot() models.Snapshot
}

// GalleryJob refreshes the gallery in the background.
type GalleryJob interface {
	// Start launches the refresh goroutine. It refreshes every interval,
	// defaulting to DefaultRefreshInterval if interval is zero or negative.
	// Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
