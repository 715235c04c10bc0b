package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/fhe"
	"github.com/MKhiriev/go-dream-cipher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// LedgerService is the note ledger state machine. Reads are pure; each
// accepted write returns a receipt with the events it emitted.
type LedgerService interface {
	// Submit records a new note owned by owner. The encrypted body must be
	// non-empty and the operand must carry a valid proof for owner.
	Submit(ctx context.Context, owner common.Address, req models.SubmitRequest) (models.Receipt, error)

	GetCount(ctx context.Context) (uint64, error)
	GetCountByOwner(ctx context.Context, owner common.Address) (uint64, error)
	GetIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error)
	GetMeta(ctx context.Context, id uint64) (models.NoteMeta, error)
	GetData(ctx context.Context, id uint64) ([]byte, error)
	GetInterpretationCount(ctx context.Context, id uint64) (common.Hash, error)

	// IncrementInterpretationCount homomorphically adds the operand to the
	// counter of note id. Any account may call it.
	IncrementInterpretationCount(ctx context.Context, interpreter common.Address, id uint64, req models.IncrementRequest) (models.Receipt, error)

	// Events returns up to limit log entries after fromSeq.
	Events(ctx context.Context, fromSeq, limit uint64) ([]models.Event, error)
}

// RelayerService exposes the confidential runtime to clients.
type RelayerService interface {
	Metadata(ctx context.Context) models.RuntimeMetadata
	EncryptInput(ctx context.Context, req models.InputRequest) (models.InputResponse, error)
	UserDecrypt(ctx context.Context, user common.Address, req models.DecryptRequest) (uint64, error)
}

// AuthService issues session tokens to accounts that prove key ownership.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build information of the node.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ConfidentialRuntime is the part of the confidential runtime the ledger
// and the relayer use.
type ConfidentialRuntime interface {
	Contract() common.Address
	Metadata() models.RuntimeMetadata
	EncryptInput(ctx context.Context, contract, user common.Address, values []uint32) (fhe.Input, error)
	VerifyInput(ctx context.Context, handle common.Hash, proof []byte, contract, user common.Address) (common.Hash, error)
	TrivialEncrypt(ctx context.Context, v uint32) (common.Hash, error)
	Add(ctx context.Context, a, b common.Hash) (common.Hash, error)
	Eq(ctx context.Context, a, b common.Hash) (common.Hash, error)
	Select(ctx context.Context, cond, ifTrue, ifFalse common.Hash) (common.Hash, error)
	Allow(ctx context.Context, handle common.Hash, account common.Address) error
	UserDecrypt(ctx context.Context, handle common.Hash, contract, user common.Address) (uint64, error)
}

// LedgerServiceWrapper decorates a LedgerService with extra behavior such as
// request validation.
type LedgerServiceWrapper interface {
	Wrap(LedgerService) LedgerService
}
