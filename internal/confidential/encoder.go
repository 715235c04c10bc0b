package confidential

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/models"
)

// SessionSource supplies the session the encoder works with.
type SessionSource interface {
	Current() *Session
}

// Encoder produces encrypted operands through the current session.
type Encoder struct {
	sessions SessionSource
}

// NewEncoder creates an Encoder over sessions.
func NewEncoder(sessions SessionSource) *Encoder {
	return &Encoder{sessions: sessions}
}

// session returns the current session if it is ready and paired with
// account.
func (e *Encoder) session(account common.Address) (*Session, error) {
	s := e.sessions.Current()
	if s == nil {
		return nil, fmt.Errorf("%w: no session", ErrRuntimeNotReady)
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.Key().Account != account {
		return nil, fmt.Errorf("%w: session belongs to %s", ErrRuntimeNotReady, s.Key().Account.Hex())
	}
	return s, nil
}

// EncodeUint32 encrypts value for (contract, account) and returns the
// normalized handle and proof.
func (e *Encoder) EncodeUint32(ctx context.Context, value uint32, contract, account common.Address) (models.EncryptedOperand, error) {
	s, err := e.session(account)
	if err != nil {
		return models.EncryptedOperand{}, err
	}

	raw, err := s.CreateEncryptedInput(contract, account).Add32(value).Encrypt(ctx)
	if err != nil {
		return models.EncryptedOperand{}, err
	}

	handle, err := Normalize(raw.Handles[0])
	if err != nil {
		return models.EncryptedOperand{}, fmt.Errorf("handle: %w", err)
	}
	// 0x + 64 hex chars
	if len(handle) != 2+2*common.HashLength {
		return models.EncryptedOperand{}, ErrInvalidHandleLength
	}

	proof, err := Normalize(raw.InputProof)
	if err != nil {
		return models.EncryptedOperand{}, fmt.Errorf("proof: %w", err)
	}

	return models.EncryptedOperand{Handle: handle, Proof: proof}, nil
}

// DecryptUint32 returns the clear value of handle for account.
func (e *Encoder) DecryptUint32(ctx context.Context, handle common.Hash, contract, account common.Address) (uint64, error) {
	s, err := e.session(account)
	if err != nil {
		return 0, err
	}
	return s.UserDecrypt(ctx, handle, contract)
}
