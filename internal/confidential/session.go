// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package confidential is the client's view of the confidential runtime:
// a session bound to one (chain, account) pairing and the encoder that turns
// small integers into encrypted operands the ledger accepts.
package confidential

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

//go:generate mockgen -source=session.go -destination=../mock/confidential_mock.go -package=mock

// Backend is the relayer a session talks to.
type Backend interface {
	Metadata(ctx context.Context) (models.RuntimeMetadata, error)
	EncryptInput(ctx context.Context, contract, user common.Address, values []uint32) (RawInput, error)
	UserDecrypt(ctx context.Context, handle common.Hash, contract common.Address) (uint64, error)
}

// State is the lifecycle state of a Session.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// Key identifies the pairing a session is created for.
type Key struct {
	ChainID uint64
	Account common.Address
}

// Session is a confidential-computing session for one Key. It moves from
// uninitialized through loading to ready or failed exactly once and is never
// re-keyed; a new pairing gets a new Session.
type Session struct {
	key      Key
	contract common.Address
	backend  Backend
	logger   *logger.Logger

	once     sync.Once
	mu       sync.RWMutex
	state    State
	err      error
	metadata models.RuntimeMetadata
}

// NewSession creates an uninitialized session for key that expects the
// relayer to serve contract.
func NewSession(key Key, contract common.Address, backend Backend, log *logger.Logger) *Session {
	return &Session{
		key:      key,
		contract: contract,
		backend:  backend,
		logger:   log,
	}
}

// Init loads the runtime metadata. Only the first call does any work;
// later calls return the outcome of the first.
func (s *Session) Init(ctx context.Context) error {
	s.once.Do(func() {
		s.setState(StateLoading, nil)

		md, err := s.backend.Metadata(ctx)
		switch {
		case err != nil:
			err = fmt.Errorf("error loading runtime metadata: %w", err)
		case md.ChainID != s.key.ChainID:
			err = fmt.Errorf("%w: relayer %d, wallet %d", ErrChainMismatch, md.ChainID, s.key.ChainID)
		case md.Contract != s.contract:
			err = fmt.Errorf("%w: relayer %s, configured %s", ErrContractMismatch, md.Contract.Hex(), s.contract.Hex())
		}

		if err != nil {
			s.logger.Err(err).Str("func", "*Session.Init").Uint64("chain_id", s.key.ChainID).Msg("confidential session failed")
			s.setState(StateFailed, err)
			return
		}

		s.mu.Lock()
		s.metadata = md
		s.mu.Unlock()
		s.setState(StateReady, nil)
		s.logger.Info().Str("func", "*Session.Init").
			Uint64("chain_id", s.key.ChainID).
			Str("account", s.key.Account.Hex()).
			Msg("confidential session ready")
	})

	return s.Err()
}

func (s *Session) setState(state State, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.err = err
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err returns the initialization error of a failed session.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Key returns the pairing the session was created for.
func (s *Session) Key() Key {
	return s.key
}

// Contract returns the contract the session was validated against.
func (s *Session) Contract() common.Address {
	return s.contract
}

// Metadata returns the runtime metadata loaded by Init.
func (s *Session) Metadata() models.RuntimeMetadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metadata
}

func (s *Session) ready() error {
	if state := s.State(); state != StateReady {
		return fmt.Errorf("%w: session is %s", ErrRuntimeNotReady, state)
	}
	return nil
}

// CreateEncryptedInput starts an input bound to (contract, account).
func (s *Session) CreateEncryptedInput(contract, account common.Address) *EncryptedInput {
	return &EncryptedInput{session: s, contract: contract, account: account}
}

// UserDecrypt asks the relayer for the clear value of handle.
func (s *Session) UserDecrypt(ctx context.Context, handle common.Hash, contract common.Address) (uint64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return s.backend.UserDecrypt(ctx, handle, contract)
}

// EncryptedInput collects values to encrypt in one batch.
type EncryptedInput struct {
	session  *Session
	contract common.Address
	account  common.Address
	values   []uint32
}

// Add32 appends a 32-bit value.
func (in *EncryptedInput) Add32(v uint32) *EncryptedInput {
	in.values = append(in.values, v)
	return in
}

// Encrypt sends the collected values to the runtime.
func (in *EncryptedInput) Encrypt(ctx context.Context) (RawInput, error) {
	if err := in.session.ready(); err != nil {
		return RawInput{}, err
	}

	raw, err := in.session.backend.EncryptInput(ctx, in.contract, in.account, in.values)
	if err != nil {
		return RawInput{}, err
	}
	if len(raw.Handles) != len(in.values) {
		return RawInput{}, fmt.Errorf("%w: got %d, want %d", ErrUnexpectedHandleCount, len(raw.Handles), len(in.values))
	}

	return raw, nil
}
