// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fhe is the development confidential runtime attached to the ledger
// node. It keeps ciphertext values in the clear behind opaque 32-byte
// handles and reproduces the runtime's observable contract:
//   - encrypted inputs are bound by a signed proof to one (contract, user)
//     pair and cannot be replayed for another;
//   - arithmetic only ever produces new handles;
//   - values leave the runtime only through user decryption, which requires
//     an access-list grant for both the user and the contract.
package fhe

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards/eddsa"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// Input is the result of encrypting a batch of values.
type Input struct {
	Handles []common.Hash
	Proof   []byte
}

// Runtime evaluates operations over registered ciphertexts.
type Runtime struct {
	repo     store.CiphertextRepository
	signer   signer
	chainID  uint64
	contract common.Address
	random   io.Reader
	logger   *logger.Logger
}

// NewRuntime creates a runtime serving contract on chainID, with a fresh
// attestation key.
func NewRuntime(repo store.CiphertextRepository, chainID uint64, contract common.Address, log *logger.Logger) (*Runtime, error) {
	key, err := eddsa.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("error generating attestation key: %w", err)
	}

	log.Debug().Str("func", "NewRuntime").Uint64("chain_id", chainID).Str("contract", contract.Hex()).Msg("confidential runtime created")

	return &Runtime{
		repo:     repo,
		signer:   signer{key: key},
		chainID:  chainID,
		contract: contract,
		random:   rand.Reader,
		logger:   log,
	}, nil
}

// Contract returns the address of the contract the runtime serves.
func (r *Runtime) Contract() common.Address {
	return r.contract
}

// Metadata describes the runtime to relayer clients.
func (r *Runtime) Metadata() models.RuntimeMetadata {
	return models.RuntimeMetadata{
		ChainID:      r.chainID,
		Contract:     r.contract,
		VerifyingKey: hexutil.Encode(r.signer.publicKey()),
	}
}

// EncryptInput registers values as euint32 ciphertexts bound to
// (contract, user) and returns their handles with one proof covering all of
// them.
func (r *Runtime) EncryptInput(ctx context.Context, contract, user common.Address, values []uint32) (Input, error) {
	if contract != r.contract {
		return Input{}, ErrContractNotServed
	}
	if len(values) == 0 || len(values) > maxProofHandles {
		return Input{}, ErrTooManyInputs
	}

	nonce := make([]byte, 32)
	if _, err := io.ReadFull(r.random, nonce); err != nil {
		return Input{}, fmt.Errorf("error reading input nonce: %w", err)
	}
	digest := newHandle(TypeUint32, contract.Bytes(), user.Bytes(), nonce)

	handles := make([]common.Hash, len(values))
	for i, v := range values {
		handles[i] = inputHandle(digest.Bytes(), i, r.chainID)
		if err := r.repo.PutCiphertext(ctx, models.Ciphertext{Handle: handles[i], Type: uint8(TypeUint32), Value: uint64(v)}); err != nil {
			return Input{}, fmt.Errorf("error registering input: %w", err)
		}
	}

	sig, err := r.signer.sign(attestedMessage(contract, user, r.chainID, handles))
	if err != nil {
		return Input{}, err
	}

	r.logger.Debug().Str("func", "*Runtime.EncryptInput").
		Str("user", user.Hex()).
		Int("values", len(values)).
		Msg("input encrypted")

	return Input{Handles: handles, Proof: inputProof{Handles: handles, Signature: sig}.bytes()}, nil
}

// VerifyInput checks that proof attests handle for (contract, user) and
// grants contract access to it. It is the only way an external handle
// becomes usable by a contract.
func (r *Runtime) VerifyInput(ctx context.Context, handle common.Hash, proof []byte, contract, user common.Address) (common.Hash, error) {
	p, err := parseInputProof(proof)
	if err != nil {
		return common.Hash{}, err
	}
	if !p.contains(handle) {
		return common.Hash{}, fmt.Errorf("%w: handle not attested", ErrInvalidProof)
	}
	if !r.signer.verify(p.Signature, attestedMessage(contract, user, r.chainID, p.Handles)) {
		return common.Hash{}, fmt.Errorf("%w: signature mismatch", ErrInvalidProof)
	}

	ct, err := r.load(ctx, handle)
	if err != nil {
		return common.Hash{}, err
	}
	if Type(ct.Type) != TypeUint32 {
		return common.Hash{}, ErrTypeMismatch
	}

	if err = r.repo.Allow(ctx, handle, contract); err != nil {
		return common.Hash{}, err
	}

	return handle, nil
}

// TrivialEncrypt registers a public constant as a euint32 ciphertext.
func (r *Runtime) TrivialEncrypt(ctx context.Context, v uint32) (common.Hash, error) {
	return r.store(ctx, TypeUint32, uint64(v), []byte("trivial"), uint64Bytes(uint64(v)))
}

// Add returns a handle to a + b modulo 2^32.
func (r *Runtime) Add(ctx context.Context, a, b common.Hash) (common.Hash, error) {
	x, y, err := r.loadPair(ctx, a, b)
	if err != nil {
		return common.Hash{}, err
	}
	if Type(x.Type) != TypeUint32 || Type(y.Type) != TypeUint32 {
		return common.Hash{}, ErrTypeMismatch
	}

	return r.store(ctx, TypeUint32, x.Value+y.Value, []byte("add"), a.Bytes(), b.Bytes())
}

// Eq returns an ebool handle to a == b.
func (r *Runtime) Eq(ctx context.Context, a, b common.Hash) (common.Hash, error) {
	x, y, err := r.loadPair(ctx, a, b)
	if err != nil {
		return common.Hash{}, err
	}
	if x.Type != y.Type {
		return common.Hash{}, ErrTypeMismatch
	}

	var eq uint64
	if x.Value == y.Value {
		eq = 1
	}
	return r.store(ctx, TypeBool, eq, []byte("eq"), a.Bytes(), b.Bytes())
}

// Select returns a handle to ifTrue when cond holds and to ifFalse otherwise.
func (r *Runtime) Select(ctx context.Context, cond, ifTrue, ifFalse common.Hash) (common.Hash, error) {
	c, err := r.load(ctx, cond)
	if err != nil {
		return common.Hash{}, err
	}
	if Type(c.Type) != TypeBool {
		return common.Hash{}, ErrTypeMismatch
	}

	x, y, err := r.loadPair(ctx, ifTrue, ifFalse)
	if err != nil {
		return common.Hash{}, err
	}
	if x.Type != y.Type {
		return common.Hash{}, ErrTypeMismatch
	}

	chosen := y
	if c.Value != 0 {
		chosen = x
	}
	return r.store(ctx, Type(x.Type), chosen.Value, []byte("select"), cond.Bytes(), ifTrue.Bytes(), ifFalse.Bytes())
}

// Allow grants account access to handle.
func (r *Runtime) Allow(ctx context.Context, handle common.Hash, account common.Address) error {
	if _, err := r.load(ctx, handle); err != nil {
		return err
	}
	return r.repo.Allow(ctx, handle, account)
}

// IsAllowed reports whether account was granted handle.
func (r *Runtime) IsAllowed(ctx context.Context, handle common.Hash, account common.Address) (bool, error) {
	return r.repo.IsAllowed(ctx, handle, account)
}

// UserDecrypt returns the clear value of handle to user. Both the user and
// the contract that produced the handle must hold a grant.
func (r *Runtime) UserDecrypt(ctx context.Context, handle common.Hash, contract, user common.Address) (uint64, error) {
	ct, err := r.load(ctx, handle)
	if err != nil {
		return 0, err
	}

	for _, account := range []common.Address{user, contract} {
		ok, err := r.repo.IsAllowed(ctx, handle, account)
		if err != nil {
			return 0, err
		}
		if !ok {
			r.logger.Warn().Str("func", "*Runtime.UserDecrypt").
				Str("handle", handle.Hex()).
				Str("account", account.Hex()).
				Msg("decryption denied")
			return 0, ErrNotAllowed
		}
	}

	return ct.Value, nil
}

func (r *Runtime) load(ctx context.Context, handle common.Hash) (models.Ciphertext, error) {
	ct, err := r.repo.GetCiphertext(ctx, handle)
	if errors.Is(err, store.ErrCiphertextNotFound) {
		return models.Ciphertext{}, fmt.Errorf("%w: %s", ErrUnknownHandle, handle.Hex())
	}
	return ct, err
}

func (r *Runtime) loadPair(ctx context.Context, a, b common.Hash) (models.Ciphertext, models.Ciphertext, error) {
	x, err := r.load(ctx, a)
	if err != nil {
		return models.Ciphertext{}, models.Ciphertext{}, err
	}
	y, err := r.load(ctx, b)
	if err != nil {
		return models.Ciphertext{}, models.Ciphertext{}, err
	}
	return x, y, nil
}

// store registers a computed value under a fresh handle derived from the
// operation, its operands and a random salt.
func (r *Runtime) store(ctx context.Context, typ Type, value uint64, parts ...[]byte) (common.Hash, error) {
	salt := make([]byte, 32)
	if _, err := io.ReadFull(r.random, salt); err != nil {
		return common.Hash{}, fmt.Errorf("error reading handle salt: %w", err)
	}

	handle := newHandle(typ, append(parts, salt)...)
	ct := models.Ciphertext{Handle: handle, Type: uint8(typ), Value: truncate(typ, value)}
	if err := r.repo.PutCiphertext(ctx, ct); err != nil {
		return common.Hash{}, fmt.Errorf("error registering ciphertext: %w", err)
	}

	return handle, nil
}
