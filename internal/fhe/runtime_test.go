package fhe

import (
	"bytes"
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
)

var (
	contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	s, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	rt, err := NewRuntime(s.CiphertextRepository, 31337, contract, logger.Nop())
	require.NoError(t, err)
	return rt
}

func TestEncryptInput_VerifiesForOwnPair(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	in, err := rt.EncryptInput(ctx, contract, alice, []uint32{7})
	require.NoError(t, err)
	require.Len(t, in.Handles, 1)
	assert.Equal(t, TypeUint32, TypeOf(in.Handles[0]))

	h, err := rt.VerifyInput(ctx, in.Handles[0], in.Proof, contract, alice)
	require.NoError(t, err)
	assert.Equal(t, in.Handles[0], h)

	ok, err := rt.IsAllowed(ctx, h, contract)
	require.NoError(t, err)
	assert.True(t, ok, "verification grants the contract")
}

func TestVerifyInput_RejectsReplay(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	in, err := rt.EncryptInput(ctx, contract, alice, []uint32{1})
	require.NoError(t, err)

	_, err = rt.VerifyInput(ctx, in.Handles[0], in.Proof, contract, bob)
	assert.ErrorIs(t, err, ErrInvalidProof, "another account")

	_, err = rt.VerifyInput(ctx, in.Handles[0], in.Proof, common.HexToAddress("0x01"), alice)
	assert.ErrorIs(t, err, ErrInvalidProof, "another contract")
}

func TestVerifyInput_MalformedProofs(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	in, err := rt.EncryptInput(ctx, contract, alice, []uint32{1})
	require.NoError(t, err)

	other, err := rt.EncryptInput(ctx, contract, alice, []uint32{2})
	require.NoError(t, err)

	tampered := bytes.Clone(in.Proof)
	tampered[len(tampered)-1] ^= 0x01

	cases := map[string][]byte{
		"empty":        nil,
		"zero handles": {0},
		"truncated":    in.Proof[:20],
		"no signature": in.Proof[:1+32],
		"tampered sig": tampered,
		"other proof":  other.Proof,
	}
	for name, proof := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rt.VerifyInput(ctx, in.Handles[0], proof, contract, alice)
			assert.ErrorIs(t, err, ErrInvalidProof)
		})
	}
}

func TestEncryptInput_Errors(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	_, err := rt.EncryptInput(ctx, common.HexToAddress("0x02"), alice, []uint32{1})
	assert.ErrorIs(t, err, ErrContractNotServed)

	_, err = rt.EncryptInput(ctx, contract, alice, nil)
	assert.ErrorIs(t, err, ErrTooManyInputs)
}

func TestArithmetic(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	top, err := rt.TrivialEncrypt(ctx, 0xFFFFFFFF)
	require.NoError(t, err)
	two, err := rt.TrivialEncrypt(ctx, 2)
	require.NoError(t, err)
	zero, err := rt.TrivialEncrypt(ctx, 0)
	require.NoError(t, err)

	sum, err := rt.Add(ctx, top, two)
	require.NoError(t, err)
	require.NoError(t, rt.Allow(ctx, sum, alice))
	require.NoError(t, rt.Allow(ctx, sum, contract))
	v, err := rt.UserDecrypt(ctx, sum, contract, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v, "wraps modulo 2^32")

	isZero, err := rt.Eq(ctx, zero, two)
	require.NoError(t, err)
	assert.Equal(t, TypeBool, TypeOf(isZero))

	picked, err := rt.Select(ctx, isZero, two, zero)
	require.NoError(t, err)
	require.NoError(t, rt.Allow(ctx, picked, alice))
	require.NoError(t, rt.Allow(ctx, picked, contract))
	v, err = rt.UserDecrypt(ctx, picked, contract, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)

	_, err = rt.Add(ctx, isZero, two)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = rt.Select(ctx, two, two, zero)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = rt.Add(ctx, common.HexToHash("0xdead"), two)
	assert.ErrorIs(t, err, ErrUnknownHandle)
}

func TestUserDecrypt_RequiresBothGrants(t *testing.T) {
	rt := newTestRuntime(t)
	ctx := context.Background()

	h, err := rt.TrivialEncrypt(ctx, 5)
	require.NoError(t, err)

	_, err = rt.UserDecrypt(ctx, h, contract, alice)
	assert.ErrorIs(t, err, ErrNotAllowed)

	require.NoError(t, rt.Allow(ctx, h, alice))
	_, err = rt.UserDecrypt(ctx, h, contract, alice)
	assert.ErrorIs(t, err, ErrNotAllowed, "contract grant missing")

	require.NoError(t, rt.Allow(ctx, h, contract))
	v, err := rt.UserDecrypt(ctx, h, contract, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)

	_, err = rt.UserDecrypt(ctx, h, contract, bob)
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestMetadata(t *testing.T) {
	rt := newTestRuntime(t)
	md := rt.Metadata()

	assert.Equal(t, uint64(31337), md.ChainID)
	assert.Equal(t, contract, md.Contract)
	assert.True(t, len(md.VerifyingKey) > 2 && md.VerifyingKey[:2] == "0x")
}
