package confidential

import (
	"context"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

func newReadyEncoder(t *testing.T, b *fakeBackend) *Encoder {
	t.Helper()
	p := NewSessionProvider(b, func(uint64) (common.Address, error) { return testContract, nil }, logger.Nop())
	_, err := p.Session(context.Background(), Key{ChainID: 31337, Account: testAccount})
	require.NoError(t, err)
	return NewEncoder(p)
}

func TestEncodeUint32_NormalizesOutput(t *testing.T) {
	b := readyBackend()
	e := newReadyEncoder(t, b)

	op, err := e.EncodeUint32(context.Background(), 0, testContract, testAccount)
	require.NoError(t, err)

	assert.Equal(t, common.HexToHash("0xab").Hex(), op.Handle)
	assert.Equal(t, "0x01ab", op.Proof)
	assert.Equal(t, []uint32{0}, b.lastValues)
	assert.Equal(t, testAccount, b.lastUser)
}

func TestEncodeUint32_StringHandle(t *testing.T) {
	b := readyBackend()
	b.input.Handles = []RawValue{StringValue(strings.ToUpper(common.HexToHash("0xcd").Hex()[2:]))}
	e := newReadyEncoder(t, b)

	op, err := e.EncodeUint32(context.Background(), 1, testContract, testAccount)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0xcd").Hex(), op.Handle)
}

func TestEncodeUint32_ShortHandle(t *testing.T) {
	b := readyBackend()
	b.input.Handles = []RawValue{BytesValue([]byte{1, 2, 3})}
	e := newReadyEncoder(t, b)

	_, err := e.EncodeUint32(context.Background(), 1, testContract, testAccount)
	assert.ErrorIs(t, err, ErrInvalidHandleLength)
}

func TestEncodeUint32_NotReady(t *testing.T) {
	p := NewSessionProvider(readyBackend(), func(uint64) (common.Address, error) { return testContract, nil }, logger.Nop())
	e := NewEncoder(p)

	_, err := e.EncodeUint32(context.Background(), 0, testContract, testAccount)
	assert.ErrorIs(t, err, ErrRuntimeNotReady, "no session")

	_, err = newReadyEncoder(t, readyBackend()).EncodeUint32(context.Background(), 0, testContract, otherAccount)
	assert.ErrorIs(t, err, ErrRuntimeNotReady, "session bound to another account")
}

func TestDecryptUint32(t *testing.T) {
	e := newReadyEncoder(t, readyBackend())

	v, err := e.DecryptUint32(context.Background(), common.HexToHash("0x01"), testContract, testAccount)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)
}
