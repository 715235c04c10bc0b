package confidential

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

var (
	testContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	testAccount  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	otherAccount = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

// fakeBackend is a Backend returning canned values.
type fakeBackend struct {
	metadata      models.RuntimeMetadata
	metadataErr   error
	metadataCalls atomic.Int32

	input      RawInput
	inputErr   error
	lastValues []uint32
	lastUser   common.Address

	value uint64
}

func (f *fakeBackend) Metadata(context.Context) (models.RuntimeMetadata, error) {
	f.metadataCalls.Add(1)
	return f.metadata, f.metadataErr
}

func (f *fakeBackend) EncryptInput(_ context.Context, _, user common.Address, values []uint32) (RawInput, error) {
	f.lastValues = values
	f.lastUser = user
	return f.input, f.inputErr
}

func (f *fakeBackend) UserDecrypt(context.Context, common.Hash, common.Address) (uint64, error) {
	return f.value, nil
}

func readyBackend() *fakeBackend {
	return &fakeBackend{
		metadata: models.RuntimeMetadata{ChainID: 31337, Contract: testContract},
		input: RawInput{
			Handles:    []RawValue{BytesValue(common.HexToHash("0xab").Bytes())},
			InputProof: StringValue("0x01AB"),
		},
		value: 3,
	}
}

func TestSession_InitReady(t *testing.T) {
	b := readyBackend()
	s := NewSession(Key{ChainID: 31337, Account: testAccount}, testContract, b, logger.Nop())
	assert.Equal(t, StateUninitialized, s.State())

	require.NoError(t, s.Init(context.Background()))
	assert.Equal(t, StateReady, s.State())
	assert.Equal(t, testContract, s.Metadata().Contract)
}

func TestSession_InitOnce(t *testing.T) {
	b := readyBackend()
	s := NewSession(Key{ChainID: 31337, Account: testAccount}, testContract, b, logger.Nop())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Init(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), b.metadataCalls.Load())
}

func TestSession_InitFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *fakeBackend)
		wantErr error
	}{
		{"chain mismatch", func(b *fakeBackend) { b.metadata.ChainID = 1 }, ErrChainMismatch},
		{"contract mismatch", func(b *fakeBackend) { b.metadata.Contract = otherAccount }, ErrContractMismatch},
		{"relayer down", func(b *fakeBackend) { b.metadataErr = errors.New("connection refused") }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := readyBackend()
			tt.mutate(b)
			s := NewSession(Key{ChainID: 31337, Account: testAccount}, testContract, b, logger.Nop())

			err := s.Init(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, StateFailed, s.State())

			_, err = s.CreateEncryptedInput(testContract, testAccount).Add32(0).Encrypt(context.Background())
			assert.ErrorIs(t, err, ErrRuntimeNotReady)
		})
	}
}

func TestEncryptedInput_NotReadyBeforeInit(t *testing.T) {
	s := NewSession(Key{ChainID: 31337, Account: testAccount}, testContract, readyBackend(), logger.Nop())

	_, err := s.CreateEncryptedInput(testContract, testAccount).Add32(1).Encrypt(context.Background())
	assert.ErrorIs(t, err, ErrRuntimeNotReady)

	_, err = s.UserDecrypt(context.Background(), common.Hash{}, testContract)
	assert.ErrorIs(t, err, ErrRuntimeNotReady)
}

func TestEncryptedInput_HandleCountMismatch(t *testing.T) {
	b := readyBackend()
	s := NewSession(Key{ChainID: 31337, Account: testAccount}, testContract, b, logger.Nop())
	require.NoError(t, s.Init(context.Background()))

	_, err := s.CreateEncryptedInput(testContract, testAccount).Add32(1).Add32(2).Encrypt(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedHandleCount)
	assert.Equal(t, []uint32{1, 2}, b.lastValues)
}

func TestSessionProvider_RecreatesOnPairingChange(t *testing.T) {
	b := readyBackend()
	resolve := func(uint64) (common.Address, error) { return testContract, nil }
	p := NewSessionProvider(b, resolve, logger.Nop())
	assert.Nil(t, p.Current())

	ctx := context.Background()
	first, err := p.Session(ctx, Key{ChainID: 31337, Account: testAccount})
	require.NoError(t, err)

	same, err := p.Session(ctx, Key{ChainID: 31337, Account: testAccount})
	require.NoError(t, err)
	assert.Same(t, first, same)

	second, err := p.Session(ctx, Key{ChainID: 31337, Account: otherAccount})
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Same(t, second, p.Current())
	assert.Equal(t, testAccount, first.Key().Account, "old session is not mutated")
}

func TestSessionProvider_UnknownChain(t *testing.T) {
	errUnknown := errors.New("unsupported chain")
	p := NewSessionProvider(readyBackend(), func(uint64) (common.Address, error) { return common.Address{}, errUnknown }, logger.Nop())

	_, err := p.Session(context.Background(), Key{ChainID: 5, Account: testAccount})
	assert.ErrorIs(t, err, errUnknown)
	assert.Nil(t, p.Current())
}
