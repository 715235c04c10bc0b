package service

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/wallet"
)

const clientKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

var (
	clientContract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	stranger       = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
)

type clientFixture struct {
	wallet  *wallet.Wallet
	ledger  *mock.MockLedgerAdapter
	codec   *mock.MockNoteCodec
	encoder *mock.MockOperandEncoder
	gallery *mock.MockGalleryService
}

func newClientFixture(t *testing.T) *clientFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	w, err := wallet.New(clientKey, config.ChainIDLocal)
	require.NoError(t, err)

	return &clientFixture{
		wallet:  w,
		ledger:  mock.NewMockLedgerAdapter(ctrl),
		codec:   mock.NewMockNoteCodec(ctrl),
		encoder: mock.NewMockOperandEncoder(ctrl),
		gallery: mock.NewMockGalleryService(ctrl),
	}
}

func requireCategory(t *testing.T, err error, want Category) *OperationError {
	t.Helper()

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	require.Equal(t, want, opErr.Category, "unexpected category for %v", err)
	return opErr
}
