package service

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/internal/crypto"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

// ClientServices groups the services the client application runs on.
type ClientServices struct {
	AuthService           ClientAuthService
	SubmissionService     SubmissionService
	InterpretationService InterpretationService
	GalleryService        GalleryService
	GalleryJob            GalleryJob
	Sessions              *confidential.SessionProvider
	Contract              common.Address
}

// NewClientServices builds the client services around identity and the
// ledger adapter. A session for another chain resolves its contract from the
// chain table.
func NewClientServices(identity Identity, ledger adapter.Adapter, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	if identity.ChainID() != cfg.Wallet.ChainID {
		return nil, fmt.Errorf("%w: wallet on chain %d, config on chain %d", confidential.ErrChainMismatch, identity.ChainID(), cfg.Wallet.ChainID)
	}
	contract := cfg.Wallet.Contract

	sessions := confidential.NewSessionProvider(ledger, func(chainID uint64) (common.Address, error) {
		if chainID == cfg.Wallet.ChainID {
			return contract, nil
		}
		return config.ContractAddress(chainID)
	}, logger)
	encoder := confidential.NewEncoder(sessions)
	codec := crypto.NewNoteCodec()

	gallery := NewGalleryService(ledger, encoder, identity, contract, cfg.Workers.FetchConcurrency, logger)

	return &ClientServices{
		AuthService:           NewClientAuthService(identity, ledger, sessions, logger),
		SubmissionService:     NewSubmissionService(identity, codec, encoder, ledger, gallery, contract, logger),
		InterpretationService: NewInterpretationService(identity, codec, encoder, ledger, gallery, contract, logger),
		GalleryService:        gallery,
		GalleryJob:            NewGalleryJob(gallery, logger),
		Sessions:              sessions,
		Contract:              contract,
	}, nil
}
