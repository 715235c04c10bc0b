package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/confidential"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

type clientAuthService struct {
	identity Identity
	adapter  adapter.LedgerAdapter
	sessions SessionInitializer
	now      func() time.Time
	logger   *logger.Logger
}

func NewClientAuthService(identity Identity, ledger adapter.LedgerAdapter, sessions SessionInitializer, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		identity: identity,
		adapter:  ledger,
		sessions: sessions,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context) (common.Address, error) {
	const op = "login"

	req, err := a.identity.SignLogin(a.now())
	if err != nil {
		return common.Address{}, newOperationError(op, "sign login message", err)
	}

	if _, err = a.adapter.Login(ctx, req); err != nil {
		return common.Address{}, newOperationError(op, "sign in to ledger", err)
	}

	key := confidential.Key{ChainID: a.identity.ChainID(), Account: a.identity.Address()}
	if _, err = a.sessions.Session(ctx, key); err != nil {
		return common.Address{}, newOperationError(op, "initialize confidential session", err)
	}

	a.logger.Info().Str("func", "*clientAuthService.Login").
		Str("account", key.Account.Hex()).
		Uint64("chain_id", key.ChainID).
		Msg("signed in")

	return key.Account, nil
}
