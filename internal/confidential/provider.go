package confidential

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

// ContractResolver returns the ledger contract deployed on a chain.
type ContractResolver func(chainID uint64) (common.Address, error)

// SessionProvider owns the current Session and replaces it whenever the
// active pairing changes.
type SessionProvider struct {
	backend Backend
	resolve ContractResolver
	logger  *logger.Logger
	mu      sync.Mutex
	current *Session
}

// NewSessionProvider creates a provider with no session.
func NewSessionProvider(backend Backend, resolve ContractResolver, log *logger.Logger) *SessionProvider {
	return &SessionProvider{backend: backend, resolve: resolve, logger: log}
}

// Session returns the initialized session for key, creating a new one when
// key differs from the current session's. A failed session is returned
// together with its error.
func (p *SessionProvider) Session(ctx context.Context, key Key) (*Session, error) {
	p.mu.Lock()
	s := p.current
	if s == nil || s.Key() != key {
		contract, err := p.resolve(key.ChainID)
		if err != nil {
			p.mu.Unlock()
			return nil, err
		}

		if s != nil {
			p.logger.Info().Str("func", "*SessionProvider.Session").
				Str("account", key.Account.Hex()).
				Uint64("chain_id", key.ChainID).
				Msg("pairing changed, recreating confidential session")
		}
		s = NewSession(key, contract, p.backend, p.logger)
		p.current = s
	}
	p.mu.Unlock()

	return s, s.Init(ctx)
}

// Current returns the current session, or nil before the first call to
// Session.
func (p *SessionProvider) Current() *Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}
