package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/wallet"
)

func newTestAuthService() AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "dream-ledger",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_LoginIssuesTokenForSigner(t *testing.T) {
	svc := newTestAuthService()
	w, err := wallet.New("", config.ChainIDLocal)
	require.NoError(t, err)

	req, err := w.SignLogin(time.Now())
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), token.Account)
	assert.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, w.Address(), parsed.Account)
}

func TestAuthService_LoginRejections(t *testing.T) {
	svc := newTestAuthService()
	w, err := wallet.New("", config.ChainIDLocal)
	require.NoError(t, err)
	other, err := wallet.New("", config.ChainIDLocal)
	require.NoError(t, err)

	t.Run("stale timestamp", func(t *testing.T) {
		req, err := w.SignLogin(time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("address of another account", func(t *testing.T) {
		req, err := w.SignLogin(time.Now())
		require.NoError(t, err)
		req.Address = other.Address().Hex()

		_, err = svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})
}

func TestAuthService_ParseTokenRejectsForeignKey(t *testing.T) {
	w, err := wallet.New("", config.ChainIDLocal)
	require.NoError(t, err)
	req, err := w.SignLogin(time.Now())
	require.NoError(t, err)

	foreign := NewAuthService(config.App{TokenSignKey: "other", TokenIssuer: "dream-ledger", TokenDuration: time.Hour}, logger.Nop())
	token, err := foreign.Login(context.Background(), req)
	require.NoError(t, err)

	_, err = newTestAuthService().ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
