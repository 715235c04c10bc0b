package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
	"github.com/MKhiriev/go-dream-cipher/internal/wallet"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// authService is the concrete implementation of AuthService.
// An account proves key ownership by signing a timestamped login message;
// the service answers with a session token whose subject is the account.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService from the token parameters in cfg.
// The returned service is safe for concurrent use.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Login verifies the login signature in req and issues a session token for
// the signing account.
//
// Returns:
//   - ErrInvalidSignature if the signature does not recover to req.Address
//     or the timestamp is outside the login window;
//   - ErrTokenCreationFailed if the token cannot be signed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	account, err := wallet.VerifyLogin(req, a.now())
	if err != nil {
		log.Err(err).Str("address", req.Address).Int64("timestamp", req.Timestamp).Msg("login rejected")
		if errors.Is(err, wallet.ErrLoginExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		}
		return models.Token{}, ErrInvalidSignature
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("account", account.Hex()).Msg("session token issued")
	return token, nil
}

// ParseToken validates a raw session token. Any validation failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
