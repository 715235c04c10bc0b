package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/go-dream-cipher/internal/fhe"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/validators"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// relayerService turns relayer requests into confidential runtime calls.
type relayerService struct {
	runtime   ConfidentialRuntime
	validator validators.Validator
	logger    *logger.Logger
}

func NewRelayerService(runtime ConfidentialRuntime, logger *logger.Logger) RelayerService {
	return &relayerService{
		runtime:   runtime,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

func (s *relayerService) Metadata(ctx context.Context) models.RuntimeMetadata {
	return s.runtime.Metadata()
}

// EncryptInput encrypts req.Values for (req.Contract, req.User) and returns
// the handles with their proof as 0x-hex strings.
func (s *relayerService) EncryptInput(ctx context.Context, req models.InputRequest) (models.InputResponse, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.InputResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	input, err := s.runtime.EncryptInput(ctx, common.HexToAddress(req.Contract), common.HexToAddress(req.User), req.Values)
	if err != nil {
		if errors.Is(err, fhe.ErrContractNotServed) {
			return models.InputResponse{}, ErrContractNotServed
		}
		return models.InputResponse{}, fmt.Errorf("error encrypting input: %w", err)
	}

	handles := make([]string, len(input.Handles))
	for i, h := range input.Handles {
		handles[i] = h.Hex()
	}

	return models.InputResponse{Handles: handles, InputProof: hexutil.Encode(input.Proof)}, nil
}

// UserDecrypt returns the clear value of req.Handle to user.
//
// Returns ErrNotAllowedToDecrypt when the handle is unknown or when user or
// the contract lacks a grant.
func (s *relayerService) UserDecrypt(ctx context.Context, user common.Address, req models.DecryptRequest) (uint64, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	contract := common.HexToAddress(req.Contract)
	if contract != s.runtime.Contract() {
		return 0, ErrContractNotServed
	}

	value, err := s.runtime.UserDecrypt(ctx, common.HexToHash(req.Handle), contract, user)
	if err != nil {
		if errors.Is(err, fhe.ErrNotAllowed) || errors.Is(err, fhe.ErrUnknownHandle) {
			logger.FromContext(ctx).Warn().Str("user", user.Hex()).Str("handle", req.Handle).Msg("user decryption denied")
			return 0, ErrNotAllowedToDecrypt
		}
		return 0, fmt.Errorf("error decrypting handle: %w", err)
	}

	return value, nil
}
