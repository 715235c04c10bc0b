// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/crypto"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/validators"
	"github.com/MKhiriev/go-dream-cipher/models"
)

type submissionService struct {
	identity  Identity
	codec     crypto.NoteCodec
	encoder   OperandEncoder
	ledger    adapter.LedgerAdapter
	gallery   GalleryService
	validator validators.Validator
	contract  common.Address
	logger    *logger.Logger
}

// NewSubmissionService wires the submission flow. gallery is refreshed after
// every accepted note and may be nil.
func NewSubmissionService(identity Identity, codec crypto.NoteCodec, encoder OperandEncoder, ledger adapter.LedgerAdapter, gallery GalleryService, contract common.Address, logger *logger.Logger) SubmissionService {
	return &submissionService{
		identity:  identity,
		codec:     codec,
		encoder:   encoder,
		ledger:    ledger,
		gallery:   gallery,
		validator: validators.NewNoteValidator(),
		contract:  contract,
		logger:    logger,
	}
}

// Submit runs validate, encrypt, encode and submit in that order and stops
// at the first failing step. The text is encrypted exactly as typed.
func (s *submissionService) Submit(ctx context.Context, draft models.NoteDraft) (models.Receipt, error) {
	const op = "submit dream"

	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Receipt{}, newOperationError(op, "validate", err)
	}
	if s.ledger.Token() == "" {
		return models.Receipt{}, newOperationError(op, "check session", ErrNotLoggedIn)
	}

	owner := s.identity.Address()

	envelope, err := s.codec.Encrypt(draft.Text, s.identity.Seed())
	if err != nil {
		return models.Receipt{}, newOperationError(op, "encrypt", err)
	}

	operand, err := s.encoder.EncodeUint32(ctx, 0, s.contract, owner)
	if err != nil {
		return models.Receipt{}, newOperationError(op, "encode initial count", err)
	}

	receipt, err := s.ledger.Submit(ctx, models.SubmitRequest{
		EncryptedBody: hexutil.Encode([]byte(envelope)),
		Operand:       operand,
	})
	if err != nil {
		return models.Receipt{}, newOperationError(op, "submit", err)
	}

	s.logger.Info().Str("func", "*submissionService.Submit").
		Uint64("id", receipt.NoteID).
		Str("tx", receipt.TxHash.Hex()).
		Msg("dream submitted")

	refreshAfterWrite(ctx, s.gallery, s.logger)
	return receipt, nil
}

// refreshAfterWrite rebuilds the gallery after a committed write. A failed
// refresh does not fail the write.
func refreshAfterWrite(ctx context.Context, gallery GalleryService, log *logger.Logger) {
	if gallery == nil {
		return
	}
	if _, err := gallery.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("gallery refresh after write failed")
	}
}
