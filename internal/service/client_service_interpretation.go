package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/crypto"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

type interpretationService struct {
	identity Identity
	codec    crypto.NoteCodec
	encoder  OperandEncoder
	ledger   adapter.LedgerAdapter
	gallery  GalleryService
	contract common.Address
	logger   *logger.Logger
}

func NewInterpretationService(identity Identity, codec crypto.NoteCodec, encoder OperandEncoder, ledger adapter.LedgerAdapter, gallery GalleryService, contract common.Address, logger *logger.Logger) InterpretationService {
	return &interpretationService{
		identity: identity,
		codec:    codec,
		encoder:  encoder,
		ledger:   ledger,
		gallery:  gallery,
		contract: contract,
		logger:   logger,
	}
}

// Interpret reads note id, checks that the active account owns it, decrypts
// the body and records one interpretation. The counter is never incremented
// when decryption fails.
func (s *interpretationService) Interpret(ctx context.Context, id uint64) (models.Interpretation, error) {
	const op = "interpret dream"

	if s.ledger.Token() == "" {
		return models.Interpretation{}, newOperationError(op, "check session", ErrNotLoggedIn)
	}

	data, err := s.ledger.GetData(ctx, id)
	if err != nil {
		return models.Interpretation{}, newOperationError(op, "read data", err)
	}

	meta, err := s.ledger.GetMeta(ctx, id)
	if err != nil {
		return models.Interpretation{}, newOperationError(op, "read meta", err)
	}

	reader := s.identity.Address()
	if meta.Owner != reader {
		return models.Interpretation{}, newOperationError(op, "check owner", ErrNotOwner)
	}

	text, err := s.codec.Decrypt(string(data), s.identity.Seed())
	if err != nil {
		return models.Interpretation{}, newOperationError(op, "decrypt", err)
	}

	operand, err := s.encoder.EncodeUint32(ctx, 1, s.contract, reader)
	if err != nil {
		return models.Interpretation{}, newOperationError(op, "encode increment", err)
	}

	receipt, err := s.ledger.IncrementInterpretationCount(ctx, id, models.IncrementRequest{Operand: operand})
	if err != nil {
		return models.Interpretation{}, newOperationError(op, "increment interpretation count", err)
	}

	s.logger.Info().Str("func", "*interpretationService.Interpret").
		Uint64("id", id).
		Str("tx", receipt.TxHash.Hex()).
		Msg("dream interpreted")

	refreshAfterWrite(ctx, s.gallery, s.logger)
	return models.Interpretation{ID: id, Text: text, Receipt: receipt}, nil
}

// History pages through the ledger's event log and keeps the
// InterpretationCountIncremented events of note id. Paging stops at the
// first empty page or when the node stops advancing the sequence.
func (s *interpretationService) History(ctx context.Context, id uint64) ([]models.Event, error) {
	const op = "read history"

	var (
		history []models.Event
		from    uint64
	)
	for {
		events, err := s.ledger.Events(ctx, from)
		if err != nil {
			return nil, newOperationError(op, "read events", err)
		}
		if len(events) == 0 {
			return history, nil
		}

		for _, event := range events {
			if event.NoteID == id && event.Name == models.EventInterpretationCountIncremented {
				history = append(history, event)
			}
		}

		last := events[len(events)-1].Seq
		if last <= from {
			s.logger.Warn().Str("func", "*interpretationService.History").
				Uint64("from", from).
				Uint64("last", last).
				Msg("event log did not advance")
			return history, nil
		}
		from = last
	}
}
