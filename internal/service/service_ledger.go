// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-dream-cipher/internal/fhe"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// MaxEventsPage bounds the events returned by one Events call.
const MaxEventsPage = 500

// ledgerService is the concrete implementation of LedgerService.
//
// Writes go through a single sequencer lock: a submission or an increment
// runs from proof verification to the committed event without another
// write interleaving. The store allocates ids inside the same transaction
// that inserts the note, so ids are dense and start at zero.
type ledgerService struct {
	notes   store.NoteRepository
	events  store.EventRepository
	runtime ConfidentialRuntime
	gas     *GasMeter

	sequencer sync.Mutex
	now       func() time.Time

	logger *logger.Logger
}

// NewLedgerService constructs the ledger state machine over the given
// repositories and confidential runtime.
func NewLedgerService(notes store.NoteRepository, events store.EventRepository, runtime ConfidentialRuntime, gas *GasMeter, logger *logger.Logger) LedgerService {
	return &ledgerService{
		notes:   notes,
		events:  events,
		runtime: runtime,
		gas:     gas,
		now:     time.Now,
		logger:  logger,
	}
}

// Submit records a note owned by owner.
//
// The operand is verified against (contract, owner) and then clamped to an
// encrypted zero, so the stored counter always starts at zero whatever the
// caller encrypted. The counter is granted to the contract and to owner.
//
// Returns:
//   - ErrInsufficientFunds when owner has no gas left;
//   - ErrEmptyDreamData when the body is empty;
//   - ErrInvalidInputProof when the operand does not verify.
func (s *ledgerService) Submit(ctx context.Context, owner common.Address, req models.SubmitRequest) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	receipt, err := s.submit(ctx, owner, req)
	if err != nil {
		revertedCalls.WithLabelValues("submit", revertReason(err)).Inc()
		log.Err(err).Str("owner", owner.Hex()).Msg("dream submission reverted")
		return models.Receipt{}, err
	}

	notesSubmitted.Inc()
	log.Info().Uint64("id", receipt.NoteID).Str("owner", owner.Hex()).Msg("dream submitted")
	return receipt, nil
}

func (s *ledgerService) submit(ctx context.Context, owner common.Address, req models.SubmitRequest) (models.Receipt, error) {
	if !s.gas.Charge(owner) {
		return models.Receipt{}, ErrInsufficientFunds
	}

	body, err := decodeBody(req.EncryptedBody)
	if err != nil {
		return models.Receipt{}, err
	}

	handle, proof, err := decodeOperand(req.Operand)
	if err != nil {
		return models.Receipt{}, err
	}

	s.sequencer.Lock()
	defer s.sequencer.Unlock()

	operand, err := s.verify(ctx, handle, proof, owner)
	if err != nil {
		return models.Receipt{}, err
	}

	// The clamp and the grants register ciphertexts outside the note
	// transaction. If CreateNote fails they stay in the runtime with no note
	// pointing at them; nothing reads a handle that no note references.
	zero, err := s.runtime.TrivialEncrypt(ctx, 0)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error encrypting zero: %w", err)
	}
	isZero, err := s.runtime.Eq(ctx, operand, zero)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error comparing operand: %w", err)
	}
	count, err := s.runtime.Select(ctx, isZero, operand, zero)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error clamping operand: %w", err)
	}

	if err = s.grant(ctx, count, owner); err != nil {
		return models.Receipt{}, err
	}

	note, event, err := s.notes.CreateNote(ctx, models.Note{
		Owner:               owner,
		CreatedAt:           uint64(s.now().Unix()),
		EncryptedBody:       body,
		InterpretationCount: count,
	})
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error storing dream: %w", err)
	}

	return newReceipt(note.ID, event), nil
}

// IncrementInterpretationCount adds the operand to the counter of note id.
// The new counter is granted to the contract and to the note owner.
//
// Returns:
//   - ErrInsufficientFunds when interpreter has no gas left;
//   - ErrDreamDoesNotExist when id was never allocated;
//   - ErrInvalidInputProof when the operand does not verify.
func (s *ledgerService) IncrementInterpretationCount(ctx context.Context, interpreter common.Address, id uint64, req models.IncrementRequest) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	receipt, err := s.increment(ctx, interpreter, id, req)
	if err != nil {
		revertedCalls.WithLabelValues("increment", revertReason(err)).Inc()
		log.Err(err).Uint64("id", id).Str("interpreter", interpreter.Hex()).Msg("interpretation increment reverted")
		return models.Receipt{}, err
	}

	interpretationsRecorded.Inc()
	log.Info().Uint64("id", id).Str("interpreter", interpreter.Hex()).Msg("interpretation recorded")
	return receipt, nil
}

func (s *ledgerService) increment(ctx context.Context, interpreter common.Address, id uint64, req models.IncrementRequest) (models.Receipt, error) {
	if !s.gas.Charge(interpreter) {
		return models.Receipt{}, ErrInsufficientFunds
	}

	handle, proof, err := decodeOperand(req.Operand)
	if err != nil {
		return models.Receipt{}, err
	}

	s.sequencer.Lock()
	defer s.sequencer.Unlock()

	note, err := s.getNote(ctx, id)
	if err != nil {
		return models.Receipt{}, err
	}

	operand, err := s.verify(ctx, handle, proof, interpreter)
	if err != nil {
		return models.Receipt{}, err
	}

	sum, err := s.runtime.Add(ctx, note.InterpretationCount, operand)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("error adding operand: %w", err)
	}

	if err = s.grant(ctx, sum, note.Owner); err != nil {
		return models.Receipt{}, err
	}

	event, err := s.notes.UpdateInterpretationCount(ctx, id, sum, interpreter, uint64(s.now().Unix()))
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Receipt{}, ErrDreamDoesNotExist
		}
		return models.Receipt{}, fmt.Errorf("error storing interpretation count: %w", err)
	}

	return newReceipt(id, event), nil
}

func (s *ledgerService) GetCount(ctx context.Context) (uint64, error) {
	count, err := s.notes.CountNotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting dreams: %w", err)
	}
	return count, nil
}

func (s *ledgerService) GetCountByOwner(ctx context.Context, owner common.Address) (uint64, error) {
	count, err := s.notes.CountNotesByOwner(ctx, owner)
	if err != nil {
		return 0, fmt.Errorf("error counting dreams of %s: %w", owner.Hex(), err)
	}
	return count, nil
}

func (s *ledgerService) GetIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error) {
	ids, err := s.notes.ListIDsByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing dreams of %s: %w", owner.Hex(), err)
	}
	return ids, nil
}

func (s *ledgerService) GetMeta(ctx context.Context, id uint64) (models.NoteMeta, error) {
	note, err := s.getNote(ctx, id)
	if err != nil {
		return models.NoteMeta{}, err
	}
	return note.Meta(), nil
}

func (s *ledgerService) GetData(ctx context.Context, id uint64) ([]byte, error) {
	note, err := s.getNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return note.EncryptedBody, nil
}

func (s *ledgerService) GetInterpretationCount(ctx context.Context, id uint64) (common.Hash, error) {
	note, err := s.getNote(ctx, id)
	if err != nil {
		return common.Hash{}, err
	}
	return note.InterpretationCount, nil
}

// Events returns up to limit events after fromSeq. A zero limit or one above
// MaxEventsPage is treated as MaxEventsPage.
func (s *ledgerService) Events(ctx context.Context, fromSeq, limit uint64) ([]models.Event, error) {
	if limit == 0 || limit > MaxEventsPage {
		limit = MaxEventsPage
	}

	events, err := s.events.ListEvents(ctx, fromSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

func (s *ledgerService) getNote(ctx context.Context, id uint64) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, ErrDreamDoesNotExist
		}
		return models.Note{}, fmt.Errorf("error reading dream %d: %w", id, err)
	}
	return note, nil
}

func (s *ledgerService) verify(ctx context.Context, handle common.Hash, proof []byte, user common.Address) (common.Hash, error) {
	operand, err := s.runtime.VerifyInput(ctx, handle, proof, s.runtime.Contract(), user)
	if err != nil {
		if errors.Is(err, fhe.ErrInvalidProof) || errors.Is(err, fhe.ErrUnknownHandle) || errors.Is(err, fhe.ErrTypeMismatch) {
			return common.Hash{}, fmt.Errorf("%w: %w", ErrInvalidInputProof, err)
		}
		return common.Hash{}, fmt.Errorf("error verifying input: %w", err)
	}
	return operand, nil
}

// grant opens handle to the contract and to owner.
func (s *ledgerService) grant(ctx context.Context, handle common.Hash, owner common.Address) error {
	if err := s.runtime.Allow(ctx, handle, s.runtime.Contract()); err != nil {
		return fmt.Errorf("error granting contract access: %w", err)
	}
	if err := s.runtime.Allow(ctx, handle, owner); err != nil {
		return fmt.Errorf("error granting owner access: %w", err)
	}
	return nil
}

func decodeBody(encoded string) ([]byte, error) {
	if encoded == "" || encoded == "0x" {
		return nil, ErrEmptyDreamData
	}

	body, err := hexutil.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: encrypted body: %w", ErrInvalidDataProvided, err)
	}
	return body, nil
}

func decodeOperand(operand models.EncryptedOperand) (common.Hash, []byte, error) {
	raw, err := hexutil.Decode(operand.Handle)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, nil, fmt.Errorf("%w: malformed handle", ErrInvalidInputProof)
	}

	proof, err := hexutil.Decode(operand.Proof)
	if err != nil {
		return common.Hash{}, nil, fmt.Errorf("%w: malformed proof", ErrInvalidInputProof)
	}

	return common.BytesToHash(raw), proof, nil
}

// newReceipt wraps event into a receipt whose hash commits to the event.
func newReceipt(id uint64, event models.Event) models.Receipt {
	buf := make([]byte, 0, 64+common.AddressLength)
	buf = append(buf, event.Name...)
	buf = binary.BigEndian.AppendUint64(buf, event.Seq)
	buf = binary.BigEndian.AppendUint64(buf, event.NoteID)
	buf = append(buf, event.Account.Bytes()...)
	buf = binary.BigEndian.AppendUint64(buf, event.Timestamp)

	return models.Receipt{
		TxHash: crypto.Keccak256Hash(buf),
		NoteID: id,
		Events: []models.Event{event},
	}
}
