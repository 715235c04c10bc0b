package store

import (
	"context"

	"github.com/MKhiriev/go-dream-cipher/models"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository persists notes together with the events their writes emit.
// Every write runs in a single transaction: either the note change and its
// event land together or neither does.
type NoteRepository interface {
	// CreateNote allocates the next id, stores note under it and appends a
	// DreamSubmitted event.
	CreateNote(ctx context.Context, note models.Note) (models.Note, models.Event, error)
	CountNotes(ctx context.Context) (uint64, error)
	CountNotesByOwner(ctx context.Context, owner common.Address) (uint64, error)
	ListIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error)
	GetNote(ctx context.Context, id uint64) (models.Note, error)
	// UpdateInterpretationCount replaces the counter handle of note id and
	// appends an InterpretationCountIncremented event for interpreter.
	UpdateInterpretationCount(ctx context.Context, id uint64, handle common.Hash, interpreter common.Address, timestamp uint64) (models.Event, error)
}

// EventRepository reads the ledger event log.
type EventRepository interface {
	// ListEvents returns up to limit events with Seq > fromSeq in order.
	ListEvents(ctx context.Context, fromSeq uint64, limit uint64) ([]models.Event, error)
}

// CiphertextRepository holds the values and the access list of the
// development confidential runtime.
type CiphertextRepository interface {
	PutCiphertext(ctx context.Context, ct models.Ciphertext) error
	GetCiphertext(ctx context.Context, handle common.Hash) (models.Ciphertext, error)
	Allow(ctx context.Context, handle common.Hash, account common.Address) error
	IsAllowed(ctx context.Context, handle common.Hash, account common.Address) (bool, error)
}
