package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// noteRepository is the SQL implementation of [NoteRepository] over the
// "notes" and "events" tables.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, models.Event, error) {
	log := logger.FromContext(ctx)

	var event models.Event
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var nextID int64
		if err := queryRow(ctx, tx, nextNoteIDQuery(r.db.builder)).Scan(&nextID); err != nil {
			return fmt.Errorf("%w: next note id: %w", ErrScanningRow, r.db.classify(err))
		}

		if err := exec(ctx, tx, insertNoteQuery(r.db.builder, nextID, note.Owner, int64(note.CreatedAt), note.EncryptedBody, note.InterpretationCount)); err != nil {
			return r.db.classify(err)
		}

		var seq int64
		if err := queryRow(ctx, tx, insertEventQuery(r.db.builder, string(models.EventDreamSubmitted), nextID, note.Owner, int64(note.CreatedAt))).Scan(&seq); err != nil {
			return fmt.Errorf("%w: event seq: %w", ErrScanningRow, r.db.classify(err))
		}

		note.ID = uint64(nextID)
		event = models.Event{
			Seq:       uint64(seq),
			Name:      models.EventDreamSubmitted,
			NoteID:    note.ID,
			Account:   note.Owner,
			Timestamp: note.CreatedAt,
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Str("owner", note.Owner.Hex()).
			Msg("failed to create note")
		return models.Note{}, models.Event{}, err
	}

	return note, event, nil
}

func (r *noteRepository) CountNotes(ctx context.Context) (uint64, error) {
	return r.count(ctx, "*noteRepository.CountNotes", countNotesQuery(r.db.builder))
}

func (r *noteRepository) CountNotesByOwner(ctx context.Context, owner common.Address) (uint64, error) {
	return r.count(ctx, "*noteRepository.CountNotesByOwner", countNotesByOwnerQuery(r.db.builder, owner))
}

func (r *noteRepository) count(ctx context.Context, fn string, query sq.SelectBuilder) (uint64, error) {
	var n int64
	if err := queryRow(ctx, r.db, query).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to count notes")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return uint64(n), nil
}

func (r *noteRepository) ListIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error) {
	log := logger.FromContext(ctx)

	query, args, err := listIDsByOwnerQuery(r.db.builder, owner).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListIDsByOwner").Str("owner", owner.Hex()).Msg("failed to query note ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, uint64(id))
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*noteRepository.ListIDsByOwner").Msg("error iterating note ids")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return ids, nil
}

func (r *noteRepository) GetNote(ctx context.Context, id uint64) (models.Note, error) {
	var (
		note      models.Note
		rawID     int64
		owner     string
		createdAt int64
		body      []byte
		handle    string
	)

	err := queryRow(ctx, r.db, getNoteQuery(r.db.builder, int64(id))).Scan(&rawID, &owner, &createdAt, &body, &handle)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteRepository.GetNote").Uint64("id", id).Msg("failed to get note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	note.ID = uint64(rawID)
	note.Owner = common.HexToAddress(owner)
	note.CreatedAt = uint64(createdAt)
	note.EncryptedBody = body
	note.InterpretationCount = common.HexToHash(handle)

	return note, nil
}

func (r *noteRepository) UpdateInterpretationCount(ctx context.Context, id uint64, handle common.Hash, interpreter common.Address, timestamp uint64) (models.Event, error) {
	log := logger.FromContext(ctx)

	var event models.Event
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := updateCountHandleQuery(r.db.builder, int64(id), handle).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrNoteNotFound
		}

		var seq int64
		if err = queryRow(ctx, tx, insertEventQuery(r.db.builder, string(models.EventInterpretationCountIncremented), int64(id), interpreter, int64(timestamp))).Scan(&seq); err != nil {
			return fmt.Errorf("%w: event seq: %w", ErrScanningRow, r.db.classify(err))
		}

		event = models.Event{
			Seq:       uint64(seq),
			Name:      models.EventInterpretationCountIncremented,
			NoteID:    id,
			Account:   interpreter,
			Timestamp: timestamp,
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.UpdateInterpretationCount").
			Uint64("id", id).
			Msg("failed to update interpretation count")
		return models.Event{}, err
	}

	return event, nil
}
