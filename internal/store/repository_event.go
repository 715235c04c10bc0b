package store

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// MaxEventPage bounds a single ListEvents call.
const MaxEventPage = 500

type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{db: db, logger: logger}
}

func (r *eventRepository) ListEvents(ctx context.Context, fromSeq uint64, limit uint64) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	if limit == 0 || limit > MaxEventPage {
		limit = MaxEventPage
	}

	query, args, err := listEventsQuery(r.db.builder, fromSeq, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.ListEvents").Uint64("from", fromSeq).Msg("failed to query events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var (
			seq, noteID, ts int64
			name, account   string
		)
		if err = rows.Scan(&seq, &name, &noteID, &account, &ts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		events = append(events, models.Event{
			Seq:       uint64(seq),
			Name:      models.EventName(name),
			NoteID:    uint64(noteID),
			Account:   common.HexToAddress(account),
			Timestamp: uint64(ts),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return events, nil
}
