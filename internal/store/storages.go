package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

// Storages groups the repositories of the ledger node over one database.
type Storages struct {
	NoteRepository       NoteRepository
	EventRepository      EventRepository
	CiphertextRepository CiphertextRepository

	db *DB
}

// NewStorages connects to the backend selected by cfg.DB.DSN, applies
// migrations and builds the repositories:
//   - "memory" is an in-process SQLite database;
//   - "postgres://" and "postgresql://" use PostgreSQL;
//   - anything else is a SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		NoteRepository:       NewNoteRepository(db, log),
		EventRepository:      NewEventRepository(db, log),
		CiphertextRepository: NewCiphertextRepository(db, log),
		db:                   db,
	}
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if IsPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// IsPostgresDSN reports whether dsn is a PostgreSQL URL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
