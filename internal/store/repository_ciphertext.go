package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// ciphertextRepository stores the development runtime's ciphertext values
// and its access list.
type ciphertextRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCiphertextRepository(db *DB, logger *logger.Logger) CiphertextRepository {
	logger.Debug().Msg("creating ciphertext repository")
	return &ciphertextRepository{db: db, logger: logger}
}

func (r *ciphertextRepository) PutCiphertext(ctx context.Context, ct models.Ciphertext) error {
	if err := exec(ctx, r.db, insertCiphertextQuery(r.db.builder, ct.Handle, ct.Type, ct.Value)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*ciphertextRepository.PutCiphertext").
			Str("handle", ct.Handle.Hex()).
			Msg("failed to store ciphertext")
		return r.db.classify(err)
	}

	return nil
}

func (r *ciphertextRepository) GetCiphertext(ctx context.Context, handle common.Hash) (models.Ciphertext, error) {
	var (
		rawHandle string
		typ       int64
		value     int64
	)

	err := queryRow(ctx, r.db, getCiphertextQuery(r.db.builder, handle)).Scan(&rawHandle, &typ, &value)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ciphertext{}, ErrCiphertextNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ciphertextRepository.GetCiphertext").Str("handle", handle.Hex()).Msg("failed to get ciphertext")
		return models.Ciphertext{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return models.Ciphertext{Handle: common.HexToHash(rawHandle), Type: uint8(typ), Value: uint64(value)}, nil
}

func (r *ciphertextRepository) Allow(ctx context.Context, handle common.Hash, account common.Address) error {
	if err := exec(ctx, r.db, insertACLQuery(r.db.builder, handle, account)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*ciphertextRepository.Allow").
			Str("handle", handle.Hex()).
			Str("account", account.Hex()).
			Msg("failed to grant access")
		return r.db.classify(err)
	}

	return nil
}

func (r *ciphertextRepository) IsAllowed(ctx context.Context, handle common.Hash, account common.Address) (bool, error) {
	var n int64
	if err := queryRow(ctx, r.db, isAllowedQuery(r.db.builder, handle, account)).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return n > 0, nil
}
