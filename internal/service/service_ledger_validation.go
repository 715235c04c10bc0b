package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/validators"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// LedgerValidationService checks write requests before they reach the
// ledger state machine. Reads pass through unchanged.
type LedgerValidationService struct {
	inner     LedgerService
	validator validators.Validator
}

func NewLedgerValidationService() LedgerServiceWrapper {
	return &LedgerValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *LedgerValidationService) Submit(ctx context.Context, owner common.Address, req models.SubmitRequest) (models.Receipt, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrEmptyBody) {
			return models.Receipt{}, ErrEmptyDreamData
		}
		return models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Submit(ctx, owner, req)
}

func (v *LedgerValidationService) IncrementInterpretationCount(ctx context.Context, interpreter common.Address, id uint64, req models.IncrementRequest) (models.Receipt, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Receipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.IncrementInterpretationCount(ctx, interpreter, id, req)
}

func (v *LedgerValidationService) GetCount(ctx context.Context) (uint64, error) {
	return v.inner.GetCount(ctx)
}

func (v *LedgerValidationService) GetCountByOwner(ctx context.Context, owner common.Address) (uint64, error) {
	return v.inner.GetCountByOwner(ctx, owner)
}

func (v *LedgerValidationService) GetIDsByOwner(ctx context.Context, owner common.Address) ([]uint64, error) {
	return v.inner.GetIDsByOwner(ctx, owner)
}

func (v *LedgerValidationService) GetMeta(ctx context.Context, id uint64) (models.NoteMeta, error) {
	return v.inner.GetMeta(ctx, id)
}

func (v *LedgerValidationService) GetData(ctx context.Context, id uint64) ([]byte, error) {
	return v.inner.GetData(ctx, id)
}

func (v *LedgerValidationService) GetInterpretationCount(ctx context.Context, id uint64) (common.Hash, error) {
	return v.inner.GetInterpretationCount(ctx, id)
}

func (v *LedgerValidationService) Events(ctx context.Context, fromSeq, limit uint64) ([]models.Event, error) {
	return v.inner.Events(ctx, fromSeq, limit)
}

func (v *LedgerValidationService) Wrap(wrapped LedgerService) LedgerService {
	v.inner = wrapped
	return v
}
