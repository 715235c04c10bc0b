// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-dream-cipher/internal/adapter"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// DefaultFetchConcurrency bounds the notes fetched at once when no limit is
// configured.
const DefaultFetchConcurrency = 8

// MaxGalleryNotes bounds the notes one refresh loads. Past it only the
// newest notes are fetched; Snapshot.Total still reports the ledger count.
const MaxGalleryNotes = 10_000

type galleryService struct {
	ledger      adapter.LedgerAdapter
	encoder     OperandEncoder
	identity    Identity
	contract    common.Address
	concurrency int
	now         func() time.Time
	logger      *logger.Logger

	mu         sync.RWMutex
	generation uint64
	stored     uint64
	snapshot   models.Snapshot
}

// NewGalleryService creates the aggregate view over ledger. Counters of the
// viewer's own notes are decrypted through encoder.
func NewGalleryService(ledger adapter.LedgerAdapter, encoder OperandEncoder, identity Identity, contract common.Address, concurrency int, logger *logger.Logger) GalleryService {
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}
	return &galleryService{
		ledger:      ledger,
		encoder:     encoder,
		identity:    identity,
		contract:    contract,
		concurrency: concurrency,
		now:         time.Now,
		logger:      logger,
		snapshot:    models.Snapshot{ByOwner: map[common.Address][]uint64{}},
	}
}

// Refresh reads the note count and fetches every note with at most
// concurrency requests in flight. Overlapping refreshes are not merged; the
// one started last wins.
func (g *galleryService) Refresh(ctx context.Context) (models.Snapshot, error) {
	g.mu.Lock()
	g.generation++
	gen := g.generation
	g.mu.Unlock()

	total, err := g.ledger.GetCount(ctx)
	if err != nil {
		return models.Snapshot{}, newOperationError("refresh gallery", "read count", err)
	}

	var first uint64
	if total > MaxGalleryNotes {
		first = total - MaxGalleryNotes
		g.logger.Warn().Uint64("total", total).Uint64("first", first).Msg("gallery truncated to the newest dreams")
	}

	viewer := g.identity.Address()
	results := make([]models.NoteResult, total-first)

	var eg errgroup.Group
	eg.SetLimit(g.concurrency)
	for i := range results {
		id := first + uint64(i)
		eg.Go(func() error {
			note, err := g.fetch(ctx, id, viewer)
			results[i] = models.NoteResult{ID: id, Note: note, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	if err = ctx.Err(); err != nil {
		return models.Snapshot{}, newOperationError("refresh gallery", "fetch notes", err)
	}

	snapshot := buildSnapshot(results, total, g.now())
	for _, failed := range snapshot.Failed {
		g.logger.Warn().Err(failed.Err).Uint64("id", failed.ID).Msg("skipping dream that failed to load")
	}

	g.mu.Lock()
	if gen > g.stored {
		g.stored = gen
		g.snapshot = snapshot
	}
	g.mu.Unlock()

	return snapshot, nil
}

func (g *galleryService) Snapshot() models.Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshot
}

// fetch loads one note. The counter is decrypted only for the viewer's own
// notes; a failed decryption leaves the count unset.
func (g *galleryService) fetch(ctx context.Context, id uint64, viewer common.Address) (models.NoteView, error) {
	meta, err := g.ledger.GetMeta(ctx, id)
	if err != nil {
		return models.NoteView{}, fmt.Errorf("read meta: %w", err)
	}

	data, err := g.ledger.GetData(ctx, id)
	if err != nil {
		return models.NoteView{}, fmt.Errorf("read data: %w", err)
	}

	handle, err := g.ledger.GetInterpretationCount(ctx, id)
	if err != nil {
		return models.NoteView{}, fmt.Errorf("read interpretation count: %w", err)
	}

	view := models.NoteView{
		ID:            id,
		Owner:         meta.Owner,
		CreatedAt:     time.Unix(int64(meta.CreatedAt), 0),
		EncryptedBody: data,
		CountHandle:   handle,
	}

	if meta.Owner == viewer {
		count, err := g.encoder.DecryptUint32(ctx, handle, g.contract, viewer)
		if err != nil {
			g.logger.Debug().Err(err).Uint64("id", id).Msg("interpretation count not decrypted")
		} else {
			view.InterpretationCount = &count
		}
	}

	return view, nil
}

func buildSnapshot(results []models.NoteResult, total uint64, at time.Time) models.Snapshot {
	snapshot := models.Snapshot{
		Notes:       make([]models.NoteView, 0, len(results)),
		ByOwner:     make(map[common.Address][]uint64),
		Total:       total,
		RefreshedAt: at,
	}

	for _, r := range results {
		if r.Err != nil {
			snapshot.Failed = append(snapshot.Failed, r)
			continue
		}
		snapshot.Notes = append(snapshot.Notes, r.Note)
		snapshot.ByOwner[r.Note.Owner] = append(snapshot.ByOwner[r.Note.Owner], r.ID)
	}

	sort.Slice(snapshot.Notes, func(i, j int) bool { return snapshot.Notes[i].ID < snapshot.Notes[j].ID })
	return snapshot
}
