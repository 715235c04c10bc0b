package store

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
)

func newMemoryStorages(t *testing.T) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, IsPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, IsPostgresDSN("postgresql://localhost/db"))
	assert.False(t, IsPostgresDSN("memory"))
	assert.False(t, IsPostgresDSN("/tmp/ledger.db"))
}

func TestMemoryStorages_AreIsolated(t *testing.T) {
	a := newMemoryStorages(t)
	b := newMemoryStorages(t)
	ctx := context.Background()

	_, _, err := a.NoteRepository.CreateNote(ctx, models.Note{Owner: testOwner, CreatedAt: 1, EncryptedBody: []byte("x"), InterpretationCount: testHandle})
	require.NoError(t, err)

	n, err := b.NoteRepository.CountNotes(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStorages_NoteLifecycle(t *testing.T) {
	s := newMemoryStorages(t)
	ctx := context.Background()
	other := common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")

	first, ev, err := s.NoteRepository.CreateNote(ctx, models.Note{Owner: testOwner, CreatedAt: 10, EncryptedBody: []byte("a:b"), InterpretationCount: testHandle})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.ID)
	assert.Equal(t, models.EventDreamSubmitted, ev.Name)

	second, _, err := s.NoteRepository.CreateNote(ctx, models.Note{Owner: other, CreatedAt: 11, EncryptedBody: []byte("c:d"), InterpretationCount: testHandle})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), second.ID)

	third, _, err := s.NoteRepository.CreateNote(ctx, models.Note{Owner: testOwner, CreatedAt: 12, EncryptedBody: []byte("e:f"), InterpretationCount: testHandle})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), third.ID)

	ids, err := s.NoteRepository.ListIDsByOwner(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 2}, ids)

	mine, err := s.NoteRepository.CountNotesByOwner(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), mine)

	got, err := s.NoteRepository.GetNote(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, other, got.Owner)
	assert.Equal(t, []byte("c:d"), []byte(got.EncryptedBody))

	newHandle := common.HexToHash("0x22")
	incr, err := s.NoteRepository.UpdateInterpretationCount(ctx, 1, newHandle, testOwner, 20)
	require.NoError(t, err)
	assert.Equal(t, models.EventInterpretationCountIncremented, incr.Name)

	got, err = s.NoteRepository.GetNote(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, newHandle, got.InterpretationCount)

	_, err = s.NoteRepository.UpdateInterpretationCount(ctx, 3, newHandle, testOwner, 21)
	assert.True(t, errors.Is(err, ErrNoteNotFound))

	_, err = s.NoteRepository.GetNote(ctx, 3)
	assert.True(t, errors.Is(err, ErrNoteNotFound))

	events, err := s.EventRepository.ListEvents(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 4)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i].Seq, events[i-1].Seq)
	}

	tail, err := s.EventRepository.ListEvents(ctx, events[2].Seq, 10)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, uint64(1), tail[0].NoteID)
}

func TestMemoryStorages_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	s := newMemoryStorages(t)
	ctx := context.Background()

	const writers = 16
	ids := make(chan uint64, writers)
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			note, _, err := s.NoteRepository.CreateNote(ctx, models.Note{Owner: testOwner, CreatedAt: 1, EncryptedBody: []byte("x"), InterpretationCount: testHandle})
			if assert.NoError(t, err) {
				ids <- note.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, writers)
}

func TestMemoryStorages_ACL(t *testing.T) {
	s := newMemoryStorages(t)
	ctx := context.Background()

	require.NoError(t, s.CiphertextRepository.PutCiphertext(ctx, models.Ciphertext{Handle: testHandle, Type: 4, Value: 3}))
	require.NoError(t, s.CiphertextRepository.Allow(ctx, testHandle, testOwner))
	require.NoError(t, s.CiphertextRepository.Allow(ctx, testHandle, testOwner))

	ok, err := s.CiphertextRepository.IsAllowed(ctx, testHandle, testOwner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CiphertextRepository.IsAllowed(ctx, testHandle, common.HexToAddress("0x01"))
	require.NoError(t, err)
	assert.False(t, ok)

	ct, err := s.CiphertextRepository.GetCiphertext(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), ct.Value)
}

func TestFileStorages_Persist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	cfg := config.Storage{DB: config.DB{DSN: path}}
	ctx := context.Background()

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	_, _, err = s.NoteRepository.CreateNote(ctx, models.Note{Owner: testOwner, CreatedAt: 1, EncryptedBody: []byte("x"), InterpretationCount: testHandle})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	n, err := s.NoteRepository.CountNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
}
