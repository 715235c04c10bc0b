package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/models"
)

func TestDetail_InterpretAfterConfirmation(t *testing.T) {
	interpretations := mock.NewMockInterpretationService(gomock.NewController(t))
	m := newDetailModel(context.Background(), interpretations, viewer)
	m.Update(openNoteMsg{note: note(3, viewer)})

	_, cmd := m.Update(runes("i"))
	assert.Nil(t, cmd)
	assert.True(t, m.confirming)
	assert.Contains(t, m.View(), "Continue?")

	_, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.interpreting)

	want := models.Interpretation{ID: 3, Text: "flying over the sea", Receipt: models.Receipt{TxHash: common.HexToHash("0x01"), NoteID: 3}}
	interpretations.EXPECT().Interpret(gomock.Any(), uint64(3)).Return(want, nil)

	m.Update(m.cmdInterpret(context.Background(), 3)())
	assert.False(t, m.interpreting)
	require.NotNil(t, m.interpretation)
	assert.Contains(t, m.View(), "flying over the sea")
}

func TestDetail_DeclineDoesNothing(t *testing.T) {
	m := newDetailModel(context.Background(), mock.NewMockInterpretationService(gomock.NewController(t)), viewer)
	m.Update(openNoteMsg{note: note(1, stranger)})

	m.Update(runes("i"))
	_, cmd := m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirming)
	assert.False(t, m.interpreting)
}

func TestDetail_InterpretErrorShowsOverlay(t *testing.T) {
	m := newDetailModel(context.Background(), mock.NewMockInterpretationService(gomock.NewController(t)), viewer)
	m.Update(openNoteMsg{note: note(1, stranger)})

	boom := errors.New("not owner")
	_, cmd := m.Update(interpretDoneMsg{err: boom})
	require.NotNil(t, cmd)
	assert.Equal(t, errorMsg{err: boom}, cmd())
	assert.Nil(t, m.interpretation)
}

func TestDetail_OpeningAnotherNoteResets(t *testing.T) {
	m := newDetailModel(context.Background(), mock.NewMockInterpretationService(gomock.NewController(t)), viewer)
	m.Update(openNoteMsg{note: note(1, viewer)})
	m.Update(interpretDoneMsg{interpretation: models.Interpretation{ID: 1, Text: "old"}})

	m.Update(openNoteMsg{note: note(2, viewer)})
	assert.Nil(t, m.interpretation)
	assert.Contains(t, m.View(), "DREAM #2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageGallery}, cmd())
}

func TestDetail_EscCancelsPendingInterpretation(t *testing.T) {
	interpretations := mock.NewMockInterpretationService(gomock.NewController(t))
	interpretations.EXPECT().Interpret(gomock.Any(), uint64(4)).
		DoAndReturn(func(ctx context.Context, _ uint64) (models.Interpretation, error) {
			<-ctx.Done()
			return models.Interpretation{}, ctx.Err()
		})

	m := newDetailModel(context.Background(), interpretations, viewer)
	m.Update(openNoteMsg{note: note(4, viewer)})
	m.Update(runes("i"))

	_, cmd := m.Update(runes("y"))
	done := runAsync(lastBatchCmd(t, cmd))
	assert.Contains(t, m.View(), "esc: cancel")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.True(t, m.interpreting)

	msg := <-done
	result, ok := msg.(interpretDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, result.err, context.Canceled)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, errorMsg{err: result.err}, cmd())
	assert.False(t, m.interpreting)
	assert.Nil(t, m.interpretation)
}

func TestDetail_ShowsInterpretationHistory(t *testing.T) {
	interpretations := mock.NewMockInterpretationService(gomock.NewController(t))
	m := newDetailModel(context.Background(), interpretations, viewer)

	_, cmd := m.Update(openNoteMsg{note: note(2, viewer)})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "no interpretations yet")

	history := []models.Event{
		{Seq: 3, Name: models.EventInterpretationCountIncremented, NoteID: 2, Account: stranger, Timestamp: 1700000000},
		{Seq: 5, Name: models.EventInterpretationCountIncremented, NoteID: 2, Account: viewer, Timestamp: 1700000100},
	}
	interpretations.EXPECT().History(gomock.Any(), uint64(2)).Return(history, nil)

	m.Update(cmd())
	view := m.View()
	assert.Contains(t, view, shortAddress(stranger))
	assert.Contains(t, view, shortAddress(viewer)+" (you)")
}

func TestDetail_StaleHistoryIsIgnored(t *testing.T) {
	m := newDetailModel(context.Background(), mock.NewMockInterpretationService(gomock.NewController(t)), viewer)
	m.Update(openNoteMsg{note: note(2, viewer)})

	m.Update(historyMsg{id: 1, events: []models.Event{{NoteID: 1, Account: stranger}}})
	assert.Empty(t, m.history)

	m.Update(historyMsg{id: 2, err: errors.New("connection refused")})
	assert.Contains(t, m.View(), "History unavailable")
}
