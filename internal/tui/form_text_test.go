package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/models"
)

func TestSubmit_SendsTypedText(t *testing.T) {
	submissions := mock.NewMockSubmissionService(gomock.NewController(t))
	m := newSubmitModel(context.Background(), submissions)
	m.Init()

	m.Update(runes("a dream"))
	assert.Contains(t, m.View(), "7/5000")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	submissions.EXPECT().Submit(gomock.Any(), models.NoteDraft{Text: "a dream"}).Return(models.Receipt{NoteID: 7}, nil)

	_, cmd = m.Update(m.cmdSubmit(context.Background(), m.area.Value())())
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageGallery, Payload: statusMsg{text: "Dream #7 recorded"}}, cmd())
	assert.Empty(t, m.area.Value())
}

func TestSubmit_FailureKeepsText(t *testing.T) {
	m := newSubmitModel(context.Background(), mock.NewMockSubmissionService(gomock.NewController(t)))
	m.Init()
	m.Update(runes("keep me"))

	opErr := &service.OperationError{Op: "submit", Step: "validate", Category: service.CategoryValidation}
	_, cmd := m.Update(submitDoneMsg{err: opErr})
	require.NotNil(t, cmd)
	assert.Equal(t, errorMsg{err: opErr}, cmd())
	assert.Equal(t, "keep me", m.area.Value())
}

func TestSubmit_EscReturnsToGallery(t *testing.T) {
	m := newSubmitModel(context.Background(), mock.NewMockSubmissionService(gomock.NewController(t)))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageGallery}, cmd())
}

func TestSubmit_EscCancelsPendingSubmission(t *testing.T) {
	submissions := mock.NewMockSubmissionService(gomock.NewController(t))
	submissions.EXPECT().Submit(gomock.Any(), models.NoteDraft{Text: "slow dream"}).
		DoAndReturn(func(ctx context.Context, _ models.NoteDraft) (models.Receipt, error) {
			<-ctx.Done()
			return models.Receipt{}, &service.OperationError{Op: "submit dream", Step: "submit", Category: service.CategoryCancellation, Err: ctx.Err()}
		})

	m := newSubmitModel(context.Background(), submissions)
	m.Init()
	m.Update(runes("slow dream"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	done := runAsync(lastBatchCmd(t, cmd))
	assert.Contains(t, m.View(), "esc: cancel")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd, "esc must not leave the page while a submission is pending")
	assert.True(t, m.submitting)
	assert.Contains(t, m.View(), "Cancelling")

	msg := <-done
	result, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, result.err, context.Canceled)

	_, cmd = m.Update(msg)
	require.NotNil(t, cmd)
	assert.IsType(t, errorMsg{}, cmd())
	assert.False(t, m.submitting)
	assert.Equal(t, "slow dream", m.area.Value())
}
