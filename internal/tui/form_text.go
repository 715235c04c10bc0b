package tui

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/validators"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// submitModel is the form for recording a new dream.
type submitModel struct {
	ctx         context.Context
	submissions service.SubmissionService

	area       textarea.Model
	spinner    spinner.Model
	submitting bool
	cancel     context.CancelFunc
	cancelling bool
}

func newSubmitModel(ctx context.Context, submissions service.SubmissionService) *submitModel {
	area := textarea.New()
	area.Placeholder = "Describe your dream..."
	area.CharLimit = validators.MaxNoteLength
	area.SetWidth(72)
	area.SetHeight(10)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &submitModel{
		ctx:         ctx,
		submissions: submissions,
		area:        area,
		spinner:     s,
	}
}

func (m *submitModel) Init() tea.Cmd {
	m.area.Focus()
	return textarea.Blink
}

func (m *submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.submitting, m.cancelling = false, false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.area.Reset()
		m.area.Blur()
		return m, navigate(pageGallery, statusMsg{text: fmt.Sprintf("Dream #%d recorded", msg.receipt.NoteID)})
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.submitting {
			if key.Matches(msg, keys.esc) && m.cancel != nil {
				m.cancel()
				m.cancelling = true
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.area.Blur()
			return m, navigate(pageGallery, nil)
		case key.Matches(msg, keys.send):
			m.submitting = true
			ctx, cancel := context.WithCancel(m.ctx)
			m.cancel = cancel
			return m, tea.Batch(m.spinner.Tick, m.cmdSubmit(ctx, m.area.Value()))
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m *submitModel) cmdSubmit(ctx context.Context, text string) tea.Cmd {
	submissions := m.submissions
	return func() tea.Msg {
		receipt, err := submissions.Submit(ctx, models.NoteDraft{Text: text})
		return submitDoneMsg{receipt: receipt, err: err}
	}
}

func (m *submitModel) View() string {
	data := m.area.View() + "\n\n" +
		fmt.Sprintf("%d/%d characters", utf8.RuneCountInString(m.area.Value()), validators.MaxNoteLength)
	help := "ctrl+s: submit │ esc: back"
	switch {
	case m.cancelling:
		data += "\n\nCancelling " + m.spinner.View()
		help = ""
	case m.submitting:
		data += "\n\nEncrypting and submitting " + m.spinner.View()
		help = "esc: cancel"
	}

	return renderPage("NEW DREAM", data, help)
}
