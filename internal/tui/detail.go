package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// detailModel shows one note and lets its owner interpret it.
type detailModel struct {
	ctx             context.Context
	interpretations service.InterpretationService
	viewer          common.Address

	note           models.NoteView
	interpretation *models.Interpretation
	history        []models.Event
	historyErr     error

	confirming   bool
	interpreting bool
	cancel       context.CancelFunc
	spinner      spinner.Model
	status       string
}

func newDetailModel(ctx context.Context, interpretations service.InterpretationService, viewer common.Address) *detailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &detailModel{
		ctx:             ctx,
		interpretations: interpretations,
		viewer:          viewer,
		spinner:         s,
	}
}

func (m *detailModel) Init() tea.Cmd {
	return nil
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openNoteMsg:
		m.stopCall()
		m.note = msg.note
		m.interpretation = nil
		m.history, m.historyErr = nil, nil
		m.confirming = false
		m.interpreting = false
		m.status = ""
		return m, m.cmdHistory(m.note.ID)
	case interpretDoneMsg:
		m.stopCall()
		m.interpreting = false
		m.status = ""
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.interpretation = &msg.interpretation
		return m, m.cmdHistory(m.note.ID)
	case historyMsg:
		if msg.id != m.note.ID {
			return m, nil
		}
		m.history, m.historyErr = msg.events, msg.err
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m, showError(fmt.Errorf("copy token: %w", msg.err))
		}
		m.status = "Token copied to clipboard"
		return m, nil
	case spinner.TickMsg:
		if !m.interpreting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *detailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.interpreting {
		if key.Matches(msg, keys.esc) && m.cancel != nil {
			m.cancel()
			m.status = "Cancelling..."
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.interpreting = true
			ctx, cancel := context.WithCancel(m.ctx)
			m.cancel = cancel
			return m, tea.Batch(m.spinner.Tick, m.cmdInterpret(ctx, m.note.ID))
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(pageGallery, nil)
	case key.Matches(msg, keys.interpret):
		m.confirming = true
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.note.Token())
	}

	return m, nil
}

// stopCall releases the context of the interpretation in flight, if any.
func (m *detailModel) stopCall() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *detailModel) cmdInterpret(ctx context.Context, id uint64) tea.Cmd {
	interpretations := m.interpretations
	return func() tea.Msg {
		interpretation, err := interpretations.Interpret(ctx, id)
		return interpretDoneMsg{interpretation: interpretation, err: err}
	}
}

func (m *detailModel) cmdHistory(id uint64) tea.Cmd {
	ctx, interpretations := m.ctx, m.interpretations
	return func() tea.Msg {
		events, err := interpretations.History(ctx, id)
		return historyMsg{id: id, events: events, err: err}
	}
}

func (m *detailModel) View() string {
	var b strings.Builder

	owner := m.note.Owner.Hex()
	if m.note.Owner == m.viewer {
		owner += " (you)"
	}

	b.WriteString(fmt.Sprintf("Owner:   %s\n", owner))
	b.WriteString(fmt.Sprintf("Created: %s\n", formatTime(m.note.CreatedAt)))
	b.WriteString(fmt.Sprintf("Reads:   %s\n", formatCount(m.note.InterpretationCount)))
	b.WriteString(fmt.Sprintf("Token:   %s\n", m.note.TokenPreview()))

	b.WriteString("\n" + renderHistory(m.history, m.historyErr, m.viewer) + "\n")

	switch {
	case m.interpreting:
		b.WriteString("\nDecrypting and recording the interpretation " + m.spinner.View() + "\n")
	case m.interpretation != nil:
		b.WriteString("\n" + titleStyle.Render("Interpretation") + "\n\n")
		b.WriteString(m.interpretation.Text)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("Recorded in " + m.interpretation.Receipt.TxHash.Hex()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	help := "i: interpret │ c: copy token │ esc: back"
	if m.interpreting {
		help = "esc: cancel"
	}
	page := renderPage(fmt.Sprintf("DREAM #%d", m.note.ID), strings.TrimRight(b.String(), "\n"), help)
	if m.confirming {
		page += "\n\n" + renderConfirm("Interpreting decrypts the dream and records a read on the ledger. Continue?")
	}
	return page
}

func renderHistory(history []models.Event, err error, viewer common.Address) string {
	if err != nil {
		return helpStyle.Render("History unavailable: " + humanizeError(err))
	}
	if len(history) == 0 {
		return "History: no interpretations yet"
	}

	var b strings.Builder
	b.WriteString("History:")
	for _, event := range history {
		who := shortAddress(event.Account)
		if event.Account == viewer {
			who += " (you)"
		}
		b.WriteString(fmt.Sprintf("\n  %s  %s", formatTime(time.Unix(int64(event.Timestamp), 0)), who))
	}
	return b.String()
}
