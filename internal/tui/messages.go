package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/models"
)

// Page names known to RootModel.
const (
	pageLogin   = "login"
	pageGallery = "gallery"
	pageSubmit  = "submit"
	pageDetail  = "detail"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// errorMsg asks the root model to show the error overlay.
type errorMsg struct {
	err error
}

type loginDoneMsg struct {
	account common.Address
	err     error
}

type snapshotMsg struct {
	snapshot models.Snapshot
	err      error
}

type pollMsg struct {
	gen int
}

type submitDoneMsg struct {
	receipt models.Receipt
	err     error
}

type interpretDoneMsg struct {
	interpretation models.Interpretation
	err            error
}

type historyMsg struct {
	id     uint64
	events []models.Event
	err    error
}

type openNoteMsg struct {
	note models.NoteView
}

// statusMsg carries a one-line notice to the gallery.
type statusMsg struct {
	text string
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

func showError(err error) tea.Cmd {
	return func() tea.Msg { return errorMsg{err: err} }
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
