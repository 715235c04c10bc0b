package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/service"
)

// loginModel signs the wallet in to the ledger and opens the confidential
// session. On success it hands over to the gallery.
type loginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	address common.Address
	chainID uint64

	spinner   spinner.Model
	signingIn bool
	status    string
}

func newLoginModel(ctx context.Context, auth service.ClientAuthService, address common.Address, chainID uint64) *loginModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &loginModel{
		ctx:     ctx,
		auth:    auth,
		address: address,
		chainID: chainID,
		spinner: s,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return nil
}

func (m *loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.signingIn = false
		if msg.err != nil {
			m.status = "Sign in failed"
			return m, showError(msg.err)
		}
		m.status = ""
		return m, navigate(pageGallery, nil)
	case spinner.TickMsg:
		if !m.signingIn {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.enter):
			if m.signingIn {
				return m, nil
			}
			m.signingIn = true
			m.status = "Signing in"
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin())
		}
	}

	return m, nil
}

func (m *loginModel) cmdLogin() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		account, err := auth.Login(ctx)
		return loginDoneMsg{account: account, err: err}
	}
}

func (m *loginModel) View() string {
	data := fmt.Sprintf("Account: %s\nChain:   %d", m.address.Hex(), m.chainID)
	if m.status != "" {
		data += "\n\n" + m.status
		if m.signingIn {
			data += " " + m.spinner.View()
		}
	}

	return renderPage("DREAM CIPHER", data, "enter: sign in │ v: version │ q: quit")
}
