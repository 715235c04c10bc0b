package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/MKhiriev/go-dream-cipher/models"
)

// RootModel is the TUI router:
//  1. keeps the active page;
//  2. handles the global ctrl+c quit;
//  3. handles NavigateTo messages;
//  4. owns the error overlay and the build info window;
//  5. delegates every other message to the active page.
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	overlay *errorOverlayModel

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}

		if r.overlay != nil {
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		}

		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(keyMsg, keys.version) && r.currentName == pageLogin {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case errorMsg:
		overlay := newErrorOverlay(msg.err)
		r.overlay = &overlay
		return r, nil
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.current = next
		r.currentName = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("DREAM CIPHER", "", "")
	}
	if r.overlay != nil {
		return r.current.View() + "\n\n" + r.overlay.View()
	}
	return r.current.View()
}
