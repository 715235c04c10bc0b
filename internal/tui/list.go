package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/models"
)

const (
	// pollInterval is how often the gallery picks up snapshots built by the
	// background refresh job.
	pollInterval = 2 * time.Second

	statusTTL = 3 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// galleryModel presents the latest snapshot newest first.
type galleryModel struct {
	ctx     context.Context
	gallery service.GalleryService
	viewer  common.Address

	snapshot models.Snapshot
	filter   models.FilterMode
	notes    []models.NoteView
	idx      int

	// pollGen invalidates poll chains started before the last Init.
	pollGen int

	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
}

func newGalleryModel(ctx context.Context, gallery service.GalleryService, viewer common.Address) *galleryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &galleryModel{
		ctx:     ctx,
		gallery: gallery,
		viewer:  viewer,
		loading: true,
		spinner: s,
	}
}

func (m *galleryModel) Init() tea.Cmd {
	m.refreshing = true
	m.pollGen++
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(), cmdPoll(m.pollGen))
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.refreshing = false
		m.loading = false
		if msg.err != nil {
			return m, showError(msg.err)
		}
		m.apply(msg.snapshot)
		return m, nil
	case pollMsg:
		if msg.gen != m.pollGen {
			return m, nil
		}
		if latest := m.gallery.Snapshot(); latest.RefreshedAt.After(m.snapshot.RefreshedAt) {
			m.loading = false
			m.apply(latest)
		}
		return m, cmdPoll(m.pollGen)
	case statusMsg:
		m.status = msg.text
		return m, tea.Batch(m.Init(), clearStatusAfter(statusTTL))
	case copiedMsg:
		if msg.err != nil {
			return m, showError(fmt.Errorf("copy token: %w", msg.err))
		}
		m.status = "Token copied to clipboard"
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.refreshing {
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

func (m *galleryModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.filter):
		if m.filter == models.FilterAll {
			m.filter = models.FilterMine
		} else {
			m.filter = models.FilterAll
		}
		m.idx = 0
		m.notes = presentationOrder(m.snapshot.Filter(m.filter, m.viewer))
	case key.Matches(msg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageSubmit, nil)
	case key.Matches(msg, keys.enter):
		if note, ok := m.current(); ok {
			return m, navigate(pageDetail, openNoteMsg{note: note})
		}
	case key.Matches(msg, keys.copy):
		if note, ok := m.current(); ok {
			return m, cmdCopy(note.Token())
		}
	}

	return m, nil
}

func (m *galleryModel) apply(snapshot models.Snapshot) {
	m.snapshot = snapshot
	m.notes = presentationOrder(snapshot.Filter(m.filter, m.viewer))
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *galleryModel) current() (models.NoteView, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.NoteView{}, false
	}
	return m.notes[m.idx], true
}

func (m *galleryModel) cmdRefresh() tea.Cmd {
	ctx, gallery := m.ctx, m.gallery
	return func() tea.Msg {
		snapshot, err := gallery.Refresh(ctx)
		return snapshotMsg{snapshot: snapshot, err: err}
	}
}

func cmdPoll(gen int) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{gen: gen} })
}

func cmdCopy(token string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(token)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// presentationOrder returns notes newest first. Ids grow with submission
// order, so the highest id is the newest note.
func presentationOrder(notes []models.NoteView) []models.NoteView {
	slices.SortFunc(notes, func(a, b models.NoteView) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})
	return notes
}

func (m *galleryModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Showing: %s │ %d of %d dreams │ updated %s",
		m.filter, len(m.notes), m.snapshot.Total, formatTime(m.snapshot.RefreshedAt))
	if m.refreshing {
		header += " " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.notes) == 0:
		b.WriteString("No dreams yet\n")
	default:
		b.WriteString(fmt.Sprintf("  %-5s %-14s %-16s %-8s %s\n", "ID", "OWNER", "CREATED", "READS", "TOKEN"))
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			owner := shortAddress(note.Owner)
			if note.Owner == m.viewer {
				owner = ownStyle.Render(fmt.Sprintf("%-14s", owner+" (you)"))
			} else {
				owner = fmt.Sprintf("%-14s", owner)
			}
			b.WriteString(fmt.Sprintf("%s%-5d %s %-16s %-8s %s\n",
				cursor, note.ID, owner, formatTime(note.CreatedAt), formatCount(note.InterpretationCount), fitText(note.TokenPreview(), 40)))
		}
	}

	if failed := len(m.snapshot.Failed); failed > 0 {
		b.WriteString(fmt.Sprintf("\n%d dreams could not be loaded\n", failed))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("DREAM GALLERY", strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new │ c: copy token │ tab: all/mine │ r: refresh │ q: quit")
}
