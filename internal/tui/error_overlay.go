package tui

import (
	"errors"

	"github.com/MKhiriev/go-dream-cipher/internal/service"
)

type errorOverlayModel struct {
	title   string
	message string
	detail  string
}

// newErrorOverlay presents categorized operation errors by their category
// message and anything else by its text.
func newErrorOverlay(err error) errorOverlayModel {
	var opErr *service.OperationError
	if errors.As(err, &opErr) {
		return errorOverlayModel{
			title:   opErr.Category.String(),
			message: opErr.Category.Message(),
			detail:  opErr.Op + ": " + opErr.Step,
		}
	}

	return errorOverlayModel{title: "error", message: humanizeError(err)}
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error: "+m.title) + "\n\n" + m.message
	if m.detail != "" {
		content += "\n" + helpStyle.Render(m.detail)
	}
	content += "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
