package tui

func renderConfirm(prompt string) string {
	return overlayBoxStyle.Render(prompt + "\n\n" + helpStyle.Render("y: yes │ n: no"))
}
