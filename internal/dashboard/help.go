package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders a centered box listing every key binding.
func (m Model) renderHelpOverlay(t Theme) string {
	h := m.help
	h.ShowAll = true
	h.Styles.FullKey = t.heading()
	h.Styles.FullDesc = t.secondary()
	h.Styles.FullSeparator = t.muted()

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("Keyboard Shortcuts")
	content := title + "\n\n" + h.View(m.keys) + "\n\n" + t.muted().Render("Press ? to close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2).
		Render(content)

	if m.width <= 0 || m.height <= 0 {
		return box
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(t.Background),
	)
}
