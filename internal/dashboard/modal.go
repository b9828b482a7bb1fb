package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/rileyhilliard/hdt/internal/ui"
)

const maxModalWidth = 72

// renderModal renders the formula explanation for the selected metric.
func (m Model) renderModal(t Theme) string {
	entry, ok := twin.LookupFormula(m.state.Selected())
	if !ok {
		return ""
	}

	width := min(maxModalWidth, m.contentWidth()-4)
	inner := width - 6 // border + horizontal padding
	wrap := lipgloss.NewStyle().Width(inner)

	title := t.heading().Render(ui.SymbolFormula + " " + string(entry.Metric))
	lines := []string{
		spread(title, t.muted().Render("esc ×"), inner),
		"",
		t.secondary().Render("Formula"),
		wrap.Foreground(t.Formula).Render(entry.Formula),
		"",
		t.secondary().Render("Calculation Method"),
		wrap.Foreground(t.Text).Render(entry.Calculation),
	}

	if len(entry.Geometrical) > 0 {
		lines = append(lines, "", t.heading().Render("Geometrical Data Sources"))
		lines = append(lines, sourceList(t, entry.Geometrical, t.GeoBullet)...)
	}
	if len(entry.Physical) > 0 {
		lines = append(lines, "", t.heading().Render("Physical Data Sources"))
		lines = append(lines, sourceList(t, entry.Physical, t.PhysBullet)...)
	}

	return t.modal().
		Width(width - 2).
		Background(t.Surface).
		Render(strings.Join(lines, "\n"))
}

func sourceList(t Theme, items []string, bullet lipgloss.Color) []string {
	dot := lipgloss.NewStyle().Foreground(bullet).Render(ui.SymbolNormal)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "  " + dot + " " + t.text().Render(item)
	}
	return out
}
