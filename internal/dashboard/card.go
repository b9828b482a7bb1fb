package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/rileyhilliard/hdt/internal/ui"
)

// renderMetricCard renders one metric as a bordered card of the given
// rendered width (borders included).
func renderMetricCard(t Theme, metric twin.Metric, width int, focused bool) string {
	style := t.card(focused).Width(width - 2)
	inner := width - 4

	dot := lipgloss.NewStyle().Foreground(t.StatusColor(metric.DisplayStatus())).Render(ui.SymbolNormal)
	right := dot
	if len(metric.Sources) > 0 {
		right = lipgloss.NewStyle().Foreground(t.PhysBullet).Render(ui.SymbolBranch) + " " + dot
	}

	name := metric.Name
	if focused {
		name = ui.SymbolSelected + " " + name
	}
	name = truncateWithEllipsis(name, inner-lipgloss.Width(right)-1)

	lines := []string{
		spread(t.secondary().Render(name), right, inner),
		t.heading().Render(metric.FormatValue()) + " " + t.secondary().Render(metric.Unit),
	}

	if metric.NormalRange != "" {
		lines = append(lines, t.muted().Render("Normal: "+metric.NormalRange))
	}

	if len(metric.Sources) > 0 {
		badges := make([]string, len(metric.Sources))
		for i, src := range metric.Sources {
			badges[i] = t.badge().Render(string(src))
		}
		lines = append(lines, strings.Join(badges, " "))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderCardGrid lays metrics out in rows. first is the focus index of the
// first metric; the returned regions are relative to the grid.
func (m Model) renderCardGrid(t Theme, metrics []twin.Metric, first int) (string, []region) {
	if len(metrics) == 0 {
		return "", nil
	}

	perRow := m.cardsPerRow()
	width := m.cardWidth()
	focus := m.cursor[m.state.ActiveTab]

	var rows []string
	var hits []region
	y := 0
	for start := 0; start < len(metrics); start += perRow {
		end := min(start+perRow, len(metrics))

		var cards []string
		x := 0
		for i := start; i < end; i++ {
			index := first + i
			card := renderMetricCard(t, metrics[i], width, index == focus)
			if len(cards) > 0 {
				cards = append(cards, " ")
				x++
			}
			cards = append(cards, card)

			r := region{
				kind:  regionCard,
				x:     x,
				y:     y,
				w:     lipgloss.Width(card),
				h:     lipgloss.Height(card),
				index: index,
			}
			if metrics[i].Clickable() {
				r.metric = metrics[i].ID
			}
			hits = append(hits, r)
			x += r.w
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		y += lipgloss.Height(row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), hits
}

// spread places left and right at opposite ends of a line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// truncateWithEllipsis truncates s to maxLen columns, ending in "…" when cut.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen < 2 || lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > maxLen {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
