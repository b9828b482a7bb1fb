package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/feed"
	"github.com/rileyhilliard/hdt/internal/twin"
)

const (
	dashboardTitle = "Human Digital Twin - Cardiovascular Cockpit"
	cardHint       = "Click metrics to see data mapping"
	dataDrivenNote = "All metrics below are computed from a combination of Geometrical and " +
		"Physical Model data. Select any card (enter or click) to see its data mapping and formula."
)

// renderHeader renders the title block and returns the theme button region.
func (m Model) renderHeader(t Theme) (string, region) {
	width := m.contentWidth()

	heart := lipgloss.NewStyle().Foreground(t.HeartIcon).Render("♥")
	title := heart + " " + t.heading().Render(dashboardTitle)

	label := "Dark"
	if m.state.DarkMode {
		label = "Light"
	}
	button := t.secondary().Render("[ " + label + " ]")

	line := spread(title, button, width)
	bw := lipgloss.Width(button)
	themeButton := region{
		kind: regionTheme,
		x:    lipgloss.Width(line) - bw,
		w:    bw,
		h:    1,
	}

	subtitle := t.secondary().Render(fmt.Sprintf(
		"Real-time monitoring & analysis of %d cardiovascular parameters", twin.ActiveParameters))

	return line + "\n" + subtitle, themeButton
}

// renderTabs renders the tab bar and one region per tab label.
func (m Model) renderTabs(t Theme) (string, []region) {
	var parts []string
	var hits []region
	x := 0
	for i, tab := range Tabs {
		label := t.tab(tab == m.state.ActiveTab).Render(fmt.Sprintf(" %d %s ", i+1, tab.Label()))
		if i > 0 {
			parts = append(parts, " ")
			x++
		}
		parts = append(parts, label)

		w := lipgloss.Width(label)
		hits = append(hits, region{kind: regionTab, x: x, w: w, h: 1, tab: tab})
		x += w
	}
	return strings.Join(parts, ""), hits
}

// renderBody renders the active tab. Regions are relative to the body.
func (m Model) renderBody(t Theme) (string, []region) {
	var s stack

	switch m.state.ActiveTab {
	case TabOverview:
		s.add(m.renderVitalsBanner(t))

		performance := twin.PerformanceSection()
		title := spread(
			t.heading().Render("Data-Driven "+performance.Title),
			t.muted().Render(cardHint),
			m.contentWidth(),
		)
		grid, hits := m.renderCardGrid(t, performance.Metrics, 0)
		s.add(title+"\n"+grid, shiftRegions(hits, 1)...)

		s.add(m.renderStatusTiles(t))

	case TabGeometrical:
		m.addSections(&s, t, twin.GeometricalSections())

	case TabPhysical:
		m.addSections(&s, t, twin.PhysicalSections(m.vitals))

	case TabDataDriven:
		note := t.heading().Render(twin.ModelDataDriven.Title()+":") + " " + t.text().Render(dataDrivenNote)
		s.add(t.infoBox().Width(m.contentWidth() - 2).Render(note))
		m.addSections(&s, t, twin.DataDrivenSections())
	}

	return s.String(), s.regions
}

func (m Model) addSections(s *stack, t Theme, sections []twin.Section) {
	first := 0
	for _, section := range sections {
		grid, hits := m.renderCardGrid(t, section.Metrics, first)
		s.add(t.heading().Render(section.Title)+"\n"+grid, shiftRegions(hits, 1)...)
		first += len(section.Metrics)
	}
}

func shiftRegions(in []region, dy int) []region {
	out := make([]region, len(in))
	for i, r := range in {
		r.y += dy
		out[i] = r
	}
	return out
}

// renderVitalsBanner renders the live heart rate, blood pressure, SpO2 and
// temperature.
func (m Model) renderVitalsBanner(t Theme) string {
	width := m.contentWidth()
	banner := t.banner().Width(width)
	colWidth := (width - 4) / 4

	cell := lipgloss.NewStyle().
		Width(colWidth).
		Align(lipgloss.Center).
		Foreground(t.BannerText).
		Background(t.BannerBg)
	value := cell.Bold(true)

	trendWidth := min(colWidth-2, maxSparklineWidth)
	trend := func(field func(twin.Vitals) int, bounds feed.Bounds) string {
		return renderSparkline(m.history.Series(field), bounds, trendWidth)
	}

	v := m.vitals
	columns := []struct{ value, unit, label, trend string }{
		{fmt.Sprintf("%d", v.HeartRate), "bpm", "Heart Rate", trend(feed.HeartRate, feed.HeartRateBounds)},
		{fmt.Sprintf("%d/%d", v.Systolic, v.Diastolic), "mmHg", "Blood Pressure", trend(feed.Systolic, feed.SystolicBounds)},
		{fmt.Sprintf("%d", v.SpO2), "%", "SpO₂", trend(feed.SpO2, feed.SpO2Bounds)},
		// Temperature is not refreshed by the feed.
		{twin.FormatNumber(v.Temperature), "°C", "Temperature", ""},
	}

	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = lipgloss.JoinVertical(lipgloss.Center,
			value.Render(c.value),
			cell.Render(c.unit),
			cell.Render(c.label),
			cell.Render(c.trend),
		)
	}

	title := lipgloss.NewStyle().Bold(true).Render("♡ Real-Time Vital Signs")
	return banner.Render(title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// renderStatusTiles renders Overall Status, Active Parameters and Last Sync.
func (m Model) renderStatusTiles(t Theme) string {
	width := m.contentWidth()
	perRow := 3
	if width < BreakpointTwoColumns {
		perRow = 1
	}
	tileWidth := width/perRow - 1

	tiles := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Overall Status", "Normal", lipgloss.NewStyle().Bold(true).Foreground(t.Healthy)},
		{"Active Parameters", fmt.Sprintf("%d", twin.ActiveParameters), t.heading()},
		{"Last Sync", m.LastSync(), t.heading()},
	}

	rendered := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		content := t.secondary().Render(tile.label) + "\n" + tile.style.Render(tile.value)
		rendered = append(rendered, t.card(false).Width(tileWidth-2).Render(content))
	}

	if perRow == 1 {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered, " ")...)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

// renderFooter renders the key hints.
func (m Model) renderFooter(t Theme) string {
	h := m.help
	h.Width = m.contentWidth()
	h.Styles.ShortKey = t.secondary()
	h.Styles.ShortDesc = t.muted()
	h.Styles.ShortSeparator = t.muted()
	return h.View(m.keys)
}

func formatSeconds(n int) string {
	return fmt.Sprintf("%ds", n)
}
