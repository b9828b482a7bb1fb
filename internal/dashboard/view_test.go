package dashboard

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Header(t *testing.T) {
	view := newTestModel(t, Options{}).View()

	assert.Contains(t, view, "Human Digital Twin - Cardiovascular Cockpit")
	assert.Contains(t, view, "Real-time monitoring & analysis of 150 cardiovascular parameters")
	assert.Contains(t, view, "[ Dark ]")
	for _, tab := range Tabs {
		assert.Contains(t, view, tab.Label())
	}
}

func TestView_ThemeButtonNamesOtherTheme(t *testing.T) {
	m := newTestModel(t, Options{DarkMode: true})
	assert.Contains(t, m.View(), "[ Light ]")
}

func TestView_ToggleThemeTwiceRestores(t *testing.T) {
	m := newTestModel(t, Options{StartTab: TabDataDriven})
	original := m.View()

	m = press(t, m, "t")
	assert.NotEqual(t, original, m.View())

	m = press(t, m, "t")
	assert.Equal(t, original, m.View())
}

func TestView_Overview(t *testing.T) {
	now := epoch
	m := newTestModel(t, Options{Now: func() time.Time { return now }})
	view := m.View()

	assert.Contains(t, view, "Real-Time Vital Signs")
	assert.Contains(t, view, "72")
	assert.Contains(t, view, "120/80")
	assert.Contains(t, view, "98")
	assert.Contains(t, view, "36.8")

	assert.Contains(t, view, "Data-Driven Cardiac Performance")
	assert.Contains(t, view, cardHint)
	for _, id := range []twin.MetricID{twin.CardiacOutput, twin.StrokeVolume, twin.EjectionFraction, twin.CardiacIndex} {
		assert.Contains(t, view, string(id))
	}

	assert.Contains(t, view, "Overall Status")
	assert.Contains(t, view, "Normal")
	assert.Contains(t, view, "Active Parameters")
	assert.Contains(t, view, "Last Sync")
	assert.Contains(t, view, "Just now")

	now = epoch.Add(3 * time.Second)
	assert.Contains(t, m.View(), "3s ago")
}

func TestView_GeometricalShowsNormalRanges(t *testing.T) {
	view := newTestModel(t, Options{StartTab: TabGeometrical}).View()

	for _, title := range []string{"Cardiac Chambers", "Vessels & Walls", "Valvular Geometry"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Normal: 67-155")
	assert.Contains(t, view, "Pulmonary Annulus")
}

func TestView_Physical(t *testing.T) {
	view := newTestModel(t, Options{StartTab: TabPhysical}).View()

	for _, title := range []string{"Hemodynamic Parameters", "Blood Properties", "Biomarkers"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Troponin")
	assert.Contains(t, view, "0.02")
	assert.NotContains(t, view, "Normal:")
}

func TestView_DataDrivenShowsBannerAndBadges(t *testing.T) {
	view := newTestModel(t, Options{StartTab: TabDataDriven}).View()

	assert.Contains(t, view, "Data-Driven Model:")
	for _, title := range []string{"Cardiac Performance", "Vascular Resistance", "Biomechanical Analysis", "Flow Dynamics"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Geometrical")
	assert.Contains(t, view, "Physical")
	assert.Contains(t, view, "⑂")
}

func TestView_FocusMarker(t *testing.T) {
	m := newTestModel(t, Options{StartTab: TabDataDriven})
	assert.Contains(t, m.View(), "▸ Cardiac Output")

	m = press(t, m, "l")
	assert.Contains(t, m.View(), "▸ Stroke Volume")
	assert.NotContains(t, m.View(), "▸ Cardiac Output")
}

func TestView_ModalSections(t *testing.T) {
	tests := []struct {
		id          twin.MetricID
		geometrical bool
		physical    bool
	}{
		{twin.CardiacOutput, true, true},
		{twin.StrokeVolume, true, false},
		{twin.MAP, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			m := newTestModel(t, Options{})
			m.openModal(tt.id)
			require.True(t, m.State().ModalOpen())

			view := m.View()
			entry, _ := twin.LookupFormula(tt.id)
			assert.Contains(t, view, string(tt.id))
			assert.Contains(t, view, "Formula")
			assert.Contains(t, view, "Calculation Method")
			assert.Contains(t, view, entry.Formula)
			assert.Equal(t, tt.geometrical, strings.Contains(view, "Geometrical Data Sources"))
			assert.Equal(t, tt.physical, strings.Contains(view, "Physical Data Sources"))
		})
	}
}

func TestView_UnknownMetricDoesNotOpen(t *testing.T) {
	m := newTestModel(t, Options{})
	before := m.View()

	m.openModal(twin.MetricID("Heart Rate"))
	assert.False(t, m.State().ModalOpen())
	assert.Equal(t, before, m.View())
}

func TestView_FitsTerminal(t *testing.T) {
	m := update(t, newTestModel(t, Options{StartTab: TabDataDriven}), tea.WindowSizeMsg{Width: 90, Height: 25})

	view := m.View()
	assert.Equal(t, 25, lipgloss.Height(view))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 90)
	}
}

func TestRenderMetricCard(t *testing.T) {
	metric := twin.Metric{
		ID:      twin.FFR,
		Name:    "FFR",
		Value:   0.92,
		Unit:    "ratio",
		Status:  twin.StatusCritical,
		Sources: []twin.Source{twin.SourceGeometrical, twin.SourcePhysical},
	}

	card := renderMetricCard(LightTheme, metric, 30, false)
	assert.Equal(t, 30, lipgloss.Width(card))
	assert.Contains(t, card, "FFR")
	assert.Contains(t, card, "0.92 ratio")
	assert.Contains(t, card, "⑂")

	plain := renderMetricCard(LightTheme, twin.Metric{Name: "LV Volume", Value: 145, Unit: "mL", NormalRange: "67-155"}, 30, true)
	assert.Contains(t, plain, "▸ LV Volume")
	assert.Contains(t, plain, "Normal: 67-155")
	assert.NotContains(t, plain, "⑂")
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, LightTheme, ThemeFor(false))
	assert.Equal(t, DarkTheme, ThemeFor(true))
	assert.NotEqual(t, LightTheme.Background, DarkTheme.Background)
}

func TestTheme_StatusColor(t *testing.T) {
	th := LightTheme
	assert.Equal(t, th.Healthy, th.StatusColor(twin.StatusNormal))
	assert.Equal(t, th.Healthy, th.StatusColor(twin.StatusUnset))
	assert.Equal(t, th.Warning, th.StatusColor(twin.StatusWarning))
	assert.Equal(t, th.Critical, th.StatusColor(twin.StatusCritical))
	assert.Equal(t, th.Healthy, th.StatusColor(twin.Status(42)))
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		in     string
		max    int
		expect string
	}{
		{"Cardiac Output", 20, "Cardiac Output"},
		{"Coronary Flow Reserve", 10, "Coronary…"},
		{"abc", 1, "abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, truncateWithEllipsis(tt.in, tt.max))
	}
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "a   b", spread("a", "b", 5))
	assert.Equal(t, "abc b", spread("abc", "b", 3))
}
