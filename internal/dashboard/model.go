package dashboard

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rileyhilliard/hdt/internal/feed"
	"github.com/rileyhilliard/hdt/internal/logger"
	"github.com/rileyhilliard/hdt/internal/twin"
)

// Ticker delivers feed ticks. *feed.Handle satisfies it.
type Ticker interface {
	C() <-chan time.Time
}

// Options configures a new dashboard model.
type Options struct {
	DarkMode bool
	StartTab Tab

	// Ticks drives the vitals refresh. Nil leaves the vitals static.
	Ticks  Ticker
	Jitter *feed.Jitter

	Logger logger.Logger
	// Now is the clock used for the Last Sync tile. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the cockpit dashboard.
type Model struct {
	state    ViewState
	vitals   twin.Vitals
	history  *feed.History
	lastSync time.Time
	ticks    Ticker
	jitter   *feed.Jitter

	cursor   [4]int // focused card per tab
	scroll   int
	width    int
	height   int
	showHelp bool
	quitting bool

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	session string
	log     logger.Logger
	now     func() time.Time
}

// feedTickMsg carries a tick from the live feed.
type feedTickMsg time.Time

// clockMsg refreshes the Last Sync tile between feed ticks.
type clockMsg time.Time

const clockInterval = time.Second

// NewModel creates a dashboard with the initial vitals and the given options.
func NewModel(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	jitter := opts.Jitter
	if jitter == nil {
		jitter = feed.NewJitter(nil)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	history := feed.NewHistory(feed.DefaultHistorySize)
	history.Push(twin.InitialVitals())

	session := uuid.NewString()
	m := Model{
		state: ViewState{
			ActiveTab: opts.StartTab,
			DarkMode:  opts.DarkMode,
		},
		vitals:   twin.InitialVitals(),
		history:  history,
		lastSync: now(),
		ticks:    opts.Ticks,
		jitter:   jitter,
		keys:     keys,
		help:     help.New(),
		viewport: viewport.New(defaultWidth, 0),
		session:  session,
		log:      logger.With(log, "["+session[:8]+"]"),
		now:      now,
	}
	m.log.Debug("dashboard mounted on %s tab, theme %s", m.state.ActiveTab.Name(), m.Theme().Name)
	return m
}

// Init starts listening for feed ticks and the Last Sync clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForTick(m.ticks),
		clockCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		m.HandleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = m.bodyHeight()
		m.clampScroll()

	case feedTickMsg:
		m.vitals = m.jitter.Next(m.vitals)
		m.history.Push(m.vitals)
		m.lastSync = time.Time(msg)
		return m, waitForTick(m.ticks)

	case clockMsg:
		return m, clockCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.compose().view
}

// waitForTick blocks on the next feed tick. A closed channel ends the loop.
func waitForTick(t Ticker) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		at, ok := <-t.C()
		if !ok {
			return nil
		}
		return feedTickMsg(at)
	}
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// State returns a copy of the view state.
func (m Model) State() ViewState {
	return m.state
}

// Vitals returns the vitals currently on screen.
func (m Model) Vitals() twin.Vitals {
	return m.vitals
}

// Theme returns the active palette.
func (m Model) Theme() Theme {
	return ThemeFor(m.state.DarkMode)
}

// Session returns the id tagging this dashboard's log lines.
func (m Model) Session() string {
	return m.session
}

// LastSync renders the time since the last feed tick.
func (m Model) LastSync() string {
	elapsed := m.now().Sub(m.lastSync)
	if elapsed < time.Second {
		return "Just now"
	}
	return formatSeconds(int(elapsed.Seconds())) + " ago"
}

func (m *Model) selectTab(t Tab) {
	if t == m.state.ActiveTab {
		return
	}
	m.state.SelectTab(t)
	m.scroll = 0
	m.ensureFocusVisible()
	m.log.Debug("tab %s", t.Name())
}

func (m *Model) openModal(id twin.MetricID) {
	if !m.state.Open(id) {
		m.log.Debug("no formula for %q", id)
		return
	}
	m.log.Debug("formula opened: %s", id)
}

func (m *Model) closeModal() {
	m.log.Debug("formula closed: %s", m.state.Selected())
	m.state.Close()
}

func (m *Model) toggleTheme() {
	m.state.ToggleTheme()
	m.log.Debug("theme %s", m.Theme().Name)
}

// focusableMetrics lists the cards of the active tab in focus order.
func (m Model) focusableMetrics() []twin.Metric {
	var sections []twin.Section
	switch m.state.ActiveTab {
	case TabOverview:
		sections = []twin.Section{twin.PerformanceSection()}
	case TabGeometrical:
		sections = twin.GeometricalSections()
	case TabPhysical:
		sections = twin.PhysicalSections(m.vitals)
	case TabDataDriven:
		sections = twin.DataDrivenSections()
	}

	var metrics []twin.Metric
	for _, s := range sections {
		metrics = append(metrics, s.Metrics...)
	}
	return metrics
}

func (m Model) focusedMetric() (twin.Metric, bool) {
	metrics := m.focusableMetrics()
	i := m.cursor[m.state.ActiveTab]
	if i < 0 || i >= len(metrics) {
		return twin.Metric{}, false
	}
	return metrics[i], true
}

func (m *Model) moveFocus(delta int) {
	n := len(m.focusableMetrics())
	if n == 0 {
		return
	}
	i := m.cursor[m.state.ActiveTab] + delta
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	m.cursor[m.state.ActiveTab] = i
	m.ensureFocusVisible()
}
