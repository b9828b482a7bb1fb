package dashboard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/twin"
)

// defaultWidth is used before the first WindowSizeMsg arrives.
const defaultWidth = 100

// Fixed chrome around the scrolling body: header (2), tab bar (1),
// footer (1) and the three blank separator lines.
const chromeHeight = 7

// Width breakpoints for the card grid.
const (
	BreakpointTwoColumns  = 60
	BreakpointFourColumns = 120
)

const wheelStep = 3

type regionKind int

const (
	regionTab regionKind = iota
	regionTheme
	regionCard
)

// region is a clickable rectangle recorded during a render pass.
type region struct {
	kind       regionKind
	x, y, w, h int

	tab    Tab
	index  int // card position in the tab's focus order
	metric twin.MetricID
}

func (r region) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// screen is one render pass: the text plus what was drawn where.
type screen struct {
	view    string
	regions []region
	modal   region // zero-sized unless a modal is showing
}

func (s screen) hit(x, y int) (region, bool) {
	for _, r := range s.regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return region{}, false
}

// stack joins blocks vertically with a blank line between them and keeps the
// regions of each block in stack coordinates.
type stack struct {
	blocks  []string
	height  int
	regions []region
}

func (s *stack) add(block string, hits ...region) {
	if len(s.blocks) > 0 {
		s.height++ // separator line
	}
	for _, r := range hits {
		r.y += s.height
		s.regions = append(s.regions, r)
	}
	s.blocks = append(s.blocks, block)
	s.height += lipgloss.Height(block)
}

func (s *stack) String() string {
	return strings.Join(s.blocks, "\n\n")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) cardsPerRow() int {
	switch w := m.contentWidth(); {
	case w >= BreakpointFourColumns:
		return 4
	case w >= BreakpointTwoColumns:
		return 2
	default:
		return 1
	}
}

// cardWidth is the rendered width of one card, borders included.
func (m Model) cardWidth() int {
	return m.contentWidth()/m.cardsPerRow() - 1
}

// bodyHeight is the number of rows available to the scrolling body.
// Zero means the terminal size is unknown and the body is not clipped.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	if h := m.height - chromeHeight; h > 1 {
		return h
	}
	return 1
}

func (m Model) pageSize() int {
	if h := m.bodyHeight(); h > 1 {
		return h - 1
	}
	return 1
}

func (m Model) maxScroll() int {
	h := m.bodyHeight()
	if h == 0 {
		return 0
	}
	body, _ := m.renderBody(m.Theme())
	if extra := lipgloss.Height(body) - h; extra > 0 {
		return extra
	}
	return 0
}

func (m *Model) clampScroll() {
	if limit := m.maxScroll(); m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) scrollBy(n int) {
	m.scroll += n
	m.clampScroll()
}

// ensureFocusVisible scrolls the body so the focused card is on screen.
func (m *Model) ensureFocusVisible() {
	h := m.bodyHeight()
	if h == 0 {
		return
	}
	_, hits := m.renderBody(m.Theme())
	focus := m.cursor[m.state.ActiveTab]
	for _, r := range hits {
		if r.kind != regionCard || r.index != focus {
			continue
		}
		if r.y < m.scroll {
			m.scroll = r.y
		}
		if r.y+r.h > m.scroll+h {
			m.scroll = r.y + r.h - h
		}
		break
	}
	m.clampScroll()
}

// compose renders the full screen and records its clickable regions.
func (m Model) compose() screen {
	t := m.Theme()

	if m.state.ModalOpen() {
		return m.composeModal(t)
	}
	if m.showHelp {
		return screen{view: m.renderHelpOverlay(t)}
	}

	var s stack
	header, themeButton := m.renderHeader(t)
	s.add(header, themeButton)

	tabs, tabHits := m.renderTabs(t)
	s.add(tabs, tabHits...)

	body, bodyHits := m.renderBody(t)
	if h := m.bodyHeight(); h > 0 {
		vp := m.viewport
		vp.Width = m.contentWidth()
		vp.Height = h
		vp.SetContent(body)
		vp.SetYOffset(m.scroll)
		body = vp.View()
		bodyHits = clipRegions(bodyHits, vp.YOffset, h)
	}
	s.add(body, bodyHits...)

	s.add(m.renderFooter(t))

	return screen{view: s.String(), regions: s.regions}
}

// clipRegions shifts body regions by the scroll offset and drops or trims
// the ones outside the visible rows.
func clipRegions(in []region, offset, height int) []region {
	var out []region
	for _, r := range in {
		top := r.y - offset
		bottom := top + r.h
		if bottom <= 0 || top >= height {
			continue
		}
		if top < 0 {
			top = 0
		}
		if bottom > height {
			bottom = height
		}
		r.y = top
		r.h = bottom - top
		out = append(out, r)
	}
	return out
}

func (m Model) composeModal(t Theme) screen {
	box := m.renderModal(t)
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)

	if m.width <= 0 || m.height <= 0 {
		return screen{view: box, modal: region{w: bw, h: bh}}
	}

	view := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(t.Background),
	)
	return screen{
		view:  view,
		modal: region{x: max(0, (m.width-bw)/2), y: max(0, (m.height-bh)/2), w: bw, h: bh},
	}
}

// HandleMouseMsg resolves a mouse event against the current render pass.
func (m *Model) HandleMouseMsg(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if !m.state.ModalOpen() {
			m.scrollBy(-wheelStep)
		}
		return
	case tea.MouseButtonWheelDown:
		if !m.state.ModalOpen() {
			m.scrollBy(wheelStep)
		}
		return
	case tea.MouseButtonLeft:
	default:
		return
	}

	s := m.compose()

	if m.state.ModalOpen() {
		if !s.modal.contains(msg.X, msg.Y) {
			m.closeModal()
		}
		return
	}
	if m.showHelp {
		m.showHelp = false
		return
	}

	r, ok := s.hit(msg.X, msg.Y)
	if !ok {
		return
	}
	switch r.kind {
	case regionTab:
		m.selectTab(r.tab)
	case regionTheme:
		m.toggleTheme()
	case regionCard:
		m.cursor[m.state.ActiveTab] = r.index
		if r.metric != "" {
			m.openModal(r.metric)
		}
	}
}
