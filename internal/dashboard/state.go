package dashboard

import "github.com/rileyhilliard/hdt/internal/twin"

// ViewState is the user-visible state of one mounted dashboard.
type ViewState struct {
	ActiveTab Tab
	// SelectedMetric is the metric whose formula modal is open; nil when closed.
	SelectedMetric *twin.MetricID
	DarkMode       bool
}

// SelectTab makes t the active tab.
func (s *ViewState) SelectTab(t Tab) {
	s.ActiveTab = t
}

// Open shows the formula modal for id. Ids without a formula entry leave the
// modal closed and report false.
func (s *ViewState) Open(id twin.MetricID) bool {
	if _, ok := twin.LookupFormula(id); !ok {
		return false
	}
	s.SelectedMetric = &id
	return true
}

// Close hides the formula modal.
func (s *ViewState) Close() {
	s.SelectedMetric = nil
}

// ToggleTheme flips between light and dark mode.
func (s *ViewState) ToggleTheme() {
	s.DarkMode = !s.DarkMode
}

// ModalOpen reports whether a formula modal is showing.
func (s ViewState) ModalOpen() bool {
	return s.SelectedMetric != nil
}

// Selected returns the open metric, or "" when the modal is closed.
func (s ViewState) Selected() twin.MetricID {
	if s.SelectedMetric == nil {
		return ""
	}
	return *s.SelectedMetric
}
