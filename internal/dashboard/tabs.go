package dashboard

import (
	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/twin"
)

// Tab identifies one of the dashboard's four views.
type Tab int

const (
	TabOverview Tab = iota
	TabGeometrical
	TabPhysical
	TabDataDriven
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabOverview, TabGeometrical, TabPhysical, TabDataDriven}

// Label returns the tab bar text.
func (t Tab) Label() string {
	switch t {
	case TabGeometrical:
		return twin.ModelGeometrical.Title()
	case TabPhysical:
		return twin.ModelPhysical.Title()
	case TabDataDriven:
		return twin.ModelDataDriven.Title()
	default:
		return "Overview"
	}
}

// Name returns the config name of the tab (overview, geometrical, ...).
func (t Tab) Name() string {
	switch t {
	case TabGeometrical:
		return config.TabGeometrical
	case TabPhysical:
		return config.TabPhysical
	case TabDataDriven:
		return config.TabDataDriven
	default:
		return config.TabOverview
	}
}

// Next cycles to the following tab.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev cycles to the preceding tab.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}

// ParseTab resolves a config tab name. Unknown names report false.
func ParseTab(name string) (Tab, bool) {
	for _, t := range Tabs {
		if t.Name() == name {
			return t, true
		}
	}
	return TabOverview, false
}
