// Package twin holds the static data model of the cardiovascular digital twin:
// the reference tables shown by the dashboard, the formula registry that
// describes how each data-driven metric is derived, and the live vitals record.
//
// Nothing in this package computes physiology. Values are literals and formula
// entries are descriptive text.
package twin

import "fmt"

// Status is the clinical status attached to a metric.
type Status int

const (
	// StatusUnset means the table row carries no status. Rendered as normal.
	StatusUnset Status = iota
	StatusNormal
	StatusWarning
	StatusCritical
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	default:
		return "unset"
	}
}

// MarshalText renders the status by name in YAML and JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name. Empty text is unset.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "unset":
		*s = StatusUnset
	case "normal":
		*s = StatusNormal
	case "warning":
		*s = StatusWarning
	case "critical":
		*s = StatusCritical
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// Source names the model a data-driven metric draws its inputs from.
type Source string

const (
	SourceGeometrical Source = "Geometrical"
	SourcePhysical    Source = "Physical"
)

// MetricID identifies a data-driven metric. The value is the display label;
// the typed constants are the join between the data-driven tables and the
// formula registry.
type MetricID string

// Metric is one named, unit-tagged value with optional normal range, status, and sources.
type Metric struct {
	ID          MetricID `yaml:"id,omitempty" json:"id,omitempty"`
	Name        string   `yaml:"name" json:"name"`
	Value       float64  `yaml:"value" json:"value"`
	Unit        string   `yaml:"unit" json:"unit"`
	NormalRange string   `yaml:"normal_range,omitempty" json:"normal_range,omitempty"`
	Status      Status   `yaml:"status,omitempty" json:"status,omitempty"`
	Sources     []Source `yaml:"sources,omitempty" json:"sources,omitempty"`
}

// Clickable reports whether the metric opens a formula explanation.
func (m Metric) Clickable() bool {
	return m.ID != ""
}

// DisplayStatus returns the status used for rendering; unset rows render as normal.
func (m Metric) DisplayStatus() Status {
	if m.Status == StatusUnset {
		return StatusNormal
	}
	return m.Status
}

// FormatValue renders the value without trailing zeros (72, 5.2, 0.02, -18.5).
func (m Metric) FormatValue() string {
	return FormatNumber(m.Value)
}

// FormatNumber formats a float the way the dashboard shows table values.
func FormatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}

// Section is a titled group of metrics rendered as one card grid.
type Section struct {
	Title   string   `yaml:"title" json:"title"`
	Metrics []Metric `yaml:"metrics" json:"metrics"`
}

// Model identifies one of the three data models shown as dashboard tabs.
type Model string

const (
	ModelGeometrical Model = "geometrical"
	ModelPhysical    Model = "physical"
	ModelDataDriven  Model = "data-driven"
)

// Models lists the data models in tab order.
var Models = []Model{ModelGeometrical, ModelPhysical, ModelDataDriven}

// Title returns the human-readable model name.
func (m Model) Title() string {
	switch m {
	case ModelGeometrical:
		return "Geometrical Model"
	case ModelPhysical:
		return "Physical Model"
	case ModelDataDriven:
		return "Data-Driven Model"
	default:
		return string(m)
	}
}

// ParseModel resolves a model name.
func ParseModel(s string) (Model, bool) {
	for _, m := range Models {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}
