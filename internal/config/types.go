package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Theme names accepted by the dashboard.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Tab names accepted for start_tab.
const (
	TabOverview    = "overview"
	TabGeometrical = "geometrical"
	TabPhysical    = "physical"
	TabDataDriven  = "data-driven"
)

// ValidTabs lists tab names in display order.
var ValidTabs = []string{TabOverview, TabGeometrical, TabPhysical, TabDataDriven}

// Config represents the complete .hdt.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version" json:"version"`

	// Theme is the initial color scheme: light or dark.
	Theme string `yaml:"theme" mapstructure:"theme" json:"theme"`

	// StartTab is the tab shown when the dashboard mounts.
	StartTab string `yaml:"start_tab" mapstructure:"start_tab" json:"start_tab"`

	// Mouse enables click handling for tabs, cards, and the modal.
	Mouse bool `yaml:"mouse" mapstructure:"mouse" json:"mouse"`

	Feed FeedConfig `yaml:"feed" mapstructure:"feed" json:"feed"`
}

// FeedConfig controls the simulated vitals refresh.
type FeedConfig struct {
	// Enabled toggles the refresh timer. When off the vitals stay at their initial values.
	Enabled bool `yaml:"enabled" mapstructure:"enabled" json:"enabled"`

	// Interval is the refresh cadence as a Go duration string (e.g. "2s").
	Interval string `yaml:"interval" mapstructure:"interval" json:"interval"`
}

// DefaultConfig returns a config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		Version:  CurrentConfigVersion,
		Theme:    ThemeLight,
		StartTab: TabOverview,
		Mouse:    true,
		Feed: FeedConfig{
			Enabled:  true,
			Interval: "2s",
		},
	}
}

// IntervalDuration parses the feed interval, returning def when empty or invalid.
func (f FeedConfig) IntervalDuration(def time.Duration) time.Duration {
	return parseDuration(f.Interval, def)
}

// DarkMode reports whether the configured theme is dark.
func (c *Config) DarkMode() bool {
	return c.Theme == ThemeDark
}
