package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/hdt/internal/errors"
)

// MinFeedInterval is the fastest refresh the config accepts.
const MinFeedInterval = 100 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but hdt only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade hdt or lower the version in .hdt.yaml")
	}

	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}

	if err := ValidateTab(cfg.StartTab); err != nil {
		return err
	}

	if err := validateFeed(cfg.Feed); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'feed' section in your .hdt.yaml.")
	}

	return nil
}

// ValidateTheme checks a theme name.
func ValidateTheme(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Theme '%s' isn't valid", theme),
		"Use 'light' or 'dark'.")
}

// ValidateTab checks a tab name.
func ValidateTab(tab string) error {
	for _, t := range ValidTabs {
		if tab == t {
			return nil
		}
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("Tab '%s' isn't valid", tab),
		"Pick one of: "+strings.Join(ValidTabs, ", "))
}

// validateFeed checks feed configuration.
func validateFeed(feed FeedConfig) error {
	if feed.Interval == "" {
		return nil
	}
	d, err := time.ParseDuration(feed.Interval)
	if err != nil {
		return fmt.Errorf("feed.interval '%s' doesn't look like a valid duration - try something like '2s' or '500ms'", feed.Interval)
	}
	if d < MinFeedInterval {
		return fmt.Errorf("feed.interval %s is faster than the %s minimum", d, MinFeedInterval)
	}
	return nil
}

// ValidateValue checks a single value for a settable key before it is written.
// Boolean keys are checked by SetValue itself.
func ValidateValue(key, value string) error {
	switch key {
	case "theme":
		return ValidateTheme(value)
	case "start_tab":
		return ValidateTab(value)
	case "feed.interval":
		if err := validateFeed(FeedConfig{Interval: value}); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Try something like '2s' or '500ms'.")
		}
	}
	return nil
}
