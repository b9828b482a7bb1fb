package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/feed"
	"github.com/spf13/cobra"
)

// dashboardFlags holds the flags that override the config for one session.
type dashboardFlags struct {
	Theme    string
	Tab      string
	Interval string
	NoMouse  bool
	NoFeed   bool
}

// addDashboardFlags registers --theme, --tab, --interval, --no-mouse, and --no-feed on a command.
func addDashboardFlags(cmd *cobra.Command, flags *dashboardFlags) {
	cmd.Flags().StringVar(&flags.Theme, "theme", "", "color scheme: light or dark")
	cmd.Flags().StringVar(&flags.Tab, "tab", "", "start tab: "+strings.Join(config.ValidTabs, ", "))
	cmd.Flags().StringVar(&flags.Interval, "interval", "", "vitals refresh interval (e.g., 2s, 500ms)")
	cmd.Flags().BoolVar(&flags.NoMouse, "no-mouse", false, "disable mouse clicks")
	cmd.Flags().BoolVar(&flags.NoFeed, "no-feed", false, "keep the vitals static")
}

// ParseInterval parses a refresh interval flag into a duration.
// Returns zero duration if the flag is empty.
func ParseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 2s, 5s, or 500ms.")
	}
	if duration < feed.MinInterval {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is faster than the %s minimum", duration, feed.MinInterval),
			"Pick an interval of at least "+feed.MinInterval.String()+".")
	}
	return duration, nil
}
