package cli

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/dashboard"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/feed"
	"github.com/rileyhilliard/hdt/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives standard log output while the dashboard owns the terminal.
const debugLogFile = "hdt-debug.log"

var dashCmdFlags dashboardFlags

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the cockpit dashboard",
	Long: `Open the cardiovascular cockpit in the terminal.

Flags override the config file for this session only.

Keys:
  1-4 / tab      switch tabs
  arrows / hjkl  move between cards
  enter          explain the focused derived metric
  esc / x        close the explanation
  t              toggle light/dark
  ?              show all keys
  q              quit

Examples:
  hdt dashboard
  hdt dashboard --theme dark
  hdt dashboard --tab physical --interval 500ms
  hdt dashboard --no-mouse`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashCmdFlags)
	},
}

func init() {
	addDashboardFlags(dashboardCmd, &dashCmdFlags)
	rootCmd.AddCommand(dashboardCmd)
}

// isInteractive reports whether stdin and stdout are both terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// dashboardSettings is the resolved configuration for one mounted session.
type dashboardSettings struct {
	DarkMode bool
	StartTab dashboard.Tab
	Mouse    bool
	Feed     bool
	Interval time.Duration
}

// resolveDashboard merges the flags over the config and validates the result.
func resolveDashboard(cfg *config.Config, flags dashboardFlags) (dashboardSettings, error) {
	merged := *cfg

	if flags.Theme != "" {
		merged.Theme = strings.ToLower(strings.TrimSpace(flags.Theme))
	}
	if flags.Tab != "" {
		merged.StartTab = strings.ToLower(strings.TrimSpace(flags.Tab))
	}
	if flags.Interval != "" {
		d, err := ParseInterval(flags.Interval)
		if err != nil {
			return dashboardSettings{}, err
		}
		merged.Feed.Interval = d.String()
	}
	if flags.NoMouse {
		merged.Mouse = false
	}
	if flags.NoFeed {
		merged.Feed.Enabled = false
	}

	if err := config.Validate(&merged); err != nil {
		return dashboardSettings{}, err
	}

	tab, _ := dashboard.ParseTab(merged.StartTab)
	return dashboardSettings{
		DarkMode: merged.DarkMode(),
		StartTab: tab,
		Mouse:    merged.Mouse,
		Feed:     merged.Feed.Enabled,
		Interval: merged.Feed.IntervalDuration(feed.DefaultInterval),
	}, nil
}

// dashboardCommand mounts exactly one dashboard and blocks until it exits.
func dashboardCommand(flags dashboardFlags) error {
	cfg, cfgPath, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	settings, err := resolveDashboard(cfg, flags)
	if err != nil {
		return err
	}

	if !isInteractive() {
		return errors.New(errors.ErrRender,
			"The dashboard needs an interactive terminal",
			"Run hdt from a terminal, or use 'hdt tables' and 'hdt formula' for plain output.")
	}

	restoreLog, err := redirectLog()
	if err != nil {
		return err
	}
	defer restoreLog()

	appLog := logger.NewEnvLogger("[hdt]")
	if cfgPath != "" {
		appLog.Debug("config loaded from %s", cfgPath)
	}

	var ticks dashboard.Ticker
	if settings.Feed {
		handle := feed.Start(settings.Interval, appLog)
		defer handle.Stop()
		ticks = handle
	}

	model := dashboard.NewModel(dashboard.Options{
		DarkMode: settings.DarkMode,
		StartTab: settings.StartTab,
		Ticks:    ticks,
		Logger:   appLog,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The dashboard stopped unexpectedly",
			"Run with --verbose and check "+debugLogFile+" for details.")
	}
	return nil
}

// redirectLog keeps standard log output off the screen while the TUI runs.
// The returned func restores stderr logging.
func redirectLog() (func(), error) {
	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(debugLogFile, "")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't open "+debugLogFile,
			"Check that the current directory is writable, or run without --verbose.")
	}
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
