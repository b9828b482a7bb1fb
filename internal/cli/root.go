package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/hdt/internal/logger"
	"github.com/rileyhilliard/hdt/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootDashFlags holds the dashboard flags given to bare "hdt".
var rootDashFlags dashboardFlags

var rootCmd = &cobra.Command{
	Use:   "hdt",
	Short: "Human Digital Twin cardiovascular cockpit",
	Long: `hdt is a terminal dashboard for a simulated cardiovascular digital twin.

It shows vital signs, chamber geometry, hemodynamic values, and derived
indices across four tabs. Derived metrics open a panel explaining how they
are computed from the geometrical and physical models.

Run without a subcommand to open the dashboard.

Examples:
  hdt
  hdt --theme dark --tab data-driven
  hdt formula "Cardiac Output"
  hdt tables --model physical`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applyGlobalFlags()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(rootDashFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .hdt.yaml, then ~/.config/hdt/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs (to hdt-debug.log while the dashboard runs)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&machineMode, "json", false, "machine-readable JSON output")

	addDashboardFlags(rootCmd, &rootDashFlags)
}

// applyGlobalFlags wires the global flags into the logger and ui packages.
func applyGlobalFlags() {
	if verbose {
		logger.SetVerbose(true)
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(handleError(os.Stderr, err))
	}
}

// handleError prints err for humans or machines and returns the exit code.
func handleError(w io.Writer, err error) int {
	if machineMode {
		_ = WriteJSONFromError(w, err)
		return 1
	}

	if isUnknownCommandError(err) {
		fmt.Fprintln(w, friendlyError(err))
		return 2
	}

	fmt.Fprint(w, err.Error())
	if !strings.HasSuffix(err.Error(), "\n") {
		fmt.Fprintln(w)
	}
	return 1
}

// friendlyError rewrites cobra's usage errors with a pointer to --help.
func friendlyError(err error) string {
	if name := extractUnknownCommand(err); name != "" {
		return fmt.Sprintf("%s '%s' isn't an hdt command\n\n  Run 'hdt --help' to see what's available.",
			ui.SymbolFail, name)
	}
	return fmt.Sprintf("%s %s\n\n  Run 'hdt --help' for usage.", ui.SymbolFail, err.Error())
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "hdt"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
