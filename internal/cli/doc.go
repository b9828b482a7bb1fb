// Package cli implements the hdt command-line interface.
//
// The package is organized around Cobra commands. Each command is a thin
// cobra.Command that delegates to a function taking an io.Writer, so the
// output can be tested without a terminal.
//
// # Command Structure
//
// The root command mounts the dashboard when run without a subcommand:
//
//	hdt                    - Mount the cockpit dashboard
//	hdt dashboard          - Same, explicitly
//	hdt formula [metric]   - Explain how a data-driven metric is derived
//	hdt tables             - Print the reference tables (text, yaml, json)
//	hdt init               - Create .hdt.yaml with defaults
//	hdt config show|set    - Inspect or edit the config file
//	hdt version            - Print build information
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color, --json) are defined on the
// root command and available to all subcommands. Dashboard flags (--theme,
// --tab, --interval, --no-mouse, --no-feed) are registered on both the root
// command and "hdt dashboard" and override the config file.
//
// # Terminal Ownership
//
// While the dashboard runs, Bubble Tea owns the terminal. Standard log output
// goes to hdt-debug.log when debugging is on and is discarded otherwise. The
// feed timer is acquired before the program starts and released by a
// deferred Stop on every exit path.
package cli
