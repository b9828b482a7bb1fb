package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir       string // Directory for the project config; defaults to cwd
	Global    bool   // Write ~/.config/hdt/config.yaml instead
	Overwrite bool   // Overwrite existing config without asking
}

var initOpts InitOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .hdt.yaml configuration",
	Long: `Create a .hdt.yaml file in the current directory with default settings.

Use --global to write ~/.config/hdt/config.yaml, which applies whenever no
project file is found.

Examples:
  hdt init
  hdt init --force
  hdt init --global`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), initOpts)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initOpts.Global, "global", false, "write the global config instead of .hdt.yaml")
	rootCmd.AddCommand(initCmd)
}

// confirmOverwrite asks before replacing an existing config file.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --force to overwrite")
	}
	return overwrite, nil
}

// initConfigPath returns where init writes for the given options.
func initConfigPath(opts InitOptions) (string, error) {
	if opts.Global {
		path := config.GlobalConfigPath()
		if path == "" {
			return "", errors.New(errors.ErrConfig,
				"Cannot determine your home directory",
				"Set HOME, or run 'hdt init' without --global.")
		}
		return path, nil
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, config.ConfigFileName), nil
}

// Init writes a config file populated with defaults.
func Init(w io.Writer, opts InitOptions) error {
	configPath, err := initConfigPath(opts)
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if !isInteractive() {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}
		overwrite, err := confirmOverwrite(configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check write permissions for "+filepath.Dir(configPath))
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]string{"path": configPath})
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SuccessStyle().Render(ui.SymbolNormal), configPath)
	fmt.Fprintln(w, ui.MutedStyle().Render("Next steps:"))
	fmt.Fprint(w, ui.Bullets([]string{
		"Edit it directly, or run 'hdt config set theme dark'",
		"Run 'hdt' to open the dashboard",
	}))
	return nil
}
