package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit the hdt config",
	Long: `Show the effective configuration or change a single setting.

Examples:
  hdt config show
  hdt config set theme dark
  hdt config set feed.interval 5s`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration hdt will use: the config file merged over the
defaults, with HDT_ environment overrides applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCommand(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Set a key in the config file, keeping the rest of the file intact.

Settable keys: ` + strings.Join(config.SettableKeys, ", "),
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.SettableKeys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetCommand(cmd.OutOrStdout(), args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configShowCommand prints the effective config and where it came from.
func configShowCommand(w io.Writer) error {
	cfg, path, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]interface{}{
			"path":   path,
			"config": cfg,
		})
	}

	source := path
	if source == "" {
		source = "defaults (no config file found)"
	}
	fmt.Fprintln(w, ui.KeyValue("Source", source, 8))
	fmt.Fprintln(w)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender, "Failed to encode config", "")
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, err.Error())
	}
	return nil
}

// configSetCommand validates and writes a single key to the config file in use.
func configSetCommand(w io.Writer, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "theme" || key == "start_tab" {
		value = strings.ToLower(value)
	}

	if err := config.ValidateValue(key, value); err != nil {
		return err
	}

	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New(errors.ErrConfig,
			"Config file not found",
			"Run 'hdt init' to create one first.")
	}

	if err := config.SetValue(path, key, value); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Couldn't set %s", key),
			"Settable keys: "+strings.Join(config.SettableKeys, ", "))
	}

	if machineMode {
		return WriteJSONSuccess(w, map[string]string{"path": path, "key": key, "value": value})
	}
	fmt.Fprintf(w, "%s %s = %s in %s\n", ui.SuccessStyle().Render(ui.SymbolNormal), key, value, path)
	return nil
}
