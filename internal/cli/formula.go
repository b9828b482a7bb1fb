package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/rileyhilliard/hdt/internal/ui"
	"github.com/spf13/cobra"
)

var formulaCmd = &cobra.Command{
	Use:   "formula [metric]",
	Short: "Explain how a data-driven metric is derived",
	Long: `Print the formula, calculation method, and input data sources for a
data-driven metric. Matching ignores case.

With no argument in a terminal, pick the metric from a list.

Examples:
  hdt formula "Cardiac Output"
  hdt formula svr
  hdt formula --json FFR`,
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return twin.FormulaNames(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return formulaCommand(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(formulaCmd)
}

// formulaLabelWidth aligns the Formula and Calculation rows.
const formulaLabelWidth = 13

// pickMetric asks the user to choose a data-driven metric. An empty result means cancelled.
var pickMetric = func() (string, error) {
	names := twin.FormulaNames()
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which metric?").
				Options(options...).
				Value(&selected),
		),
	).WithOutput(os.Stderr)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", errors.WrapWithCode(err, errors.ErrExec,
			"Failed to get user input",
			"Pass the metric name as an argument instead.")
	}
	return selected, nil
}

// formulaCommand resolves a metric by name and prints its formula entry.
func formulaCommand(w io.Writer, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))

	if name == "" {
		if machineMode || !isInteractive() {
			return errors.New(errors.ErrLookup,
				"No metric given",
				"Pass a metric name, e.g. hdt formula \"Cardiac Output\". Known metrics: "+
					strings.Join(twin.FormulaNames(), ", "))
		}
		picked, err := pickMetric()
		if err != nil {
			return err
		}
		if picked == "" {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
		name = picked
	}

	entry, ok := twin.FindFormula(name)
	if !ok {
		return errors.New(errors.ErrLookup,
			fmt.Sprintf("No formula for '%s'", name),
			"Known metrics: "+strings.Join(twin.FormulaNames(), ", "))
	}

	if machineMode {
		return WriteJSONSuccess(w, entry)
	}
	_, err := io.WriteString(w, renderFormula(entry))
	return err
}

// renderFormula formats an entry the way the dashboard modal lays it out.
func renderFormula(entry twin.FormulaEntry) string {
	var b strings.Builder

	b.WriteString(ui.HeadingStyle().Render(ui.SymbolFormula+" "+string(entry.Metric)) + "\n\n")
	b.WriteString(ui.KeyValue("Formula", entry.Formula, formulaLabelWidth) + "\n")
	b.WriteString(ui.KeyValue("Calculation", entry.Calculation, formulaLabelWidth) + "\n")

	if len(entry.Geometrical) > 0 {
		b.WriteString("\n" + ui.InfoStyle().Render("Geometrical Data Sources") + "\n")
		b.WriteString(ui.Bullets(entry.Geometrical))
	}
	if len(entry.Physical) > 0 {
		b.WriteString("\n" + ui.SuccessStyle().Render("Physical Data Sources") + "\n")
		b.WriteString(ui.Bullets(entry.Physical))
	}
	return b.String()
}
