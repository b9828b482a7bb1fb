package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/rileyhilliard/hdt/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// maxColumnWidth caps any one column when the terminal width is unknown.
const maxColumnWidth = 40

type tablesOptions struct {
	Format string
	Model  string
}

var tablesOpts tablesOptions

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the reference tables",
	Long: `Print the geometrical, physical, and data-driven tables the dashboard shows.

Values are the simulated reference literals. Physical vitals show their
initial readings.

Examples:
  hdt tables
  hdt tables --model data-driven
  hdt tables --format yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tablesCommand(cmd.OutOrStdout(), tablesOpts)
	},
}

func init() {
	tablesCmd.Flags().StringVar(&tablesOpts.Format, "format", formatText, "output format: text, yaml, or json")
	tablesCmd.Flags().StringVar(&tablesOpts.Model, "model", "", "only this model: geometrical, physical, or data-driven")
	rootCmd.AddCommand(tablesCmd)
}

// modelTables is one model's sections in yaml/json output.
type modelTables struct {
	Model    twin.Model     `yaml:"model" json:"model"`
	Title    string         `yaml:"title" json:"title"`
	Sections []twin.Section `yaml:"sections" json:"sections"`
}

// collectTables gathers the sections for one model, or all models when name is empty.
func collectTables(name string) ([]modelTables, error) {
	models := twin.Models
	if name != "" {
		m, ok := twin.ParseModel(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, errors.New(errors.ErrConfig,
				fmt.Sprintf("Model '%s' isn't valid", name),
				"Pick one of: geometrical, physical, data-driven")
		}
		models = []twin.Model{m}
	}

	vitals := twin.InitialVitals()
	out := make([]modelTables, 0, len(models))
	for _, m := range models {
		out = append(out, modelTables{Model: m, Title: m.Title(), Sections: twin.Sections(m, vitals)})
	}
	return out, nil
}

// tablesCommand prints the reference tables in the requested format.
func tablesCommand(w io.Writer, opts tablesOptions) error {
	tables, err := collectTables(opts.Model)
	if err != nil {
		return err
	}

	format := strings.ToLower(opts.Format)
	if machineMode {
		format = formatJSON
	}

	switch format {
	case formatText, "":
		_, err := io.WriteString(w, renderTables(tables, terminalWidth()))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables); err != nil {
			return errors.WrapWithCode(err, errors.ErrRender, "Failed to encode tables as YAML", "")
		}
		return enc.Close()
	case formatJSON:
		return WriteJSONSuccess(w, tables)
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Format '%s' isn't supported", opts.Format),
			"Use text, yaml, or json.")
	}
}

var tableTitles = []string{"Metric", "Value", "Normal", "Status", "Sources"}

// renderTables renders each section as a bubbles table under its model heading.
func renderTables(tables []modelTables, width int) string {
	colMax := maxColumnWidth
	if width > 0 {
		colMax = width / 3
	}

	var b strings.Builder
	for i, mt := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ui.HeadingStyle().Render(mt.Title) + "\n")

		for _, section := range mt.Sections {
			rows := sectionRows(section)
			b.WriteString("\n" + ui.MutedStyle().Render(section.Title) + "\n")
			b.WriteString(ui.RenderSimpleTable(ui.FitColumns(tableTitles, rows, colMax), rows) + "\n")
		}
	}
	return b.String()
}

func sectionRows(section twin.Section) [][]string {
	rows := make([][]string, len(section.Metrics))
	for i, m := range section.Metrics {
		normal := m.NormalRange
		if normal == "" {
			normal = "-"
		}
		sources := make([]string, len(m.Sources))
		for j, s := range m.Sources {
			sources[j] = string(s)
		}
		rows[i] = []string{
			m.Name,
			strings.TrimSpace(m.FormatValue() + " " + m.Unit),
			normal,
			m.DisplayStatus().String(),
			strings.Join(sources, ", "),
		}
	}
	return rows
}

// terminalWidth returns the stdout width, or 0 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
