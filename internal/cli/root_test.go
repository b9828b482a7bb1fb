package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	hdterrors "github.com/rileyhilliard/hdt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// withMachineMode sets --json for the duration of a test.
func withMachineMode(t *testing.T, on bool) {
	t.Helper()
	old := machineMode
	machineMode = on
	t.Cleanup(func() { machineMode = old })
}

// withInteractive overrides TTY detection for the duration of a test.
func withInteractive(t *testing.T, on bool) {
	t.Helper()
	old := isInteractive
	isInteractive = func() bool { return on }
	t.Cleanup(func() { isInteractive = old })
}

func TestIsUnknownCommandError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unknown command error",
			err:  errors.New(`unknown command "foo" for "hdt"`),
			want: true,
		},
		{
			name: "unknown flag error",
			err:  errors.New(`unknown flag: --foo`),
			want: true,
		},
		{
			name: "unknown shorthand",
			err:  errors.New(`unknown shorthand flag: 'z' in -z`),
			want: true,
		},
		{
			name: "other error",
			err:  errors.New("config not found"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUnknownCommandError(tt.err))
		})
	}
}

func TestExtractUnknownCommand(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard cobra format",
			err:  errors.New(`unknown command "foo" for "hdt"`),
			want: "foo",
		},
		{
			name: "command with hyphen",
			err:  errors.New(`unknown command "data-driven" for "hdt"`),
			want: "data-driven",
		},
		{
			name: "no quotes returns empty",
			err:  errors.New("unknown command foo"),
			want: "",
		},
		{
			name: "single quote returns empty",
			err:  errors.New(`unknown command "foo`),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractUnknownCommand(tt.err))
		})
	}
}

func TestHandleError_Structured(t *testing.T) {
	withMachineMode(t, false)
	var buf bytes.Buffer

	code := handleError(&buf, hdterrors.New(hdterrors.ErrLookup, "No formula for 'x'", "Known metrics: FFR"))

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "✗ No formula for 'x'")
	assert.Contains(t, buf.String(), "Known metrics: FFR")
}

func TestHandleError_UnknownCommand(t *testing.T) {
	withMachineMode(t, false)
	var buf bytes.Buffer

	code := handleError(&buf, errors.New(`unknown command "dash" for "hdt"`))

	assert.Equal(t, 2, code)
	assert.Contains(t, buf.String(), "'dash' isn't an hdt command")
	assert.Contains(t, buf.String(), "hdt --help")
}

func TestHandleError_MachineMode(t *testing.T) {
	withMachineMode(t, true)
	var buf bytes.Buffer

	code := handleError(&buf, hdterrors.New(hdterrors.ErrLookup, "No formula for 'x'", ""))
	assert.Equal(t, 1, code)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, ErrCodeMetricNotFound, env.Error.Code)
}

func TestRootCommandTree(t *testing.T) {
	for _, name := range []string{"dashboard", "formula", "tables", "init", "config", "version", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, cmd.Name())
		})
	}

	set, _, err := rootCmd.Find([]string{"config", "set"})
	require.NoError(t, err)
	assert.Equal(t, "set", set.Name())
}

func TestDashboardFlagsOnRootAndSubcommand(t *testing.T) {
	for _, flag := range []string{"theme", "tab", "interval", "no-mouse", "no-feed"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(flag), "root --%s", flag)
		assert.NotNil(t, dashboardCmd.Flags().Lookup(flag), "dashboard --%s", flag)
	}
	for _, flag := range []string{"config", "verbose", "no-color", "json"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "--%s", flag)
	}
}
