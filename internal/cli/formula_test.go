package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/twin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaCommand_CardiacOutput(t *testing.T) {
	withMachineMode(t, false)
	var buf bytes.Buffer

	require.NoError(t, formulaCommand(&buf, []string{"Cardiac", "Output"}))

	out := buf.String()
	assert.Contains(t, out, "ƒ Cardiac Output")
	assert.Contains(t, out, "Formula      Heart Rate × Stroke Volume")
	assert.Contains(t, out, "Geometrical Data Sources")
	assert.Contains(t, out, "  • Left Ventricle Volume")
	assert.Contains(t, out, "Physical Data Sources")
	assert.Contains(t, out, "  • Heart Rate")
}

func TestFormulaCommand_CaseInsensitive(t *testing.T) {
	withMachineMode(t, false)
	var buf bytes.Buffer

	require.NoError(t, formulaCommand(&buf, []string{"svr"}))
	assert.Contains(t, buf.String(), "ƒ SVR")
}

func TestFormulaCommand_OmitsEmptySourceLists(t *testing.T) {
	withMachineMode(t, false)
	var buf bytes.Buffer

	require.NoError(t, formulaCommand(&buf, []string{"MAP"}))

	assert.NotContains(t, buf.String(), "Geometrical Data Sources")
	assert.Contains(t, buf.String(), "Physical Data Sources")
}

func TestFormulaCommand_NotFound(t *testing.T) {
	withMachineMode(t, false)

	err := formulaCommand(&bytes.Buffer{}, []string{"Heart", "Rate"})
	require.Error(t, err)

	assert.True(t, errors.IsCode(err, errors.ErrLookup))
	assert.Contains(t, err.Error(), "No formula for 'Heart Rate'")
	assert.Contains(t, err.Error(), "Cardiac Output")
}

func TestFormulaCommand_NoArgNonInteractive(t *testing.T) {
	withMachineMode(t, false)
	withInteractive(t, false)

	err := formulaCommand(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrLookup))
	assert.Contains(t, err.Error(), "No metric given")
}

func TestFormulaCommand_Picker(t *testing.T) {
	withMachineMode(t, false)
	withInteractive(t, true)

	old := pickMetric
	t.Cleanup(func() { pickMetric = old })

	pickMetric = func() (string, error) { return string(twin.FFR), nil }
	var buf bytes.Buffer
	require.NoError(t, formulaCommand(&buf, nil))
	assert.Contains(t, buf.String(), "Distal Pressure / Proximal Pressure")

	pickMetric = func() (string, error) { return "", nil }
	buf.Reset()
	require.NoError(t, formulaCommand(&buf, nil))
	assert.Equal(t, "Cancelled.\n", buf.String())
}

func TestFormulaCommand_JSON(t *testing.T) {
	withMachineMode(t, true)
	var buf bytes.Buffer

	require.NoError(t, formulaCommand(&buf, []string{"Stroke Volume"}))

	var env struct {
		Success bool              `json:"success"`
		Data    twin.FormulaEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, twin.StrokeVolume, env.Data.Metric)
	assert.Equal(t, []string{"Left Ventricle Volume"}, env.Data.Geometrical)
	assert.Empty(t, env.Data.Physical)
}
