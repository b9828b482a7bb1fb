package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesDefaults(t *testing.T) {
	withMachineMode(t, false)
	dir := t.TempDir()
	var buf bytes.Buffer

	require.NoError(t, Init(&buf, InitOptions{Dir: dir}))

	path := filepath.Join(dir, config.ConfigFileName)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Contains(t, buf.String(), "Created "+path)
}

func TestInit_ExistingNonInteractive(t *testing.T) {
	withMachineMode(t, false)
	withInteractive(t, false)
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0644))

	err := Init(&bytes.Buffer{}, InitOptions{Dir: dir})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--force")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme: dark\n", string(data))
}

func TestInit_ForceOverwrites(t *testing.T) {
	withMachineMode(t, false)
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0644))

	require.NoError(t, Init(&bytes.Buffer{}, InitOptions{Dir: dir, Overwrite: true}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeLight, cfg.Theme)
}

func TestInit_ConfirmPrompt(t *testing.T) {
	withMachineMode(t, false)
	withInteractive(t, true)

	old := confirmOverwrite
	t.Cleanup(func() { confirmOverwrite = old })

	tests := []struct {
		name      string
		answer    bool
		wantTheme string
		wantOut   string
	}{
		{"declined", false, config.ThemeDark, "Cancelled."},
		{"accepted", true, config.ThemeLight, "Created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, config.ConfigFileName)
			require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0644))

			var asked string
			confirmOverwrite = func(p string) (bool, error) {
				asked = p
				return tt.answer, nil
			}

			var buf bytes.Buffer
			require.NoError(t, Init(&buf, InitOptions{Dir: dir}))

			assert.Equal(t, path, asked)
			assert.Contains(t, buf.String(), tt.wantOut)

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTheme, cfg.Theme)
		})
	}
}

func TestInit_Global(t *testing.T) {
	withMachineMode(t, false)
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, Init(&bytes.Buffer{}, InitOptions{Global: true}))

	_, err := os.Stat(filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile))
	assert.NoError(t, err)
}
