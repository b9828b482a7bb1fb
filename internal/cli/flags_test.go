package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/hdt/internal/config"
	"github.com/rileyhilliard/hdt/internal/dashboard"
	"github.com/rileyhilliard/hdt/internal/errors"
	"github.com/rileyhilliard/hdt/internal/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr string
	}{
		{"empty", "", 0, ""},
		{"seconds", "5s", 5 * time.Second, ""},
		{"milliseconds", "500ms", 500 * time.Millisecond, ""},
		{"minimum", "100ms", feed.MinInterval, ""},
		{"too fast", "10ms", 0, "faster than"},
		{"garbage", "soon", 0, "doesn't look like a valid interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDashboard_Defaults(t *testing.T) {
	got, err := resolveDashboard(config.DefaultConfig(), dashboardFlags{})
	require.NoError(t, err)

	assert.Equal(t, dashboardSettings{
		DarkMode: false,
		StartTab: dashboard.TabOverview,
		Mouse:    true,
		Feed:     true,
		Interval: feed.DefaultInterval,
	}, got)
}

func TestResolveDashboard_FlagsOverrideConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = config.ThemeDark
	cfg.StartTab = config.TabPhysical

	got, err := resolveDashboard(cfg, dashboardFlags{
		Theme:    "Light",
		Tab:      "data-driven",
		Interval: "750ms",
		NoMouse:  true,
		NoFeed:   true,
	})
	require.NoError(t, err)

	assert.False(t, got.DarkMode)
	assert.Equal(t, dashboard.TabDataDriven, got.StartTab)
	assert.Equal(t, 750*time.Millisecond, got.Interval)
	assert.False(t, got.Mouse)
	assert.False(t, got.Feed)
}

func TestResolveDashboard_DoesNotMutateConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := resolveDashboard(cfg, dashboardFlags{Theme: "dark", NoFeed: true})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestResolveDashboard_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flags   dashboardFlags
		mutate  func(*config.Config)
		wantErr string
	}{
		{"bad theme flag", dashboardFlags{Theme: "neon"}, nil, "Theme 'neon' isn't valid"},
		{"bad tab flag", dashboardFlags{Tab: "history"}, nil, "Tab 'history' isn't valid"},
		{"bad interval flag", dashboardFlags{Interval: "1ms"}, nil, "faster than"},
		{"bad config theme", dashboardFlags{}, func(c *config.Config) { c.Theme = "sepia" }, "Theme 'sepia'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			_, err := resolveDashboard(cfg, tt.flags)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

func TestResolveDashboard_FlagFixesBadConfigTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Theme = "sepia"

	got, err := resolveDashboard(cfg, dashboardFlags{Theme: "dark"})
	require.NoError(t, err)
	assert.True(t, got.DarkMode)
}

func TestDashboardCommand_RequiresTerminal(t *testing.T) {
	withInteractive(t, false)
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	err := dashboardCommand(dashboardFlags{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRender))
}
