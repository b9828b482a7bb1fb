package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/hdt/internal/twin"
)

// Theme is a dashboard color palette.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Surface       lipgloss.Color
	Border        lipgloss.Color
	Text          lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	Accent     lipgloss.Color // focus borders, active tab
	AccentText lipgloss.Color // text on the accent color
	Formula    lipgloss.Color
	BadgeBg    lipgloss.Color
	BadgeText  lipgloss.Color
	BannerBg   lipgloss.Color
	BannerText lipgloss.Color
	HeartIcon  lipgloss.Color
	GeoBullet  lipgloss.Color
	PhysBullet lipgloss.Color
	Healthy    lipgloss.Color
	Warning    lipgloss.Color
	Critical   lipgloss.Color
}

// Light and dark palettes.
var (
	LightTheme = Theme{
		Name:          "light",
		Background:    lipgloss.Color("#F9FAFB"),
		Surface:       lipgloss.Color("#FFFFFF"),
		Border:        lipgloss.Color("#E5E7EB"),
		Text:          lipgloss.Color("#111827"),
		TextSecondary: lipgloss.Color("#4B5563"),
		TextMuted:     lipgloss.Color("#6B7280"),
		Accent:        lipgloss.Color("#3B82F6"),
		AccentText:    lipgloss.Color("#FFFFFF"),
		Formula:       lipgloss.Color("#2563EB"),
		BadgeBg:       lipgloss.Color("#DBEAFE"),
		BadgeText:     lipgloss.Color("#1D4ED8"),
		BannerBg:      lipgloss.Color("#2563EB"),
		BannerText:    lipgloss.Color("#FFFFFF"),
		HeartIcon:     lipgloss.Color("#DC2626"),
		GeoBullet:     lipgloss.Color("#F87171"),
		PhysBullet:    lipgloss.Color("#60A5FA"),
		Healthy:       lipgloss.Color("#22C55E"),
		Warning:       lipgloss.Color("#EAB308"),
		Critical:      lipgloss.Color("#EF4444"),
	}

	DarkTheme = Theme{
		Name:          "dark",
		Background:    lipgloss.Color("#111827"),
		Surface:       lipgloss.Color("#1F2937"),
		Border:        lipgloss.Color("#374151"),
		Text:          lipgloss.Color("#FFFFFF"),
		TextSecondary: lipgloss.Color("#9CA3AF"),
		TextMuted:     lipgloss.Color("#6B7280"),
		Accent:        lipgloss.Color("#2563EB"),
		AccentText:    lipgloss.Color("#FFFFFF"),
		Formula:       lipgloss.Color("#93C5FD"),
		BadgeBg:       lipgloss.Color("#1E3A8A"),
		BadgeText:     lipgloss.Color("#93C5FD"),
		BannerBg:      lipgloss.Color("#1E3A8A"),
		BannerText:    lipgloss.Color("#FFFFFF"),
		HeartIcon:     lipgloss.Color("#EF4444"),
		GeoBullet:     lipgloss.Color("#F87171"),
		PhysBullet:    lipgloss.Color("#60A5FA"),
		Healthy:       lipgloss.Color("#22C55E"),
		Warning:       lipgloss.Color("#EAB308"),
		Critical:      lipgloss.Color("#EF4444"),
	}
)

// ThemeFor returns the dark palette when dark is set, otherwise the light one.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme
	}
	return LightTheme
}

// StatusColor maps a metric status to its indicator color. Unset and unknown
// statuses use the healthy color.
func (t Theme) StatusColor(s twin.Status) lipgloss.Color {
	switch s {
	case twin.StatusWarning:
		return t.Warning
	case twin.StatusCritical:
		return t.Critical
	default:
		return t.Healthy
	}
}

func (t Theme) text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text)
}

func (t Theme) secondary() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextSecondary)
}

func (t Theme) muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.TextMuted)
}

func (t Theme) heading() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Bold(true)
}

func (t Theme) card(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.Accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func (t Theme) badge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BadgeText).
		Background(t.BadgeBg).
		Padding(0, 1)
}

func (t Theme) tab(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentText).
			Background(t.Accent).
			Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.TextSecondary)
}

func (t Theme) banner() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.BannerText).
		Background(t.BannerBg).
		Padding(0, 2)
}

func (t Theme) infoBox() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)
}

func (t Theme) modal() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 2)
}
