package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestColorsExist(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.Color
	}{
		{"ColorSuccess", ColorSuccess},
		{"ColorError", ColorError},
		{"ColorWarning", ColorWarning},
		{"ColorInfo", ColorInfo},
		{"ColorPrimary", ColorPrimary},
		{"ColorSecondary", ColorSecondary},
		{"ColorMuted", ColorMuted},
	}

	seen := make(map[lipgloss.Color]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, string(tt.color), "%s should not be empty", tt.name)
			if other, dup := seen[tt.color]; dup {
				t.Errorf("%s duplicates %s", tt.name, other)
			}
			seen[tt.color] = tt.name
		})
	}
}

func TestSymbolsAreUnique(t *testing.T) {
	symbols := []string{
		SymbolNormal, SymbolFail, SymbolPending, SymbolBranch,
		SymbolBullet, SymbolFormula, SymbolSelected,
	}

	seen := make(map[string]bool)
	for _, s := range symbols {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "symbol %q should be unique", s)
		seen[s] = true
	}
}

func TestDisableColors(t *testing.T) {
	DisableColors()

	assert.Equal(t, "critical", ErrorStyle().Render("critical"))
	assert.Equal(t, "ok", SuccessStyle().Render("ok"))
	assert.Equal(t, "x", WarningStyle().Render("x"))
	assert.Equal(t, "ƒ", InfoStyle().Render("ƒ"))
	assert.Equal(t, "dim", MutedStyle().Render("dim"))
}
