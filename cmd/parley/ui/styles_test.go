package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	assert.False(t, ThemeByName("light").IsDark)
	assert.True(t, ThemeByName("dark").IsDark)
}

func TestDetectThemeColorFgBg(t *testing.T) {
	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
}

func TestNewStylesCarriesTheme(t *testing.T) {
	s := NewStyles(LightTheme())
	assert.False(t, s.Theme.IsDark)
	assert.True(t, s.PaletteTitle.GetBold())
}
