package styles

import (
	"testing"

	"github.com/hy4ri/calpicker/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestThemeFromConfigDefaults(t *testing.T) {
	theme := ThemeFromConfig(config.DefaultConfig().Style)

	assert.Equal(t, 1, theme.ItemPadding)
	assert.True(t, theme.Selected.GetBold())
	assert.False(t, theme.Day.GetItalic())
}

func TestThemeFromConfigFonts(t *testing.T) {
	off, on := false, true
	sc := config.DefaultConfig().Style
	sc.SelectedFont = config.FontConfig{Bold: &off, Italic: &on}
	sc.CurrentMonthFont = config.FontConfig{Italic: &on}
	sc.OtherMonthFont = config.FontConfig{Bold: &on}

	theme := ThemeFromConfig(sc)

	assert.False(t, theme.Selected.GetBold())
	assert.True(t, theme.Selected.GetItalic())
	assert.True(t, theme.Day.GetItalic())
	assert.True(t, theme.Today.GetItalic())
	assert.True(t, theme.Today.GetBold(), "unset toggles keep the default")
	assert.True(t, theme.OtherMonth.GetBold())
}
