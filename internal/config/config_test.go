package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hy4ri/calpicker/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, calendar.Monday, cfg.WeekStart())
	assert.Equal(t, calendar.Collapsed, cfg.LabelSet())
	assert.Equal(t, DefaultSettleDelay, cfg.SettleDelay())
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `calendar:
  week_start: sunday
  day_of_week: expanded
  locale: fr
  settle_delay_ms: 250
style:
  item_padding: 2
  other_month_color: "240"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, calendar.Sunday, cfg.WeekStart())
	assert.Equal(t, calendar.Expanded, cfg.LabelSet())
	assert.Equal(t, "fr", cfg.Calendar.Locale)
	assert.Equal(t, 250*time.Millisecond, cfg.SettleDelay())
	assert.Equal(t, 2, cfg.Style.ItemPadding)
	assert.Equal(t, "240", cfg.Style.OtherMonthColor)
	assert.Equal(t, "#874BFD", cfg.Style.SelectedBackground, "unset fields keep their defaults")
}

func TestLoadFromRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"week start", "calendar:\n  week_start: tuesday\n", ErrInvalidWeekStart},
		{"labels", "calendar:\n  day_of_week: tiny\n", ErrInvalidLabels},
		{"locale", "calendar:\n  locale: \"!!\"\n", ErrInvalidLocale},
		{"padding", "style:\n  item_padding: 9\n", ErrInvalidPadding},
		{"settle delay", "calendar:\n  settle_delay_ms: -1\n", ErrInvalidSettleDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			_, err := LoadFrom(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestLoadFromMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calendar: [oops"), 0600))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveAndLoadUseXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Calendar.WeekStart = "saturday"
	require.NoError(t, Save(cfg))

	path, err := ConfigPath()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, calendar.Saturday, loaded.WeekStart())
}

func TestLoadFromFontToggles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `style:
  selected_font:
    bold: false
  current_month_font:
    italic: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Style.SelectedFont.Bold)
	assert.False(t, *cfg.Style.SelectedFont.Bold)
	assert.Nil(t, cfg.Style.SelectedFont.Italic)

	require.NotNil(t, cfg.Style.CurrentMonthFont.Italic)
	assert.True(t, *cfg.Style.CurrentMonthFont.Italic)
	assert.Equal(t, FontConfig{}, cfg.Style.OtherMonthFont)
}
