// Package config handles loading and saving the picker configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hy4ri/calpicker/internal/calendar"
	"github.com/hy4ri/calpicker/internal/locale"
	"gopkg.in/yaml.v3"
)

// DefaultSettleDelay matches the paging animation length.
const DefaultSettleDelay = 400 * time.Millisecond

// Validation failures.
var (
	ErrInvalidWeekStart   = errors.New("invalid week_start")
	ErrInvalidLabels      = errors.New("invalid day_of_week")
	ErrInvalidLocale      = errors.New("invalid locale")
	ErrInvalidPadding     = errors.New("invalid item_padding")
	ErrInvalidSettleDelay = errors.New("invalid settle_delay_ms")
)

// ValidationError reports a bad config field.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Config represents the application configuration.
type Config struct {
	Calendar CalendarConfig `yaml:"calendar"`
	Style    StyleConfig    `yaml:"style"`
}

// CalendarConfig holds behavior settings.
type CalendarConfig struct {
	WeekStart     string `yaml:"week_start"`  // "sunday", "monday" or "saturday"
	DayOfWeek     string `yaml:"day_of_week"` // "collapsed" or "expanded"
	Locale        string `yaml:"locale,omitempty"`
	SettleDelayMs int    `yaml:"settle_delay_ms"`
}

// StyleConfig holds colors and spacing. Colors are lipgloss color strings;
// empty means the terminal default.
type StyleConfig struct {
	ItemPadding        int    `yaml:"item_padding"`
	SelectedColor      string `yaml:"selected_color,omitempty"`
	SelectedBackground string `yaml:"selected_background,omitempty"`
	CurrentMonthColor  string `yaml:"current_month_color,omitempty"`
	OtherMonthColor    string `yaml:"other_month_color,omitempty"`
	DayOfWeekColor     string `yaml:"day_of_week_color,omitempty"`
	TodayColor         string `yaml:"today_color,omitempty"`

	SelectedFont     FontConfig `yaml:"selected_font,omitempty"`
	CurrentMonthFont FontConfig `yaml:"current_month_font,omitempty"`
	OtherMonthFont   FontConfig `yaml:"other_month_font,omitempty"`
}

// FontConfig toggles text attributes of a cell class. Nil keeps the
// theme default.
type FontConfig struct {
	Bold   *bool `yaml:"bold,omitempty"`
	Italic *bool `yaml:"italic,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			WeekStart:     calendar.Monday.String(),
			DayOfWeek:     calendar.Collapsed.String(),
			Locale:        locale.Default,
			SettleDelayMs: int(DefaultSettleDelay / time.Millisecond),
		},
		Style: StyleConfig{
			ItemPadding:        1,
			SelectedColor:      "#FFFFFF",
			SelectedBackground: "#874BFD",
			OtherMonthColor:    "#999999",
			DayOfWeekColor:     "#999999",
			TodayColor:         "#00AA00",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Uses XDG_CONFIG_HOME or defaults to ~/.config/calpicker/.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(configHome, "calpicker")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the configuration at path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(path, cfg)
}

// SaveTo writes the configuration to path.
func SaveTo(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every enumerated or ranged field.
func (c *Config) Validate() error {
	if _, err := calendar.ParseWeekStart(c.Calendar.WeekStart); err != nil {
		return &ValidationError{Field: "calendar.week_start", Value: c.Calendar.WeekStart, Err: ErrInvalidWeekStart}
	}
	if _, err := calendar.ParseLabelSet(c.Calendar.DayOfWeek); err != nil {
		return &ValidationError{Field: "calendar.day_of_week", Value: c.Calendar.DayOfWeek, Err: ErrInvalidLabels}
	}
	if _, err := locale.ParseTag(c.Calendar.Locale); err != nil {
		return &ValidationError{Field: "calendar.locale", Value: c.Calendar.Locale, Err: ErrInvalidLocale}
	}
	if c.Style.ItemPadding < 0 || c.Style.ItemPadding > 4 {
		return &ValidationError{Field: "style.item_padding", Value: fmt.Sprint(c.Style.ItemPadding), Err: ErrInvalidPadding}
	}
	if c.Calendar.SettleDelayMs < 0 || c.Calendar.SettleDelayMs > 5000 {
		return &ValidationError{Field: "calendar.settle_delay_ms", Value: fmt.Sprint(c.Calendar.SettleDelayMs), Err: ErrInvalidSettleDelay}
	}
	return nil
}

// WeekStart returns the parsed week start, Monday when invalid.
func (c *Config) WeekStart() calendar.WeekStart {
	ws, _ := calendar.ParseWeekStart(c.Calendar.WeekStart)
	return ws
}

// LabelSet returns the parsed day-of-week label set, Collapsed when invalid.
func (c *Config) LabelSet() calendar.LabelSet {
	ls, _ := calendar.ParseLabelSet(c.Calendar.DayOfWeek)
	return ls
}

// SettleDelay returns the deferred page reset delay.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Calendar.SettleDelayMs) * time.Millisecond
}
