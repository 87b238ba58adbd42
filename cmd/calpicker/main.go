// Package main is the entry point for the calpicker application.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/calpicker/internal/config"
	"github.com/hy4ri/calpicker/internal/export"
	"github.com/hy4ri/calpicker/internal/locale"
	"github.com/hy4ri/calpicker/internal/tui"
	"github.com/hy4ri/calpicker/internal/tui/components"
)

const version = "0.1.0"

const debugLogFile = "calpicker-debug.log"

const helpText = `calpicker - Terminal month-grid date picker with Vim keybindings

USAGE:
    calpicker [OPTIONS]

OPTIONS:
    -h, --help              Show this help message
    -v, --version           Show version information
    --init                  Create a template config file
    --date YYYY-MM-DD       Initially selected date (default: today)
    --week-start DAY        First grid column: monday, sunday or saturday
    --labels SET            Weekday labels: collapsed or expanded
    --locale TAG            Language for month and weekday names (en, fr, ja)
    --notify                Send a desktop notification with the chosen date
    --ics FILE              Also write the chosen date as an all-day iCalendar event
    --debug                 Write a debug log to ` + debugLogFile + `

CONFIGURATION:
    Config file: ~/.config/calpicker/config.yaml
    Flags override the config file.

KEYBINDINGS:
    h/j/k/l     Move the cursor
    [ / ]       Previous/next month (also H/L, PgUp/PgDn, mouse wheel)
    Enter       Select the day under the cursor
    t           Jump to today
    g           Go to a YYYY-MM or YYYY-MM-DD date
    y           Copy the selected date
    ?           Show help
    q, Esc      Done: print the selected date
    Ctrl+C      Cancel

The selected date is printed to stdout as YYYY-MM-DD.
`

const configTemplate = `# calpicker configuration
# Location: ~/.config/calpicker/config.yaml

calendar:
  # First grid column: monday, sunday or saturday
  week_start: monday
  # Weekday labels: collapsed (Mon) or expanded (Monday)
  day_of_week: collapsed
  # BCP 47 language tag for month and weekday names
  locale: en
  # Delay before a page change settles, in milliseconds (0 pages at once)
  settle_delay_ms: 400

style:
  # Spaces on each side of a day label (0-4)
  item_padding: 1
  selected_color: "#FFFFFF"
  selected_background: "#874BFD"
  # current_month_color: ""
  # other_month_color: "#999999"
  # day_of_week_color: "#999999"
  # today_color: "#66FF66"
  # Text attributes per cell class; omitted keys keep the defaults
  # selected_font:
  #   bold: true
  #   italic: false
  # current_month_font:
  #   italic: false
  # other_month_font:
  #   bold: false
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		notify      bool
		debug       bool
		dateFlag    string
		weekStart   string
		labels      string
		lang        string
		icsPath     string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&notify, "notify", false, "Send a desktop notification with the chosen date")
	flag.BoolVar(&debug, "debug", false, "Write a debug log")
	flag.StringVar(&dateFlag, "date", "", "Initially selected date (YYYY-MM-DD)")
	flag.StringVar(&weekStart, "week-start", "", "First grid column")
	flag.StringVar(&labels, "labels", "", "Weekday label set")
	flag.StringVar(&lang, "locale", "", "Language tag")
	flag.StringVar(&icsPath, "ics", "", "Write the chosen date to an iCalendar file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("calpicker version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	closer, err := setupLogging(debug)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	selected := time.Now()
	if dateFlag != "" {
		selected, err = time.ParseInLocation(tui.DateLayout, dateFlag, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", dateFlag, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file.
	if weekStart != "" {
		cfg.Calendar.WeekStart = weekStart
	}
	if labels != "" {
		cfg.Calendar.DayOfWeek = labels
	}
	if lang != "" {
		cfg.Calendar.Locale = lang
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	return runApp(cfg, selected, runOptions{notify: notify, icsPath: icsPath})
}

// runOptions are the post-selection outputs requested on the command line.
type runOptions struct {
	notify  bool
	icsPath string
}

// setupLogging installs the default slog logger. Without debug logs are
// discarded: the terminal belongs to the UI.
func setupLogging(debug bool) (io.Closer, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})))
		return nil, nil
	}

	f, err := os.OpenFile(debugLogFile, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))
	slog.Debug("debug logging enabled", "component", "main", "version", version)

	return f, nil
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the picker and prints the chosen date.
func runApp(cfg *config.Config, selected time.Time, opts runOptions) error {
	bundle, err := locale.LoadBundle()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	tr := bundle.Translator(cfg.Calendar.Locale)

	app := tui.NewApp(components.OptionsFromConfig(cfg, tr), selected)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if app.Aborted() {
		return nil
	}

	chosen := app.Selected().Format(tui.DateLayout)
	fmt.Println(chosen)

	if opts.icsPath != "" {
		ev := export.Event{Date: app.Selected(), Summary: "calpicker " + chosen}
		if err := export.WriteICSFile(opts.icsPath, ev, time.Now()); err != nil {
			return err
		}
	}

	if opts.notify {
		if err := beeep.Notify("calpicker", "Selected "+chosen, ""); err != nil {
			// Non-fatal: the date is already printed
			slog.Warn("notification failed", "component", "main", "error", err)
		}
	}

	return nil
}
