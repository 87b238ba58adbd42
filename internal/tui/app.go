package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calpicker/internal/datemath"
	"github.com/hy4ri/calpicker/internal/tui/components"
	"github.com/hy4ri/calpicker/internal/tui/styles"
)

// DateLayout is how selected dates are printed and copied.
const DateLayout = "2006-01-02"

// Screen chrome around the picker: App padding is one row and two columns.
const (
	originX = 2
	originY = 1
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Components
	picker   *components.PickerModel
	helpComp *components.HelpModel
	clock    *components.ClockModel
	keymap   Keymap
	now      datemath.Clock

	// Goto prompt state
	gotoInput textinput.Model
	isGoto    bool

	// UI state
	showHelp  bool
	err       error
	statusMsg string
	width     int
	height    int
	aborted   bool

	// copy writes the selected date to the system clipboard.
	copy func(string) error
}

// NewApp creates a new App showing selected's month.
func NewApp(opts components.Options, selected time.Time) *App {
	if opts.Clock == nil {
		opts.Clock = datemath.SystemClock{}
	}

	gotoInput := textinput.New()
	gotoInput.Prompt = ""
	gotoInput.Placeholder = "YYYY-MM or YYYY-MM-DD"
	gotoInput.CharLimit = len(DateLayout)
	gotoInput.Width = 24
	gotoInput.TextStyle = styles.CommandInput
	gotoInput.PlaceholderStyle = styles.CommandPlaceholder

	app := &App{
		picker:    components.NewPicker(selected, selected, opts),
		helpComp:  components.NewHelp(),
		clock:     components.NewClock(1, time.Minute),
		keymap:    DefaultKeymap(),
		now:       opts.Clock,
		gotoInput: gotoInput,
		copy:      clipboard.WriteAll,
	}

	app.picker.Focus()
	app.picker.SetOrigin(originX, originY)
	app.helpComp.SetKeymap(app.keymap.HelpItems())

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.picker.Init(), a.clock.Start())
}

// Selected returns the selected day.
func (a *App) Selected() time.Time {
	return a.picker.SelectedDate()
}

// Aborted reports whether the user cancelled instead of confirming.
func (a *App) Aborted() bool {
	return a.aborted
}

// Picker exposes the embedded picker.
func (a *App) Picker() *components.PickerModel {
	return a.picker
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

// parseTarget parses a goto prompt entry. Month-only input reports
// hasDay false.
func parseTarget(s string, loc *time.Location) (t time.Time, hasDay bool, err error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true, nil
	}
	if t, err := time.ParseInLocation("2006-01", s, loc); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("invalid date %q: want YYYY-MM or YYYY-MM-DD", s)
}
