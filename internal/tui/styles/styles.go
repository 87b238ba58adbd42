// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calpicker/internal/config"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#874BFD"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	statusBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)
)

// Status bar styles
var (
	// StatusBar is the container for the bottom line
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(statusBackground).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(statusBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(statusBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Calendar styles
// NOTE: Width is NOT set here - cells are padded by the picker from the label widths.
var (
	// CalendarHeader is for the month/year title
	CalendarHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// CalendarArrow is for the previous/next month hints around the title
	CalendarArrow = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarWeekday is for day-of-week headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarDay is for days of the displayed month
	CalendarDay = lipgloss.NewStyle()

	// CalendarDaySelected is for the selected day
	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(lipgloss.Color("#ffffff"))

	// CalendarDayToday is for today's date
	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessColor)

	// CalendarDayOtherMonth is for days from the previous and next month
	CalendarDayOtherMonth = lipgloss.NewStyle().
				Foreground(Subtle)

	// CalendarCursor marks the keyboard cursor
	CalendarCursor = lipgloss.NewStyle().
			Underline(true)

	// CalendarPaging dims the page while a page change waits to settle
	CalendarPaging = lipgloss.NewStyle().
			Faint(true)
)

// Theme groups the styles one picker renders with.
type Theme struct {
	Header      lipgloss.Style
	Arrow       lipgloss.Style
	Weekday     lipgloss.Style
	Day         lipgloss.Style
	Selected    lipgloss.Style
	Today       lipgloss.Style
	OtherMonth  lipgloss.Style
	Cursor      lipgloss.Style
	Paging      lipgloss.Style
	ItemPadding int
}

// DefaultTheme returns the package level calendar styles.
func DefaultTheme() Theme {
	return Theme{
		Header:      CalendarHeader,
		Arrow:       CalendarArrow,
		Weekday:     CalendarWeekday,
		Day:         CalendarDay,
		Selected:    CalendarDaySelected,
		Today:       CalendarDayToday,
		OtherMonth:  CalendarDayOtherMonth,
		Cursor:      CalendarCursor,
		Paging:      CalendarPaging,
		ItemPadding: 1,
	}
}

// ThemeFromConfig overrides the default theme with configured colors.
func ThemeFromConfig(sc config.StyleConfig) Theme {
	t := DefaultTheme()
	t.ItemPadding = sc.ItemPadding

	if sc.SelectedColor != "" {
		t.Selected = t.Selected.Foreground(lipgloss.Color(sc.SelectedColor))
	}
	if sc.SelectedBackground != "" {
		t.Selected = t.Selected.Background(lipgloss.Color(sc.SelectedBackground))
	}
	if sc.CurrentMonthColor != "" {
		t.Day = t.Day.Foreground(lipgloss.Color(sc.CurrentMonthColor))
	}
	if sc.OtherMonthColor != "" {
		t.OtherMonth = t.OtherMonth.Foreground(lipgloss.Color(sc.OtherMonthColor))
	}
	if sc.DayOfWeekColor != "" {
		t.Weekday = t.Weekday.Foreground(lipgloss.Color(sc.DayOfWeekColor))
	}
	if sc.TodayColor != "" {
		t.Today = t.Today.Foreground(lipgloss.Color(sc.TodayColor))
	}

	t.Selected = applyFont(t.Selected, sc.SelectedFont)
	t.Day = applyFont(t.Day, sc.CurrentMonthFont)
	t.Today = applyFont(t.Today, sc.CurrentMonthFont)
	t.OtherMonth = applyFont(t.OtherMonth, sc.OtherMonthFont)
	return t
}

func applyFont(s lipgloss.Style, f config.FontConfig) lipgloss.Style {
	if f.Bold != nil {
		s = s.Bold(*f.Bold)
	}
	if f.Italic != nil {
		s = s.Italic(*f.Italic)
	}
	return s
}
