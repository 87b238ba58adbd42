// Package tui provides the terminal date picker application.
package tui

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Grid navigation, handled by the picker
	Up     Key
	Down   Key
	Left   Key
	Right  Key
	Select Key

	// Paging, handled by the picker
	PrevMonth Key
	NextMonth Key

	// Actions
	Today Key
	Goto  Key
	Copy  Key
	Help  Key
	Back  Key
	Quit  Key
	Abort Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Left:   Key{Key: "h", Help: "left"},
		Right:  Key{Key: "l", Help: "right"},
		Select: Key{Key: "enter", Help: "select"},

		PrevMonth: Key{Key: "[", Help: "previous month"},
		NextMonth: Key{Key: "]", Help: "next month"},

		Today: Key{Key: "t", Help: "today"},
		Goto:  Key{Key: "g", Help: "go to date"},
		Copy:  Key{Key: "y", Help: "copy date"},
		Help:  Key{Key: "?", Help: "help"},
		Back:  Key{Key: "esc", Help: "done"},
		Quit:  Key{Key: "q", Help: "done"},
		Abort: Key{Key: "ctrl+c", Help: "cancel"},
	}
}

// HandleKey maps an application level key press to an action name.
// Keys it does not consume belong to the picker.
func (k Keymap) HandleKey(msg tea.KeyMsg) (string, bool) {
	switch msg.String() {
	case k.Quit.Key, k.Back.Key:
		return "quit", true
	case k.Abort.Key:
		return "abort", true
	case k.Help.Key:
		return "help", true
	case k.Goto.Key:
		return "goto", true
	case k.Today.Key:
		return "today", true
	case k.Copy.Key:
		return "copy", true
	}
	return "", false
}

// HelpItems returns a slice of key-description pairs for the help view.
// Rows with an empty description are section headers.
func (k Keymap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{k.Left.Key + "/" + k.Right.Key, "Previous/next day"},
		{k.Up.Key + "/" + k.Down.Key, "Previous/next week"},
		{k.PrevMonth.Key + "/" + k.NextMonth.Key, "Previous/next month"},
		{"H/L", "Previous/next month"},
		{"wheel", "Page months"},
		{"", ""},
		{"Selection", ""},
		{k.Select.Key + "/space", "Select day under cursor"},
		{"click", "Select day"},
		{k.Today.Key, "Jump to today"},
		{k.Goto.Key, "Go to YYYY-MM or YYYY-MM-DD"},
		{k.Copy.Key, "Copy selected date"},
		{"", ""},
		{"General", ""},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key + "/" + k.Back.Key, "Done"},
		{k.Abort.Key, "Cancel"},
	}
}

// Hints returns the short key list shown under the picker.
func (k Keymap) Hints() [][]string {
	return [][]string{
		{k.PrevMonth.Key + k.NextMonth.Key, "month"},
		{k.Select.Key, k.Select.Help},
		{k.Today.Key, k.Today.Help},
		{k.Goto.Key, "go to"},
		{k.Copy.Key, "copy"},
		{k.Help.Key, k.Help.Help},
		{k.Quit.Key, k.Quit.Help},
	}
}
