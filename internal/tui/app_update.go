package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calpicker/internal/tui/components"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.picker.SetSize(msg.Width-2*originX, msg.Height-2*originY-2)
		a.helpComp.SetSize(msg.Width-2*originX, msg.Height-2*originY)
		return a, nil

	case errMsg:
		a.err = msg.err
		a.statusMsg = ""
		return a, nil

	case statusMsg:
		a.err = nil
		a.statusMsg = msg.msg
		return a, nil

	case components.HelpClosedMsg:
		a.showHelp = false
		a.picker.Focus()
		return a, nil

	case components.ClockTickMsg:
		return a, a.clock.Update(msg)

	case components.SelectedDateChangedMsg:
		a.err = nil
		a.statusMsg = "Selected " + msg.Date.Format(DateLayout)
		return a, nil

	case components.DateChangedMsg:
		slog.Debug("month changed", "component", "app", "month", msg.Date.Format("2006-01"))
		return a, nil

	case tea.MouseMsg:
		// The help view and the goto prompt own the screen.
		if a.showHelp || a.isGoto {
			return a, nil
		}
	}

	// Mouse events and the picker's own settle messages. A page change
	// requested before an overlay opened still settles under it.
	_, cmd := a.picker.Update(msg)
	return a, cmd
}

// handleKeyMsg routes key presses to the prompt, the help view, the app
// actions and finally the picker.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == a.keymap.Abort.Key {
		a.aborted = true
		return a, tea.Quit
	}

	if a.isGoto {
		return a.handleGotoKey(msg)
	}

	if a.showHelp {
		_, cmd := a.helpComp.Update(msg)
		return a, cmd
	}

	action, ok := a.keymap.HandleKey(msg)
	if !ok {
		_, cmd := a.picker.Update(msg)
		return a, cmd
	}

	switch action {
	case "quit":
		a.clock.Stop()
		return a, tea.Quit
	case "help":
		a.showHelp = true
		a.picker.Blur()
		return a, nil
	case "goto":
		a.isGoto = true
		a.picker.Blur()
		a.gotoInput.SetValue("")
		return a, a.gotoInput.Focus()
	case "today":
		today := a.now.Now()
		a.picker.SetDate(today)
		a.picker.SetSelected(today)
		return a, a.selectionChanged()
	case "copy":
		return a, a.copySelected()
	}
	return a, nil
}

func (a *App) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.closeGoto()
		return a, nil
	case "enter":
		value := a.gotoInput.Value()
		a.closeGoto()

		t, hasDay, err := parseTarget(value, a.picker.SelectedDate().Location())
		if err != nil {
			a.err = err
			a.statusMsg = ""
			return a, nil
		}

		a.picker.SetDate(t)
		if !hasDay {
			a.err = nil
			a.statusMsg = "Showing " + t.Format("January 2006")
			return a, nil
		}
		a.picker.SetSelected(t)
		return a, a.selectionChanged()
	}

	var cmd tea.Cmd
	a.gotoInput, cmd = a.gotoInput.Update(msg)
	return a, cmd
}

func (a *App) closeGoto() {
	a.isGoto = false
	a.gotoInput.Blur()
	a.picker.Focus()
}

// selectionChanged reports a selection made outside the picker the same way
// the picker reports its own.
func (a *App) selectionChanged() tea.Cmd {
	msg := components.SelectedDateChangedMsg{ID: a.picker.ID(), Date: a.picker.SelectedDate()}
	return func() tea.Msg {
		return msg
	}
}

func (a *App) copySelected() tea.Cmd {
	text := a.picker.SelectedDate().Format(DateLayout)
	write := a.copy
	return func() tea.Msg {
		if err := write(text); err != nil {
			slog.Warn("clipboard write failed", "component", "app", "error", err)
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return statusMsg{msg: "Copied " + text}
	}
}
