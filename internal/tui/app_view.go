package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calpicker/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.showHelp {
		return styles.App.Render(a.helpComp.View())
	}

	var bottom string
	if a.isGoto {
		bottom = a.renderCommandLine()
	} else {
		bottom = a.renderStatusBar()
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.picker.View(),
		"",
		bottom,
	))
}

// renderCommandLine renders the goto prompt.
func (a *App) renderCommandLine() string {
	return styles.CommandLineContainer.Render(
		styles.CommandPrompt.Render("Go to: ") + a.gotoInput.View(),
	)
}

// renderStatusBar renders the status message on the left and key hints on the right.
func (a *App) renderStatusBar() string {
	left := ""
	if a.err != nil {
		errStr := strings.ReplaceAll(a.err.Error(), "\n", " ")
		left = styles.StatusBarError.Render("Error: " + errStr)
	} else if a.statusMsg != "" {
		left = styles.StatusBarSuccess.Render(strings.ReplaceAll(a.statusMsg, "\n", " "))
	}

	var hints []string
	for _, h := range a.keymap.Hints() {
		hints = append(hints, styles.HelpKey.Render(h[0])+styles.HelpSeparator.Render(":")+styles.HelpDesc.Render(h[1]))
	}
	right := strings.Join(hints, " ")

	width := a.width - 2*originX
	if width <= 0 {
		return left + "  " + right
	}

	padding := styles.StatusBar.GetHorizontalFrameSize()
	spacing := width - lipgloss.Width(left) - lipgloss.Width(right) - padding
	if spacing < 1 {
		// Not enough room: the status message wins over the hints.
		if left != "" {
			return styles.StatusBar.MaxWidth(width).Render(left)
		}
		return styles.StatusBar.MaxWidth(width).Render(right)
	}

	return styles.StatusBar.Render(left + strings.Repeat(" ", spacing) + right)
}
