package styles

import "github.com/charmbracelet/lipgloss"

var (
	// CommandPrompt is the style for the "go to" prompt.
	CommandPrompt = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCC00")).
			Bold(true)

	// CommandInput is the style for the active prompt input text.
	CommandInput = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"})

	// CommandPlaceholder is the style for the prompt placeholder.
	CommandPlaceholder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))

	// CommandLineContainer is the container for the prompt line.
	CommandLineContainer = lipgloss.NewStyle().
				Padding(0, 1)
)
