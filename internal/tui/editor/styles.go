package editor

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788"))

	inputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	focusedInputStyle = inputStyle.Copy().
				BorderForeground(lipgloss.Color("#0AF"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC")).
			Background(lipgloss.Color("#334455")).
			Padding(0, 1).
			MarginRight(1)

	activeButtonStyle = buttonStyle.Copy().
				Foreground(lipgloss.Color("#FFF")).
				Background(lipgloss.Color("#0AF")).
				Bold(true)

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#224"))

	linkColor = lipgloss.Color("#8BE9FD")

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#667788")).
			Italic(true)
)
