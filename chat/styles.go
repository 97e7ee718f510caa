package chat

import "github.com/charmbracelet/lipgloss"

// Prompt markers preserved from the original interface: the user's turn
// opens with >>> and the assistant's reply with <<<.
const (
	inputMarker  = ">>> "
	outputMarker = "<<< "
)

var (
	inputStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	outputStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeStyle = lipgloss.NewStyle().Faint(true)
	menuStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)
