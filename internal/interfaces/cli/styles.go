package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lite-lake/hetznerdns/internal/domain/valueobject"
)

const (
	ColorPrimary   = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorSecondary = "#6B7280"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary)).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	changeCreateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess))

	changeUpdateStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWarning))

	changeDeleteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError))

	changeNoopStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary))
)

func formatChangeType(changeType valueobject.ChangeType) (prefix string, style lipgloss.Style) {
	switch changeType {
	case valueobject.ChangeTypeCreate:
		return "+", changeCreateStyle
	case valueobject.ChangeTypeUpdate:
		return "~", changeUpdateStyle
	case valueobject.ChangeTypeDelete:
		return "-", changeDeleteStyle
	default:
		return " ", changeNoopStyle
	}
}
