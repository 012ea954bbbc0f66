package cmd

import "github.com/charmbracelet/lipgloss"

// Centralized styles for consistent UX across views.
var (
	appTitle       = "30-Day Weather Data for Oberursel, Germany"
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Background(lipgloss.Color("57")).Padding(0, 1)
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	sourceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("247"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236"))
	contentStyle   = lipgloss.NewStyle().Padding(1, 2)
	dividerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Padding(0, 1)

	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Align(lipgloss.Center)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tempCardColor  = lipgloss.Color("203")
	humCardColor   = lipgloss.Color("75")
	vpdCardColor   = lipgloss.Color("42")
	parCardColor   = lipgloss.Color("214")

	infoBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).Padding(0, 1)
	infoTitleStyle = lipgloss.NewStyle().Bold(true)
	infoTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

func tabs(current string, width int) string {
	names := []string{"data", "parameters"}
	var rendered []string
	for _, n := range names {
		if n == current {
			rendered = append(rendered, activeTabStyle.Render(n))
		} else {
			rendered = append(rendered, tabStyle.Render(n))
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if width > 0 {
		// Ensure line doesn't overflow; truncate softly.
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// card renders one summary statistic.
func card(value, label string, color lipgloss.TerminalColor) string {
	v := lipgloss.NewStyle().Bold(true).Foreground(color).Render(value)
	return cardStyle.BorderForeground(color).Render(v + "\n" + cardLabelStyle.Render(label))
}
