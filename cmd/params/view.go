package params

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var paramsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219"))
var faint = lipgloss.NewStyle().Faint(true)

// View renders the form with a short usage hint.
func View(m *Model) string {
	if m == nil {
		return paramsTitleStyle.Render("Generation Parameters") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, paramsTitleStyle.Render("Generation Parameters"))
	if m.form != nil {
		fmt.Fprintln(b, m.form.View())
	}
	fmt.Fprintln(b, faint.Render("enter to confirm each field, esc to cancel"))
	return b.String()
}
