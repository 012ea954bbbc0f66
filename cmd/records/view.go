package records

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// BandStyle colours a VPD band the way the interpretation box does.
func BandStyle(b weather.VPDBand) lipgloss.Style {
	switch b.Label {
	case "very humid":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	case "moderate":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("79"))
	case "optimal":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	case "higher stress":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}
}

// View renders the table and a detail line for the selected day.
func (t *Table) View() string {
	if !t.ready {
		return titleStyle.Render("Daily Data") + "\n" + "Loading..."
	}
	if len(t.series.Records) == 0 {
		return titleStyle.Render("Daily Data") + "\n" + faintStyle.Render("No data yet. Press 'g' to generate.")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, t.table.View())
	if r, ok := t.Selected(); ok {
		band := weather.ClassifyVPD(r.VPD.InexactFloat64())
		fmt.Fprint(b, detailStyle.Render(fmt.Sprintf("%s  %s  VPD %s kPa: ",
			cursorLabel(t.table.Cursor(), len(t.series.Records)), r.DisplayDate(), r.VPD.StringFixed(3))))
		fmt.Fprint(b, BandStyle(band).Render(band.Description))
	}
	return b.String()
}
