package records

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// Table holds the current series plus the interactive table model.
type Table struct {
	series weather.Series
	table  table.Model
	ready  bool
	width  int
	height int
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("57")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("62"))
)

// Columns mirrors the export header with human-readable titles.
func Columns() []table.Column {
	return []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Min °C", Width: 6},
		{Title: "Max °C", Width: 6},
		{Title: "Avg °C", Width: 6},
		{Title: "RH %", Width: 5},
		{Title: "VPD kPa", Width: 7},
		{Title: "PAR", Width: 5},
		{Title: "Solar W/m²", Width: 10},
		{Title: "hPa", Width: 6},
		{Title: "Wind km/h", Width: 9},
	}
}

// Rows converts each record to its formatted fields, in series order.
func Rows(s weather.Series) []table.Row {
	rows := make([]table.Row, 0, len(s.Records))
	for _, r := range s.Records {
		rows = append(rows, table.Row(r.Fields()))
	}
	return rows
}

// New returns an empty table; rows arrive via SetSeries.
func New() *Table {
	return &Table{}
}

// SetSeries replaces the displayed records, keeping the cursor when it is
// still in range.
func (t *Table) SetSeries(s weather.Series) {
	t.series = s
	if !t.ready {
		return
	}
	cursor := t.table.Cursor()
	t.table.SetRows(Rows(s))
	if cursor >= len(s.Records) {
		cursor = max(0, len(s.Records)-1)
	}
	t.table.SetCursor(cursor)
}

// Selected returns the record under the cursor.
func (t *Table) Selected() (weather.Record, bool) {
	if !t.ready || len(t.series.Records) == 0 {
		return weather.Record{}, false
	}
	i := t.table.Cursor()
	if i < 0 || i >= len(t.series.Records) {
		return weather.Record{}, false
	}
	return t.series.Records[i], true
}

// ensureTable creates or resizes the table model based on dimensions.
func (t *Table) ensureTable(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	t.width = width
	t.height = height
	tableHeight := max(5, height)
	if !t.ready {
		tm := table.New(
			table.WithColumns(Columns()),
			table.WithRows(Rows(t.series)),
			table.WithFocused(true),
			table.WithHeight(tableHeight),
		)
		st := table.DefaultStyles()
		st.Header = headerStyle
		st.Cell = cellStyle
		st.Selected = selectedStyle
		tm.SetStyles(st)
		t.table = tm
		t.ready = true
		return
	}
	t.table.SetHeight(tableHeight)
}

// Update forwards navigation keys to the table.
func (t *Table) Update(msg tea.Msg, width, height int) tea.Cmd {
	t.ensureTable(width, height)
	if !t.ready {
		return nil
	}
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

// Len returns the number of rows currently displayed.
func (t *Table) Len() int {
	return len(t.series.Records)
}

func cursorLabel(i, n int) string {
	return strconv.Itoa(i+1) + "/" + strconv.Itoa(n)
}
