package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/weathersynth/cmd/chart"
	"github.com/sumwatshade/weathersynth/cmd/export"
	"github.com/sumwatshade/weathersynth/cmd/params"
	"github.com/sumwatshade/weathersynth/cmd/records"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

// model owns the current series and its summary. Both are only ever replaced
// together through setSeries.
type model struct {
	settings Settings
	service  weather.Service
	exporter export.Service
	logger   *slog.Logger

	params  weather.Params
	series  weather.Series
	summary weather.Summary

	records *records.Table
	chart   *chart.Chart
	form    *params.Model // non-nil while the parameters form is open

	status    string
	statusErr bool
	width     int
	height    int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel(settings Settings, svc weather.Service, exp export.Service, logger *slog.Logger) model {
	m := model{
		settings: settings,
		service:  svc,
		exporter: exp,
		logger:   logger,
		records:  records.New(),
		chart:    chart.New(),
		keys:     keys,
		help:     bhelp.New(),
	}
	m.regenerate(settings.Params)
	return m
}

func (m model) Init() tea.Cmd {
	// The series is generated eagerly in initialModel.
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case export.DoneMsg:
		m.exportDone(msg)
		return m, nil
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Regenerate):
			// fresh draws every time; a configured seed only pins the first load
			p := m.params
			p.Seed = 0
			m.regenerate(p)
			return m, nil
		case key.Matches(msg, m.keys.RecalcVPD):
			m.recomputeVPD()
			return m, nil
		case key.Matches(msg, m.keys.Export):
			m.setStatus("Exporting to " + m.settings.ExportFile + "...")
			return m, export.SaveCSVCmd(m.exporter, m.settings.ExportFile, m.series)
		case key.Matches(msg, m.keys.Copy):
			return m, export.CopyTSVCmd(m.exporter, m.series)
		case key.Matches(msg, m.keys.Params):
			m.form = params.NewModel(m.params)
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Chart):
			m.chart.NextMetric()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	default:
		// huh schedules its own messages (focus, next field)
		if m.form != nil {
			return m.updateForm(msg)
		}
	}

	cmd := m.records.Update(msg, m.leftWidth(), m.tableHeight())
	return m, cmd
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Cancel) {
		m.form = nil
		m.setStatus("Parameters unchanged")
		return m, nil
	}
	cmd := m.form.Update(msg)
	switch {
	case m.form.Aborted():
		m.form = nil
		m.setStatus("Parameters unchanged")
		return m, nil
	case m.form.Completed():
		p, err := m.form.Params()
		m.form = nil
		if err != nil {
			m.setError("Invalid parameters: " + err.Error())
			return m, nil
		}
		m.regenerate(p)
		return m, nil
	}
	return m, cmd
}

// regenerate replaces the series with a fresh one for p.
func (m *model) regenerate(p weather.Params) {
	s, err := m.service.Generate(p)
	if err != nil {
		m.logger.Error("generate series failed", "err", err)
		m.setError("Generation failed: " + err.Error())
		return
	}
	if err := m.setSeries(s); err != nil {
		m.logger.Error("summarize series failed", "series_id", s.ID, "err", err)
		m.setError("Summary failed: " + err.Error())
		return
	}
	m.params = p
	m.logger.Info("series generated",
		"series_id", s.ID,
		"start", s.Start.Format(time.DateOnly),
		"days", s.Len(),
		"seeded", p.Seed != 0,
	)
	m.setStatus(fmt.Sprintf("Generated %d days (%s)", s.Len(), s.Period()))
}

// recomputeVPD re-derives VPD for the current records in place of the series.
func (m *model) recomputeVPD() {
	s := weather.RecomputeVPD(m.series)
	if err := m.setSeries(s); err != nil {
		m.logger.Error("summarize series failed", "series_id", s.ID, "err", err)
		m.setError("Summary failed: " + err.Error())
		return
	}
	m.logger.Info("vpd recomputed", "series_id", s.ID, "avg_vpd", m.summary.AvgVPD.StringFixed(3))
	m.setStatus("VPD recalculated from current temperature and humidity")
}

// setSeries swaps in s and its summary together; on error nothing changes.
func (m *model) setSeries(s weather.Series) error {
	sum, err := weather.Summarize(s)
	if err != nil {
		return err
	}
	m.series, m.summary = s, sum
	m.records.SetSeries(s)
	m.chart.SetSeries(s)
	return nil
}

func (m *model) exportDone(msg export.DoneMsg) {
	if msg.Err != nil {
		m.logger.Error("export failed", "kind", msg.Kind.String(), "path", msg.Path, "err", msg.Err)
		switch msg.Kind {
		case export.KindClipboard:
			m.setError("Failed to copy: " + msg.Err.Error())
		default:
			m.setError("Export failed: " + msg.Err.Error())
		}
		return
	}
	m.logger.Info("export written", "kind", msg.Kind.String(), "path", msg.Path, "bytes", msg.Bytes, "series_id", m.series.ID)
	switch msg.Kind {
	case export.KindClipboard:
		m.setStatus(export.CopiedMessage)
	default:
		m.setStatus(fmt.Sprintf("Saved %d days to %s", m.series.Len(), msg.Path))
	}
}

func (m *model) setStatus(s string) {
	m.status, m.statusErr = s, false
}

func (m *model) setError(s string) {
	m.status, m.statusErr = s, true
}

func (m model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(appTitle)+" "+tabs(m.currentTab(), max(0, m.width-len(appTitle)-4)),
		subtitleStyle.Render(fmt.Sprintf("Location: %s | Postal Code: %s | Period: %s", m.settings.LocationName, m.settings.PostalCode, m.series.Period())),
		sourceStyle.Render("Data Sources: "+m.settings.DataSource),
	)

	var body string
	if m.form != nil {
		body = contentStyle.Render(params.View(m.form))
	} else {
		leftW, rightW := m.leftWidth(), m.rightWidth()
		left := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(m.records.View()))
		right := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left, m.chart.View(max(20, rightW-6), 10), "", m.infoBoxes(rightW-6)),
		))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, dividerStyle.Render("│"), right)
	}

	sep := dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = statusErrStyle.Render(m.status)
	}
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, m.summaryCards(), body, sep, status, m.help.View(m.keys))
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

func (m model) currentTab() string {
	if m.form != nil {
		return "parameters"
	}
	return "data"
}

func (m model) summaryCards() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(m.summary.AvgTemp.StringFixed(1), "Avg Temperature (°C)", tempCardColor),
		card(m.summary.AvgHumidity.StringFixed(1)+"%", "Avg Humidity (%)", humCardColor),
		card(m.summary.AvgVPD.StringFixed(3), "Avg VPD (kPa)", vpdCardColor),
		card(fmt.Sprintf("%d", m.summary.AvgPAR), "Avg PAR (µmol/m²/s)", parCardColor),
	)
}

func (m model) infoBoxes(width int) string {
	data := []string{
		"Temperature: daily min, max and average air temperature at 2m height",
		"Humidity: relative humidity percentage",
		"VPD: vapor pressure deficit from the Magnus formula",
		"PAR: estimated from solar radiation (~45% of total)",
	}
	b := &strings.Builder{}
	b.WriteString(infoTitleStyle.Render("Data Information"))
	for _, line := range data {
		b.WriteString("\n" + infoTextStyle.Render(line))
	}
	dataBox := infoBoxStyle.BorderForeground(lipgloss.Color("75")).Width(max(20, width)).Render(b.String())

	b.Reset()
	b.WriteString(infoTitleStyle.Render("VPD Interpretation"))
	for _, band := range weather.VPDBands() {
		b.WriteString("\n" + records.BandStyle(band).Render(band.Range()) + " " + infoTextStyle.Render(band.Description))
	}
	vpdBox := infoBoxStyle.BorderForeground(lipgloss.Color("42")).Width(max(20, width)).Render(b.String())

	return lipgloss.JoinVertical(lipgloss.Left, dataBox, "", vpdBox)
}

// split sizes: table gets 60%, chart and info boxes the rest
func (m model) leftWidth() int {
	return max(40, int(float64(m.width)*0.6))
}

func (m model) rightWidth() int {
	return max(30, m.width-m.leftWidth()-1)
}

// tableHeight leaves room for header, cards, status and help.
func (m model) tableHeight() int {
	return max(5, m.height-16)
}
