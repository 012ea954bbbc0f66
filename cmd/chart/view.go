package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sumwatshade/weathersynth/cmd/weather"
)

var chartTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var chartInfoStyle = lipgloss.NewStyle().Faint(true)

// Stats returns min, max and mean of the metric over the series.
func Stats(s weather.Series, m Metric) (lo, hi, mean float64) {
	if len(s.Records) == 0 {
		return 0, 0, 0
	}
	lo, hi = Value(s.Records[0], m), Value(s.Records[0], m)
	sum := 0.0
	for _, r := range s.Records {
		v := Value(r, m)
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(s.Records))
}

// View renders a braille line chart of the selected metric.
func (c *Chart) View(width, height int) string {
	b := &strings.Builder{}
	b.WriteString(chartTitleStyle.Render(fmt.Sprintf("%s (%s)", c.metric, c.metric.Unit())))
	b.WriteString("\n")
	if len(c.series.Records) < 2 {
		b.WriteString(chartInfoStyle.Render("Insufficient data points"))
		return b.String()
	}
	width = max(20, width)
	height = max(6, height)

	minTime := c.series.Records[0].Date
	maxTime := c.series.End()
	minV, maxV, mean := Stats(c.series, c.metric)
	lo, hi := minV, maxV
	if lo == hi { // add small padding
		lo -= 0.1
		hi += 0.1
	}

	lc := timeserieslinechart.New(width, height)
	lc.SetTimeRange(minTime, maxTime)
	lc.SetViewTimeAndYRange(minTime, maxTime, lo, hi)
	// roughly one label per week
	days := max(1, int(maxTime.Sub(minTime).Hours()/24))
	xStep := 1
	if weeks := max(1, days/7); weeks < lc.GraphWidth() {
		xStep = max(1, lc.GraphWidth()/weeks)
	}
	lc.SetXStep(xStep)
	lc.Model.XLabelFormatter = func(i int, v float64) string {
		return time.Unix(int64(v), 0).UTC().Format("02/01")
	}
	for _, r := range c.series.Records {
		lc.Push(timeserieslinechart.TimePoint{Time: r.Date, Value: Value(r, c.metric)})
	}
	lc.DrawBraille()

	b.WriteString(lc.View())
	b.WriteString("\n")
	b.WriteString(chartInfoStyle.Render(fmt.Sprintf("min %.2f / max %.2f / mean %.2f %s | %s - %s",
		minV, maxV, mean, c.metric.Unit(), minTime.Format(weather.DateLayout), maxTime.Format(weather.DateLayout))))
	return b.String()
}
