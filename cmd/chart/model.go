package chart

import "github.com/sumwatshade/weathersynth/cmd/weather"

// Metric selects which record field is plotted.
type Metric int

const (
	MetricTempAvg Metric = iota
	MetricHumidity
	MetricVPD
	MetricPAR
	metricCount
)

func (m Metric) String() string {
	switch m {
	case MetricTempAvg:
		return "Avg Temperature"
	case MetricHumidity:
		return "Humidity"
	case MetricVPD:
		return "VPD"
	case MetricPAR:
		return "PAR"
	default:
		return "unknown"
	}
}

// Unit is the display unit of the metric.
func (m Metric) Unit() string {
	switch m {
	case MetricTempAvg:
		return "°C"
	case MetricHumidity:
		return "%"
	case MetricVPD:
		return "kPa"
	case MetricPAR:
		return "µmol/m²/s"
	default:
		return ""
	}
}

// Next cycles to the following metric, wrapping around.
func (m Metric) Next() Metric {
	return (m + 1) % metricCount
}

// Value extracts the metric from a record.
func Value(r weather.Record, m Metric) float64 {
	switch m {
	case MetricHumidity:
		return r.Humidity.InexactFloat64()
	case MetricVPD:
		return r.VPD.InexactFloat64()
	case MetricPAR:
		return float64(r.PAR)
	default:
		return r.TempAvg.InexactFloat64()
	}
}

// Chart plots one metric of the current series over time.
type Chart struct {
	metric Metric
	series weather.Series
}

// New returns a chart showing average temperature.
func New() *Chart {
	return &Chart{metric: MetricTempAvg}
}

// SetSeries replaces the plotted data.
func (c *Chart) SetSeries(s weather.Series) {
	c.series = s
}

// Metric returns the metric currently plotted.
func (c *Chart) Metric() Metric { return c.metric }

// NextMetric switches to the following metric.
func (c *Chart) NextMetric() {
	c.metric = c.metric.Next()
}
