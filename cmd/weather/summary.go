package weather

import (
	"math"

	"github.com/shopspring/decimal"
)

// Summarize averages TempAvg, Humidity, VPD and PAR over the rounded record
// values. An empty series is a precondition violation and yields ErrEmptySeries.
func Summarize(s Series) (Summary, error) {
	n := len(s.Records)
	if n == 0 {
		return Summary{}, ErrEmptySeries
	}
	var temp, hum, vpd decimal.Decimal
	par := 0
	for _, r := range s.Records {
		temp = temp.Add(r.TempAvg)
		hum = hum.Add(r.Humidity)
		vpd = vpd.Add(r.VPD)
		par += r.PAR
	}
	count := decimal.NewFromInt(int64(n))
	return Summary{
		AvgTemp:     temp.Div(count).Round(1),
		AvgHumidity: hum.Div(count).Round(1),
		AvgVPD:      vpd.Div(count).Round(3),
		AvgPAR:      int(math.Round(float64(par) / float64(n))),
	}, nil
}

// RecomputeVPD returns a copy of s with every VPD re-derived from that record's
// current TempAvg and Humidity. Nothing else changes. Callers must summarize
// the result again.
func RecomputeVPD(s Series) Series {
	out := s
	out.Records = make([]Record, len(s.Records))
	for i, r := range s.Records {
		r.VPD = round(VPD(r.TempAvg.InexactFloat64(), r.Humidity.InexactFloat64()), 3)
		out.Records[i] = r
	}
	return out
}
