package weather

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout renders record dates the way the en-GB locale does (dd/mm/yyyy).
const DateLayout = "02/01/2006"

// DefaultDays is the length of the window shown on startup.
const DefaultDays = 30

// DefaultStart is the first day of the default window (2025-05-17).
var DefaultStart = time.Date(2025, time.May, 17, 0, 0, 0, 0, time.UTC)

var (
	// ErrEmptySeries is returned when aggregating a series with no records.
	ErrEmptySeries = errors.New("weather: empty series")
	// ErrInvalidLength is returned when asked for a series of fewer than one day.
	ErrInvalidLength = errors.New("weather: series length must be positive")
)

// Record is one synthesized day. Decimal fields are stored already rounded to
// their display precision, so what is shown is exactly what is aggregated and
// exported.
type Record struct {
	Date     time.Time
	TempMin  decimal.Decimal // °C, 1 dp
	TempMax  decimal.Decimal // °C, 1 dp
	TempAvg  decimal.Decimal // °C, 1 dp
	Humidity decimal.Decimal // %, 1 dp, within [40, 95]
	VPD      decimal.Decimal // kPa, 3 dp
	PAR      int             // µmol/m²/s
	SolarRad int             // W/m²
	Pressure decimal.Decimal // hPa, 1 dp
	Wind     decimal.Decimal // km/h, 1 dp
}

// DisplayDate formats the record date as dd/mm/yyyy.
func (r Record) DisplayDate() string { return r.Date.Format(DateLayout) }

// Fields returns the formatted columns in export order.
func (r Record) Fields() []string {
	return []string{
		r.DisplayDate(),
		r.TempMin.StringFixed(1),
		r.TempMax.StringFixed(1),
		r.TempAvg.StringFixed(1),
		r.Humidity.StringFixed(1),
		r.VPD.StringFixed(3),
		strconv.Itoa(r.PAR),
		strconv.Itoa(r.SolarRad),
		r.Pressure.StringFixed(1),
		r.Wind.StringFixed(1),
	}
}

// Series is an ordered run of consecutive days; Records[i] is Start + i days.
type Series struct {
	ID          string
	Start       time.Time
	GeneratedAt time.Time
	Records     []Record
}

// Len returns the number of records.
func (s Series) Len() int { return len(s.Records) }

// End returns the date of the last record, or Start for an empty series.
func (s Series) End() time.Time {
	if len(s.Records) == 0 {
		return s.Start
	}
	return s.Records[len(s.Records)-1].Date
}

// Period renders the covered dates, e.g. "May 17 - June 15, 2025".
func (s Series) Period() string {
	start, end := s.Start, s.End()
	if start.Year() != end.Year() {
		return start.Format("January 2, 2006") + " - " + end.Format("January 2, 2006")
	}
	return start.Format("January 2") + " - " + end.Format("January 2, 2006")
}

// Summary holds the means over a series at the precision of their source fields.
type Summary struct {
	AvgTemp     decimal.Decimal
	AvgHumidity decimal.Decimal
	AvgVPD      decimal.Decimal
	AvgPAR      int
}
