package weather

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Generator fabricates records from an injectable entropy source. It is not
// safe for concurrent use because the source is consumed in order.
type Generator struct {
	src   Source
	now   func() time.Time
	newID func() string
}

// NewGenerator returns a generator drawing from src. A nil src uses a
// runtime-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewRandomSource()
	}
	return &Generator{src: src, now: time.Now, newID: uuid.NewString}
}

// Day synthesizes the record for start + dayIndex days. Each call consumes six
// draws, in order: temperature noise, daily range, humidity noise, cloudiness,
// pressure, wind.
func (g *Generator) Day(dayIndex int, start time.Time) Record {
	date := start.AddDate(0, 0, dayIndex)
	phase := seasonalPhase(approxDayOfYear(int(date.Month()), date.Day()))

	i := float64(dayIndex)
	seasonalTemp := 15 + 8*phase
	dailyVariation := math.Sin(i*0.3) * 3
	weeklyVariation := math.Sin(i*0.1) * 2
	randomVariation := (g.src.Float64() - 0.5) * 4

	tempAvg := seasonalTemp + dailyVariation + weeklyVariation + randomVariation
	tempRange := 8 + g.src.Float64()*4
	tempMin := tempAvg - tempRange/2
	tempMax := tempAvg + tempRange/2

	baseHumidity := 75 - (tempAvg-15)*1.5
	humidity := clamp(baseHumidity+(g.src.Float64()-0.5)*20, 40, 95)

	maxSolarRad := 800 + 200*phase
	cloudiness := g.src.Float64() // 0 clear, 1 overcast
	solarRad := maxSolarRad * (0.3 + 0.7*(1-cloudiness))

	pressure := 1013 + (g.src.Float64()-0.5)*30
	wind := 5 + g.src.Float64()*15

	return Record{
		Date:     date,
		TempMin:  round(tempMin, 1),
		TempMax:  round(tempMax, 1),
		TempAvg:  round(tempAvg, 1),
		Humidity: round(humidity, 1),
		VPD:      round(VPD(tempAvg, humidity), 3),
		PAR:      int(math.Round(PARAtNoon(solarRad))),
		SolarRad: int(math.Round(solarRad)),
		Pressure: round(pressure, 1),
		Wind:     round(wind, 1),
	}
}

// Series synthesizes length consecutive days starting at start.
func (g *Generator) Series(start time.Time, length int) (Series, error) {
	if length <= 0 {
		return Series{}, ErrInvalidLength
	}
	start = truncateToDay(start)
	records := make([]Record, 0, length)
	for i := range length {
		records = append(records, g.Day(i, start))
	}
	return Series{
		ID:          g.newID(),
		Start:       start,
		GeneratedAt: g.now().UTC(),
		Records:     records,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}
