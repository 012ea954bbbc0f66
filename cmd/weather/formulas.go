package weather

import "math"

const (
	// parRatio is the share of broadband radiation that is photosynthetically active.
	parRatio = 0.45
	// wattsToMicromoles converts broadband PAR in W/m² to µmol/m²/s.
	wattsToMicromoles = 4.57
	// SolarNoon is the hour PARAtNoon evaluates at.
	SolarNoon = 12
)

// SaturationVaporPressure returns es in kPa for tempC using the Magnus-Tetens
// approximation.
func SaturationVaporPressure(tempC float64) float64 {
	return 0.6112 * math.Exp((17.67*tempC)/(tempC+243.5))
}

// VPD returns the vapor pressure deficit in kPa for an air temperature in °C
// and a relative humidity in percent. Inputs are not range-checked.
func VPD(tempC, relHumidity float64) float64 {
	return SaturationVaporPressure(tempC) * (1 - relHumidity/100)
}

// PAR estimates photosynthetically active radiation (µmol/m²/s) from broadband
// solar radiation (W/m²). The diurnal weighting peaks at 1.0 at solar noon.
func PAR(solarRad float64, hour int) float64 {
	timeAdjustment := math.Cos(float64(hour-SolarNoon)*math.Pi/12)*0.3 + 0.7
	return solarRad * parRatio * timeAdjustment * wattsToMicromoles
}

// PARAtNoon is PAR evaluated at solar noon.
func PARAtNoon(solarRad float64) float64 {
	return PAR(solarRad, SolarNoon)
}

// seasonalPhase is sin((dayOfYear-80)·2π/365), shared by the temperature and
// radiation curves.
func seasonalPhase(dayOfYear int) float64 {
	return math.Sin(float64(dayOfYear-80) * 2 * math.Pi / 365)
}

// approxDayOfYear is monthIndex*30 + dayOfMonth with a zero-based month. It is
// deliberately coarse; the seasonal curves are phased against it.
func approxDayOfYear(month, day int) int {
	return (month-1)*30 + day
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
