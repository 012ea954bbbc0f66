package weather

import "fmt"

// VPDBand is one row of the VPD interpretation table. Min is inclusive, Max
// exclusive; the last band has no upper bound.
type VPDBand struct {
	Min         float64
	Max         float64
	Label       string
	Description string
}

// Unbounded reports whether the band is open-ended above.
func (b VPDBand) Unbounded() bool { return b.Max <= b.Min }

// Range renders the band bounds in kPa, e.g. "0.8-1.2 kPa" or ">2.0 kPa".
func (b VPDBand) Range() string {
	if b.Unbounded() {
		return fmt.Sprintf(">%.1f kPa", b.Min)
	}
	return fmt.Sprintf("%.1f-%.1f kPa", b.Min, b.Max)
}

var vpdBands = []VPDBand{
	{Min: 0.0, Max: 0.4, Label: "very humid", Description: "Very humid, minimal plant stress"},
	{Min: 0.4, Max: 0.8, Label: "moderate", Description: "Moderate conditions"},
	{Min: 0.8, Max: 1.2, Label: "optimal", Description: "Optimal for most crops"},
	{Min: 1.2, Max: 2.0, Label: "higher stress", Description: "Higher stress conditions"},
	{Min: 2.0, Label: "high stress", Description: "High stress, drought conditions"},
}

// VPDBands returns the interpretation table from most humid to driest.
func VPDBands() []VPDBand {
	out := make([]VPDBand, len(vpdBands))
	copy(out, vpdBands)
	return out
}

// ClassifyVPD returns the band containing vpd. Negative values (supersaturated
// input) fall into the most humid band.
func ClassifyVPD(vpd float64) VPDBand {
	for _, b := range vpdBands {
		if b.Unbounded() || vpd < b.Max {
			return b
		}
	}
	return vpdBands[len(vpdBands)-1]
}
