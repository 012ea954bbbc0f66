package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVPD(t *testing.T) {
	tests := []struct {
		vpd  float64
		want string
	}{
		{-0.1, "very humid"},
		{0.0, "very humid"},
		{0.399, "very humid"},
		{0.4, "moderate"},
		{0.8, "optimal"},
		{1.0, "optimal"},
		{1.2, "higher stress"},
		{1.999, "higher stress"},
		{2.0, "high stress"},
		{5.3, "high stress"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyVPD(tt.vpd).Label, "vpd %v", tt.vpd)
	}
}

func TestVPDBandRanges(t *testing.T) {
	bands := VPDBands()
	assert.Len(t, bands, 5)
	assert.Equal(t, "0.0-0.4 kPa", bands[0].Range())
	assert.Equal(t, ">2.0 kPa", bands[4].Range())

	bands[0].Label = "changed"
	assert.Equal(t, "very humid", VPDBands()[0].Label)
}
