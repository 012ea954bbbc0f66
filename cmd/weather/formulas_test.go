package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVPDSaturatedAirHasNoDeficit(t *testing.T) {
	for _, temp := range []float64{-5, 0, 12.5, 25, 40} {
		assert.InDelta(t, 0.0, VPD(temp, 100), 1e-12, "temp %v", temp)
	}
}

func TestVPDKnownValues(t *testing.T) {
	assert.InDelta(t, 1.5837, VPD(25, 50), 1e-4)
	assert.InDelta(t, 1.1685, VPD(20, 50), 1e-4)
	assert.InDelta(t, 0.9026, VPD(21.6, 65), 1e-4)
}

func TestVPDMonotonicity(t *testing.T) {
	t.Run("decreasing in humidity", func(t *testing.T) {
		for temp := 0.0; temp <= 40; temp += 5 {
			prev := VPD(temp, 0)
			for rh := 5.0; rh <= 100; rh += 5 {
				cur := VPD(temp, rh)
				assert.Less(t, cur, prev, "temp %v rh %v", temp, rh)
				prev = cur
			}
		}
	})
	t.Run("increasing in temperature", func(t *testing.T) {
		for rh := 0.0; rh < 100; rh += 10 {
			prev := VPD(0, rh)
			for temp := 1.0; temp <= 40; temp++ {
				cur := VPD(temp, rh)
				assert.Greater(t, cur, prev, "temp %v rh %v", temp, rh)
				prev = cur
			}
		}
	})
}

func TestPARPeaksAtNoon(t *testing.T) {
	// 1000 * 0.45 * 1.0 * 4.57
	assert.InDelta(t, 2056.5, PAR(1000, 12), 1e-9)
	assert.Equal(t, PAR(1000, 12), PARAtNoon(1000))

	noon := PAR(1000, 12)
	for h := 0; h < 24; h++ {
		if h == 12 {
			continue
		}
		assert.Less(t, PAR(1000, h), noon, "hour %d", h)
	}
	assert.InDelta(t, 822.6, PAR(1000, 0), 1e-9)
	assert.InDelta(t, 1439.55, PAR(1000, 6), 1e-9)
}

func TestApproxDayOfYear(t *testing.T) {
	assert.Equal(t, 137, approxDayOfYear(5, 17))
	assert.Equal(t, 1, approxDayOfYear(1, 1))
	assert.Equal(t, 361, approxDayOfYear(12, 31))
}
