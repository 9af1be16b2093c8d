package construction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutHSimple(t *testing.T) {
	assert.Equal(t, 23.0, out_h_simple())
}

func TestInHSimple(t *testing.T) {
	// standard glass emissivity yields the canonical 8 W/m2K
	assert.InDelta(t, 8.0, in_h_simple(0.84), 1e-12)
	assert.InDelta(t, 3.6+4.4*0.9/0.84, in_h_simple(0.9), 1e-12)
}

func TestOutH(t *testing.T) {
	expected := 4.0 + 4.0*6.7 + 4.0*get_sgm()*0.84*math.Pow(255.15, 3.0)
	assert.InDelta(t, expected, out_h(6.7, 255.15, 0.84), 1e-9)

	// still wind leaves the radiative and minimum convective parts
	assert.Greater(t, out_h(0.0, 255.15, 0.84), 4.0)
}

func TestInH(t *testing.T) {
	// vertical surface at typical winter interior conditions
	h := in_h(293.15, 5.0, 1.0, 90.0, 101325.0, 0.84)
	assert.Greater(t, h, 0.0)
	assert.Less(t, h, 20.0)

	// larger temperature difference drives more convection
	assert.Greater(t, in_h(293.15, 10.0, 1.0, 90.0, 101325.0, 0.84), h)
}

func TestNusseltFreeConvectionBranches(t *testing.T) {
	// near horizontal with downward heat flow
	assert.InDelta(t, 0.13*math.Cbrt(1.0e6), _nusselt_free_convection(1.0e6, 0.0), 1e-9)

	// tilted past vertical
	sin_a := math.Sin(120.0 * math.Pi / 180.0)
	assert.InDelta(t, 0.56*math.Pow(1.0e6*sin_a, 0.25), _nusselt_free_convection(1.0e6, 120.0), 1e-9)

	// horizontal with upward heat flow
	assert.InDelta(t, 0.58*math.Pow(1.0e6, 0.2), _nusselt_free_convection(1.0e6, 180.0), 1e-9)
}

func TestNusseltFreeConvectionZeroRayleigh(t *testing.T) {
	// no temperature difference means no buoyancy driven convection
	for _, angle := range []float64{0.0, 30.0, 90.0, 120.0, 180.0} {
		assert.Equal(t, 0.0, _nusselt_free_convection(0.0, angle))
	}
}

func TestNusseltFreeConvectionContinuityAtVertical(t *testing.T) {
	// the correlation branches meeting at 90 degrees agree below the
	// critical Rayleigh number
	rayleigh := 1.0e9
	below := _nusselt_free_convection(rayleigh, 90.0)
	above := _nusselt_free_convection(rayleigh, 90.0+1e-9)
	assert.InDelta(t, below, above, 1e-6)
}
