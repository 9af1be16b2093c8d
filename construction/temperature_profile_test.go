package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestTemperatureProfileFromRValues(t *testing.T) {
	r_values := []float64{0.04, 1.0, 2.0, 1.0, 0.12}
	temperatures := temperature_profile_from_r_values(r_values, -18.0, 21.0)

	assert.Len(t, temperatures, len(r_values)+1)
	assert.Equal(t, -18.0, temperatures[0])
	assert.InDelta(t, 21.0, temperatures[len(temperatures)-1], 1e-9)

	// temperatures rise monotonically toward the warm side
	for i := 1; i < len(temperatures); i++ {
		assert.Greater(t, temperatures[i], temperatures[i-1])
	}

	// each step is the resistance fraction of the total drop
	r_factor := floats.Sum(r_values)
	assert.InDelta(t, -18.0+39.0*(0.04/r_factor), temperatures[1], 1e-9)
}

func TestTemperatureProfileReversedHeatFlow(t *testing.T) {
	r_values := []float64{0.04, 1.5, 0.12}
	temperatures := temperature_profile_from_r_values(r_values, 35.0, 24.0)

	assert.Equal(t, 35.0, temperatures[0])
	assert.InDelta(t, 24.0, temperatures[len(temperatures)-1], 1e-9)
	for i := 1; i < len(temperatures); i++ {
		assert.Less(t, temperatures[i], temperatures[i-1])
	}
}
