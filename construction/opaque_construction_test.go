package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func _generic_brick_wall() *OpaqueConstruction {
	return NewOpaqueConstruction("generic brick wall", []OpaqueMaterial{
		NewEnergyMaterial("generic brick", 0.1, 0.9, 1920.0, 790.0, 0.9, 0.65, 0.65),
		NewEnergyMaterialNoMass("generic wall insulation", 2.29, 0.9, 0.7, 0.7),
		NewEnergyMaterial("generic gypsum board", 0.0127, 0.16, 800.0, 1090.0, 0.9, 0.5, 0.5),
	})
}

func TestOpaqueConstructionMetrics(t *testing.T) {
	wall := _generic_brick_wall()

	expected_r := 0.1/0.9 + 2.29 + 0.0127/0.16
	assert.InDelta(t, expected_r, wall.RValue(), 1e-12)
	assert.InDelta(t, 1.0/expected_r, wall.UValue(), 1e-12)

	// the R-factor adds the simple air films
	expected_r_factor := expected_r + 1.0/out_h_simple() + 1.0/in_h_simple(0.9)
	assert.InDelta(t, expected_r_factor, wall.RFactor(), 1e-12)
	assert.InDelta(t, 1.0/expected_r_factor, wall.UFactor(), 1e-12)

	assert.Equal(t, 0.9, wall.InsideEmissivity())
	assert.Equal(t, 0.9, wall.OutsideEmissivity())
	assert.InDelta(t, 1.0-0.5, wall.InsideSolarReflectance(), 1e-12)
	assert.InDelta(t, 1.0-0.65, wall.OutsideSolarReflectance(), 1e-12)
	assert.InDelta(t, 0.1+0.0127, wall.Thickness(), 1e-12)
	assert.InDelta(t, 0.1*1920.0+0.0127*800.0, wall.MassAreaDensity(), 1e-9)
	assert.Equal(t, []string{"generic brick", "generic wall insulation", "generic gypsum board"},
		wall.Layers())
}

func TestOpaqueConstructionValidation(t *testing.T) {
	brick := NewEnergyMaterial("brick", 0.1, 0.9, 1920.0, 790.0, 0.9, 0.65, 0.65)

	assert.Panics(t, func() { NewOpaqueConstruction("", []OpaqueMaterial{brick}) })
	assert.Panics(t, func() { NewOpaqueConstruction("empty wall", nil) })
	assert.Panics(t, func() {
		materials := make([]OpaqueMaterial, 11)
		for i := range materials {
			materials[i] = brick
		}
		NewOpaqueConstruction("too many layers", materials)
	})
}

func TestOpaqueConstructionTemperatureProfile(t *testing.T) {
	wall := _generic_brick_wall()
	bc := NewBoundaryConditions()
	temperatures, r_values := wall.TemperatureProfile(bc)

	// outdoor film + 3 layers + indoor film
	assert.Len(t, r_values, 5)
	assert.Len(t, temperatures, 6)
	assert.Equal(t, bc.OutsideTemperature, temperatures[0])
	assert.InDelta(t, bc.InsideTemperature, temperatures[len(temperatures)-1], 1e-9)
	for i := 1; i < len(temperatures); i++ {
		assert.Greater(t, temperatures[i], temperatures[i-1])
	}

	// layer resistances in the profile are the material resistances
	assert.InDelta(t, 0.1/0.9, r_values[1], 1e-12)
	assert.InDelta(t, 2.29, r_values[2], 1e-12)

	// the condition specific R-factor is the profile resistance sum
	assert.InDelta(t, floats.Sum(r_values), wall.RFactorAt(bc), 1e-12)
	assert.InDelta(t, 1.0/wall.RFactorAt(bc), wall.UFactorAt(bc), 1e-12)
}

func TestOpaqueConstructionSummerProfile(t *testing.T) {
	wall := _generic_brick_wall()
	bc := NewBoundaryConditions()
	bc.OutsideTemperature = 35.0
	bc.InsideTemperature = 24.0
	bc.Angle = 45.0
	temperatures, _ := wall.TemperatureProfile(bc)

	assert.Equal(t, 35.0, temperatures[0])
	assert.InDelta(t, 24.0, temperatures[len(temperatures)-1], 1e-9)
	for i := 1; i < len(temperatures); i++ {
		assert.Less(t, temperatures[i], temperatures[i-1])
	}
}
