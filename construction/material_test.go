package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergyMaterial(t *testing.T) {
	brick := NewEnergyMaterial("brick", 0.1, 0.9, 1920.0, 790.0, 0.9, 0.65, 0.65)
	assert.Equal(t, "brick", brick.Name())
	assert.InDelta(t, 0.1/0.9, brick.RValue(), 1e-12)
	assert.InDelta(t, 0.1*1920.0, brick.mass_area_density(), 1e-12)
	assert.InDelta(t, 0.1*1920.0*790.0, brick.area_heat_capacity(), 1e-9)
	assert.Equal(t, 0.9, brick.thermal_absorptance())

	assert.Panics(t, func() { NewEnergyMaterial("bad", 0.0, 0.9, 1920.0, 790.0, 0.9, 0.65, 0.65) })
	assert.Panics(t, func() { NewEnergyMaterial("bad", 0.1, 0.0, 1920.0, 790.0, 0.9, 0.65, 0.65) })
}

func TestEnergyMaterialNoMass(t *testing.T) {
	insulation := NewEnergyMaterialNoMass("insulation", 2.29, 0.9, 0.7, 0.7)
	assert.Equal(t, 2.29, insulation.RValue())
	assert.Equal(t, 0.0, insulation.thickness())
	assert.Equal(t, 0.0, insulation.mass_area_density())
	assert.Equal(t, 0.0, insulation.area_heat_capacity())

	assert.Panics(t, func() { NewEnergyMaterialNoMass("bad", -1.0, 0.9, 0.7, 0.7) })
}

func TestEnergyWindowMaterialGlazing(t *testing.T) {
	glass := NewEnergyWindowMaterialGlazing("clear glass", 0.006, 1.0, 0.77, 0.88, 0.84, 0.84)
	assert.InDelta(t, 0.006, glass.RValue(), 1e-12)
	assert.Equal(t, 0.77, glass.solar_transmittance())
	assert.Equal(t, 0.88, glass.visible_transmittance())

	assert.Panics(t, func() { NewEnergyWindowMaterialGlazing("bad", -0.006, 1.0, 0.77, 0.88, 0.84, 0.84) })
}

func TestEnergyWindowMaterialSimpleGlazSys(t *testing.T) {
	sys := NewEnergyWindowMaterialSimpleGlazSys("rated system", 1.98, 0.4, 0.6)

	// the rated U-factor includes the simple air films
	expected := 1.0/1.98 - 1.0/out_h_simple() - 1.0/in_h_simple(0.84)
	assert.InDelta(t, expected, sys.RValue(), 1e-12)

	assert.Panics(t, func() { NewEnergyWindowMaterialSimpleGlazSys("bad", 0.0, 0.4, 0.6) })
}

func TestFaceEmissivities(t *testing.T) {
	lowe := NewEnergyWindowMaterialGlazing("lowe glass", 0.006, 1.0, 0.45, 0.81, 0.047, 0.84)
	assert.Equal(t, 0.047, _emissivity_front(lowe))
	assert.Equal(t, 0.84, _emissivity_back(lowe))

	// shades and blinds have the same emissivity on both faces
	shade := NewEnergyWindowMaterialShade("shade", 0.005, 0.1, 0.3, 0.4, 0.9, 0.05)
	assert.Equal(t, 0.9, _emissivity_front(shade))
	assert.Equal(t, 0.9, _emissivity_back(shade))

	// a gas layer has no faces of its own
	gap := NewEnergyWindowMaterialGas("air gap", 0.0127, GasTypeAir)
	assert.Panics(t, func() { _emissivity_front(gap) })
}

func TestShadeAndBlindMaterials(t *testing.T) {
	shade := NewEnergyWindowMaterialShade("shade", 0.005, 0.1, 0.3, 0.4, 0.9, 0.05)
	assert.InDelta(t, 0.005/0.1, shade.RValue(), 1e-12)
	assert.Equal(t, 0.005, shade.thickness())

	blind := NewEnergyWindowMaterialBlind("blind", 0.025, 0.01875, 0.001, 45.0, 221.0, 0.9, 0.05)
	assert.InDelta(t, 0.001/221.0, blind.RValue(), 1e-12)
	assert.Equal(t, 0.025, blind.thickness())

	// the gap each shading layer creates adds resistance beyond the layer itself
	r := shade.r_value_interior(5.0, 0.84, 1.0, 90.0, 288.15, get_p_atm())
	assert.Greater(t, r, shade.RValue())

	assert.Panics(t, func() { NewEnergyWindowMaterialShade("bad", 0.005, 0.1, 0.3, 0.4, 0.9, 0.0) })
	assert.Panics(t, func() { NewEnergyWindowMaterialBlind("bad", 0.025, 0.01875, 0.0, 45.0, 221.0, 0.9, 0.05) })
}
