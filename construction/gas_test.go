package construction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGasTypeFromString(t *testing.T) {
	assert.Equal(t, GasTypeAir, GasTypeFromString("Air"))
	assert.Equal(t, GasTypeArgon, GasTypeFromString("Argon"))
	assert.Equal(t, GasTypeKrypton, GasTypeFromString("Krypton"))
	assert.Equal(t, GasTypeXenon, GasTypeFromString("Xenon"))
	assert.Panics(t, func() { GasTypeFromString("Helium") })
}

func TestGasConductivityAtTemperature(t *testing.T) {
	gap := NewEnergyWindowMaterialGas("air gap", 0.0125, GasTypeAir)
	assert.InDelta(t, 0.002873+0.0000776*273.15, gap.conductivity_at_temperature(273.15), 1e-12)
}

func TestGasDensityAtTemperature(t *testing.T) {
	gap := NewEnergyWindowMaterialGas("air gap", 0.0125, GasTypeAir)
	expected := (101325.0 * 28.97 * 0.001) / (get_r_univ() * 273.15)
	assert.InDelta(t, expected, gap.density_at_temperature(273.15, 101325.0), 1e-9)

	// warmer gas is less dense
	assert.Less(t, gap.density_at_temperature(293.15, 101325.0),
		gap.density_at_temperature(273.15, 101325.0))
}

func TestGasRadiativeConductance(t *testing.T) {
	gap := NewEnergyWindowMaterialGas("air gap", 0.0125, GasTypeAir)
	expected := 4.0 * get_sgm() / (1.0/0.84 + 1.0/0.84 - 1.0) * math.Pow(273.15, 3.0)
	assert.InDelta(t, expected, gap.radiative_conductance(0.84, 0.84, 273.15), 1e-9)

	// a low emissivity coating suppresses the radiative exchange
	assert.Less(t, gap.radiative_conductance(0.05, 0.84, 273.15),
		gap.radiative_conductance(0.84, 0.84, 273.15)/4.0)
}

func TestGasMixtureProperties(t *testing.T) {
	air := NewEnergyWindowMaterialGas("air gap", 0.0125, GasTypeAir)
	argon := NewEnergyWindowMaterialGas("argon gap", 0.0125, GasTypeArgon)
	mix := NewEnergyWindowMaterialGasMixture(
		"half argon gap", 0.0125,
		[]GasType{GasTypeAir, GasTypeArgon}, []float64{0.5, 0.5})

	// the property curves are polynomials, so fraction weighted coefficients
	// evaluate to fraction weighted properties
	expected := (air.conductivity_at_temperature(280.0) + argon.conductivity_at_temperature(280.0)) / 2.0
	assert.InDelta(t, expected, mix.conductivity_at_temperature(280.0), 1e-12)

	expected = (air.specific_heat_at_temperature(280.0) + argon.specific_heat_at_temperature(280.0)) / 2.0
	assert.InDelta(t, expected, mix.specific_heat_at_temperature(280.0), 1e-9)
}

func TestGasMixtureFractionValidation(t *testing.T) {
	assert.Panics(t, func() {
		NewEnergyWindowMaterialGasMixture(
			"bad mix", 0.0125, []GasType{GasTypeAir, GasTypeArgon}, []float64{0.5, 0.4})
	})
	assert.Panics(t, func() {
		NewEnergyWindowMaterialGasMixture(
			"bad mix", 0.0125, []GasType{GasTypeAir, GasTypeArgon}, []float64{1.0})
	})
}

func TestGasCustomMatchesPredefined(t *testing.T) {
	cond, visc, cp, mw := GasTypeAir.get_property_curves()
	custom := NewEnergyWindowMaterialGasCustom("custom air gap", 0.0125, cond, visc, cp, mw)
	air := NewEnergyWindowMaterialGas("air gap", 0.0125, GasTypeAir)
	assert.InDelta(t, air.u_value(15.0, 0.84, 0.84, 273.15),
		custom.u_value(15.0, 0.84, 0.84, 273.15), 1e-12)
}

func TestGasUValueAtAngle(t *testing.T) {
	gap := NewEnergyWindowMaterialGas("air gap", 0.0127, GasTypeAir)

	// a vertical gap at the vertical angle matches the dedicated correlation
	assert.InDelta(t, gap.u_value(15.0, 0.84, 0.84, 273.15),
		gap.u_value_at_angle(15.0, 0.84, 0.84, 1.0, 90.0, 273.15, get_p_atm()), 1e-12)

	// a horizontal gap with downward heat flow through the layer convects
	// more than one with upward heat flow, where only conduction remains
	u_0 := gap.u_value_at_angle(15.0, 0.84, 0.84, 1.0, 0.0, 273.15, get_p_atm())
	u_180 := gap.u_value_at_angle(15.0, 0.84, 0.84, 1.0, 180.0, 273.15, get_p_atm())
	assert.Greater(t, u_0, u_180)
}

func TestGasRValue(t *testing.T) {
	gap := NewEnergyWindowMaterialGas("air gap", 0.0127, GasTypeAir)
	assert.Greater(t, gap.RValue(), 0.1)
	assert.Less(t, gap.RValue(), 0.4)

	// argon insulates better than air
	argon := NewEnergyWindowMaterialGas("argon gap", 0.0127, GasTypeArgon)
	assert.Greater(t, argon.RValue(), gap.RValue())
}

func TestGasThicknessValidation(t *testing.T) {
	assert.Panics(t, func() { NewEnergyWindowMaterialGas("bad gap", 0.0, GasTypeAir) })
}
