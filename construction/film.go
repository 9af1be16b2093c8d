package construction

import (
	"math"
)

// generic air material used to compute indoor film coefficients
var _generic_air = NewEnergyWindowMaterialGas("generic air", 0.0125, GasTypeAir)

/*
Simple outdoor heat transfer coefficient according to ISO 10292, W/m2K.

	Notes:
		Used for all opaque R-factor calculations.
*/
func out_h_simple() float64 {
	return 23.0
}

/*
Simple indoor heat transfer coefficient according to ISO 10292, W/m2K.

	Args:
		inside_emissivity: emissivity of the construction face exposed to the
			indoor air, -

	Notes:
		Used for all opaque R-factor calculations.
*/
func in_h_simple(inside_emissivity float64) float64 {
	return 3.6 + 4.4*inside_emissivity/0.84
}

/*
Detailed outdoor heat transfer coefficient according to ISO 15099, W/m2K.

	Args:
		wind_speed: average outdoor wind speed, m/s
		t_kelvin: average of the outdoor air temperature and the exterior
			surface temperature, K
		outside_emissivity: emissivity of the construction face exposed to
			the outdoor air, -

	Notes:
		Used for window U-factor calculations and all temperature profile
		calculations.
*/
func out_h(wind_speed float64, t_kelvin float64, outside_emissivity float64) float64 {
	conv_h := 4.0 + 4.0*wind_speed
	rad_h := 4.0 * get_sgm() * outside_emissivity * math.Pow(t_kelvin, 3.0)
	return conv_h + rad_h
}

/*
Detailed indoor heat transfer coefficient according to ISO 15099, W/m2K.

	Args:
		t_kelvin: average of the indoor air temperature and the interior
			surface temperature, K
		delta_t: temperature difference between the indoor air and the
			interior surface, C
		height: height of the surface, m (1.0 is consistent with NFRC)
		angle: tilt angle in degrees between 0 and 180;
			0 = horizontal surface with downward heat flow through the layer,
			90 = vertical surface,
			180 = horizontal surface with upward heat flow through the layer
		pressure: air pressure, Pa
		inside_emissivity: emissivity of the construction face exposed to the
			indoor air, -

	Notes:
		Used for window U-factor calculations and all temperature profile
		calculations. Air properties are evaluated on the generic air
		reference material.
*/
func in_h(t_kelvin float64, delta_t float64, height float64, angle float64, pressure float64, inside_emissivity float64) float64 {
	rho := _generic_air.density_at_temperature(t_kelvin, pressure)
	ray_numerator := rho * rho * math.Pow(height, 3.0) * get_g() *
		_generic_air.specific_heat_at_temperature(t_kelvin) * delta_t
	ray_denominator := t_kelvin * _generic_air.viscosity_at_temperature(t_kelvin) *
		_generic_air.conductivity_at_temperature(t_kelvin)
	rayleigh_h := math.Abs(ray_numerator / ray_denominator)
	nusselt := _nusselt_free_convection(rayleigh_h, angle)
	conv_h := nusselt * _generic_air.conductivity_at_temperature(t_kelvin) / height
	rad_h := 4.0 * get_sgm() * inside_emissivity * math.Pow(t_kelvin, 3.0)
	return conv_h + rad_h
}

/*
Nusselt number of free convection at an interior surface, by the ISO 15099
angle dependent correlation.

	Args:
		rayleigh: Rayleigh number at the surface, -
		angle: tilt angle in degrees between 0 and 180

	Returns:
		Nusselt number, -

	Notes:
		At a zero Rayleigh number (no temperature difference) every branch
		yields zero, which is physically valid: no buoyancy driven
		convection. The two correlation branches meeting at 90 degrees agree
		whenever the Rayleigh number is below critical.
*/
func _nusselt_free_convection(rayleigh float64, angle float64) float64 {
	if angle < 15.0 {
		return 0.13 * math.Cbrt(rayleigh)
	} else if angle <= 90.0 {
		sin_a := math.Sin(angle * math.Pi / 180.0)
		rayleigh_c := 2.5e5 * math.Pow(math.Exp(0.72*angle)/sin_a, 0.2)
		if rayleigh < rayleigh_c {
			return 0.56 * math.Pow(rayleigh*sin_a, 0.25)
		}
		return 0.56*math.Pow(rayleigh_c*sin_a, 0.25) +
			0.13*(math.Cbrt(rayleigh)-math.Cbrt(rayleigh_c))
	} else if angle <= 179.0 {
		sin_a := math.Sin(angle * math.Pi / 180.0)
		return 0.56 * math.Pow(rayleigh*sin_a, 0.25)
	}
	return 0.58 * math.Pow(rayleigh, 0.2)
}
