package construction

import (
	"fmt"
	"math"
)

// gas fill of a window gap
type GasType string

// gas fills with predefined property curves (ISO 15099 / EnergyPlus)
const (
	GasTypeAir     GasType = "Air"
	GasTypeArgon   GasType = "Argon"
	GasTypeKrypton GasType = "Krypton"
	GasTypeXenon   GasType = "Xenon"
)

func GasTypeFromString(str string) GasType {
	switch str {
	case "Air":
		return GasTypeAir
	case "Argon":
		return GasTypeArgon
	case "Krypton":
		return GasTypeKrypton
	case "Xenon":
		return GasTypeXenon
	default:
		panic(fmt.Sprintf("invalid gas type `%s`", str))
	}
}

/*
Property curve coefficients of the predefined gases.

	Returns:
		(1) conductivity curve coefficients, W/mK per K order 0..2
		(2) viscosity curve coefficients, kg/ms per K order 0..2
		(3) specific heat curve coefficients, J/kgK per K order 0..2
		(4) molecular weight, g/mol

	Notes:
		ISO 15099 coefficients as used by EnergyPlus.
*/
func (g GasType) get_property_curves() ([3]float64, [3]float64, [3]float64, float64) {
	switch g {
	case GasTypeAir:
		return [3]float64{0.002873, 0.0000776, 0.0},
			[3]float64{0.00000372, 0.00000005, 0.0},
			[3]float64{1002.73699951, 0.012324, 0.0},
			28.97
	case GasTypeArgon:
		return [3]float64{0.002285, 0.00005149, 0.0},
			[3]float64{0.00000338, 0.00000006, 0.0},
			[3]float64{521.92852783, 0.0, 0.0},
			39.948
	case GasTypeKrypton:
		return [3]float64{0.0009443, 0.00002826, 0.0},
			[3]float64{0.00000221, 0.00000008, 0.0},
			[3]float64{248.09069824, 0.0, 0.0},
			83.8
	case GasTypeXenon:
		return [3]float64{0.0004538, 0.00001723, 0.0},
			[3]float64{0.00000107, 0.00000007, 0.0},
			[3]float64{158.33970642, 0.0, 0.0},
			131.3
	default:
		panic(fmt.Sprintf("invalid gas type `%s`", string(g)))
	}
}

// evaluate a quadratic property curve at an absolute temperature
func _eval_property_curve(coeff [3]float64, t_kelvin float64) float64 {
	return coeff[0] + coeff[1]*t_kelvin + coeff[2]*t_kelvin*t_kelvin
}

// gas gap layer of a window construction
type EnergyWindowMaterialGas struct {
	_name                string
	_thickness           float64 // m
	_conductivity_coeff  [3]float64
	_viscosity_coeff     [3]float64
	_specific_heat_coeff [3]float64
	_molecular_weight    float64 // g/mol
}

/*
Create a gas gap layer filled with a single predefined gas.

	Args:
		name: material name
		thickness: thickness of the gap, m
		gas_type: one of the predefined gas types (Air, Argon, Krypton, Xenon)
*/
func NewEnergyWindowMaterialGas(name string, thickness float64, gas_type GasType) *EnergyWindowMaterialGas {
	if thickness <= 0.0 {
		panic("gas gap thickness must be greater than 0")
	}
	cond, visc, cp, mw := gas_type.get_property_curves()
	return &EnergyWindowMaterialGas{
		_name:                name,
		_thickness:           thickness,
		_conductivity_coeff:  cond,
		_viscosity_coeff:     visc,
		_specific_heat_coeff: cp,
		_molecular_weight:    mw,
	}
}

/*
Create a gas gap layer filled with a mixture of predefined gases.

	Args:
		name: material name
		thickness: thickness of the gap, m
		gas_types: gas type of each component
		gas_fractions: molar fraction of each component; must sum to 1

	Notes:
		Mixture properties are the fraction-weighted properties of the
		components. The property curves are polynomials in temperature, so
		weighting the coefficients is identical to weighting the evaluated
		properties.
*/
func NewEnergyWindowMaterialGasMixture(
	name string,
	thickness float64,
	gas_types []GasType,
	gas_fractions []float64,
) *EnergyWindowMaterialGas {
	if thickness <= 0.0 {
		panic("gas gap thickness must be greater than 0")
	}
	if len(gas_types) != len(gas_fractions) {
		panic("each gas in the mixture requires a fraction")
	}
	total := 0.0
	for _, f := range gas_fractions {
		total += f
	}
	if math.Abs(total-1.0) > 1e-6 {
		panic("gas mixture fractions must sum to 1")
	}
	var cond, visc, cp [3]float64
	mw := 0.0
	for i, gt := range gas_types {
		c, v, s, m := gt.get_property_curves()
		f := gas_fractions[i]
		for j := 0; j < 3; j++ {
			cond[j] += f * c[j]
			visc[j] += f * v[j]
			cp[j] += f * s[j]
		}
		mw += f * m
	}
	return &EnergyWindowMaterialGas{
		_name:                name,
		_thickness:           thickness,
		_conductivity_coeff:  cond,
		_viscosity_coeff:     visc,
		_specific_heat_coeff: cp,
		_molecular_weight:    mw,
	}
}

/*
Create a gas gap layer with user supplied property curves.

	Args:
		name: material name
		thickness: thickness of the gap, m
		conductivity_coeff: conductivity curve coefficients, W/mK per K order 0..2
		viscosity_coeff: viscosity curve coefficients, kg/ms per K order 0..2
		specific_heat_coeff: specific heat curve coefficients, J/kgK per K order 0..2
		molecular_weight: molecular weight of the gas, g/mol
*/
func NewEnergyWindowMaterialGasCustom(
	name string,
	thickness float64,
	conductivity_coeff [3]float64,
	viscosity_coeff [3]float64,
	specific_heat_coeff [3]float64,
	molecular_weight float64,
) *EnergyWindowMaterialGas {
	if thickness <= 0.0 {
		panic("gas gap thickness must be greater than 0")
	}
	return &EnergyWindowMaterialGas{
		_name:                name,
		_thickness:           thickness,
		_conductivity_coeff:  conductivity_coeff,
		_viscosity_coeff:     viscosity_coeff,
		_specific_heat_coeff: specific_heat_coeff,
		_molecular_weight:    molecular_weight,
	}
}

func (m *EnergyWindowMaterialGas) Name() string {
	return m._name
}

// resistance of the gas gap at standardized winter conditions, m2K/W
func (m *EnergyWindowMaterialGas) RValue() float64 {
	return 1.0 / m.u_value(15.0, 0.84, 0.84, 273.15)
}

func (m *EnergyWindowMaterialGas) kind() MaterialKind {
	return MaterialGas
}

func (m *EnergyWindowMaterialGas) thickness() float64 {
	return m._thickness
}

// conductivity of the gas, W/mK
func (m *EnergyWindowMaterialGas) conductivity_at_temperature(t_kelvin float64) float64 {
	return _eval_property_curve(m._conductivity_coeff, t_kelvin)
}

// dynamic viscosity of the gas, kg/ms
func (m *EnergyWindowMaterialGas) viscosity_at_temperature(t_kelvin float64) float64 {
	return _eval_property_curve(m._viscosity_coeff, t_kelvin)
}

// specific heat of the gas, J/kgK
func (m *EnergyWindowMaterialGas) specific_heat_at_temperature(t_kelvin float64) float64 {
	return _eval_property_curve(m._specific_heat_coeff, t_kelvin)
}

// density of the gas from the ideal gas law, kg/m3
func (m *EnergyWindowMaterialGas) density_at_temperature(t_kelvin float64, pressure float64) float64 {
	return (pressure * m._molecular_weight * 0.001) / (get_r_univ() * t_kelvin)
}

/*
Rayleigh number of the gas gap.

	Args:
		delta_t: temperature difference across the gap, C
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa

	Returns:
		Rayleigh number, -
*/
func (m *EnergyWindowMaterialGas) rayleigh(delta_t float64, t_kelvin float64, pressure float64) float64 {
	rho := m.density_at_temperature(t_kelvin, pressure)
	numerator := rho * rho * math.Pow(m._thickness, 3.0) * get_g() *
		m.specific_heat_at_temperature(t_kelvin) * delta_t
	denominator := t_kelvin * m.viscosity_at_temperature(t_kelvin) *
		m.conductivity_at_temperature(t_kelvin)
	return numerator / denominator
}

/*
Nusselt number of a vertical gas gap.

	Args:
		delta_t: temperature difference across the gap, C
		height: height of the gap, m
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa

	Returns:
		Nusselt number, -

	Notes:
		ISO 15099 correlation for vertical cavities.
*/
func (m *EnergyWindowMaterialGas) nusselt(delta_t float64, height float64, t_kelvin float64, pressure float64) float64 {
	rayleigh := m.rayleigh(delta_t, t_kelvin, pressure)
	var n_u1 float64
	if rayleigh > 50000.0 {
		n_u1 = 0.0673838 * math.Cbrt(rayleigh)
	} else if rayleigh > 10000.0 {
		n_u1 = 0.028154 * math.Pow(rayleigh, 0.4134)
	} else {
		n_u1 = 1.0 + 1.7596678e-10*math.Pow(rayleigh, 2.2984755)
	}
	n_u2 := 0.242 * math.Pow(rayleigh*(m._thickness/height), 0.272)
	return math.Max(n_u1, n_u2)
}

/*
Nusselt number of a gas gap at a given tilt angle.

	Args:
		delta_t: temperature difference across the gap, C
		height: height of the gap, m
		angle: tilt angle in degrees between 0 and 180;
			0 = horizontal gap with downward heat flow,
			90 = vertical gap,
			180 = horizontal gap with upward heat flow
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa

	Returns:
		Nusselt number, -

	Notes:
		ISO 15099 correlations for inclined cavities.
*/
func (m *EnergyWindowMaterialGas) nusselt_at_angle(delta_t float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	rayleigh := m.rayleigh(delta_t, t_kelvin, pressure)
	if angle < 60.0 {
		cos_a := math.Cos(angle * math.Pi / 180.0)
		sin_a_18 := math.Sin(1.8 * angle * math.Pi / 180.0)
		term_1 := _dot_x(1.0 - 1708.0/(rayleigh*cos_a))
		term_2 := 1.0 - (1708.0*math.Pow(sin_a_18, 1.6))/(rayleigh*cos_a)
		term_3 := _dot_x(math.Cbrt(rayleigh*cos_a/5830.0) - 1.0)
		return 1.0 + 1.44*term_1*term_2 + term_3
	} else if angle < 90.0 {
		g := 0.5 / math.Pow(1.0+math.Pow(rayleigh/3160.0, 20.6), 0.1)
		n_u1 := math.Pow(1.0+math.Pow(0.0936*math.Pow(rayleigh, 0.314)/(1.0+g), 7.0), 1.0/7.0)
		n_u2 := (0.104 + 0.175/(m._thickness/height)) * math.Pow(rayleigh, 0.283)
		n_u_60 := math.Max(n_u1, n_u2)
		n_u_90 := m.nusselt(delta_t, height, t_kelvin, pressure)
		return (n_u_60 + n_u_90) / 2.0
	} else if angle == 90.0 {
		return m.nusselt(delta_t, height, t_kelvin, pressure)
	}
	n_u_90 := m.nusselt(delta_t, height, t_kelvin, pressure)
	return 1.0 + (n_u_90-1.0)*math.Sin(angle*math.Pi/180.0)
}

// positive part operator of the ISO 15099 inclined cavity correlation
func _dot_x(x float64) float64 {
	return (x + math.Abs(x)) / 2.0
}

// convective conductance of a vertical gas gap, W/m2K
func (m *EnergyWindowMaterialGas) convective_conductance(delta_t float64, height float64, t_kelvin float64, pressure float64) float64 {
	return m.nusselt(delta_t, height, t_kelvin, pressure) *
		(m.conductivity_at_temperature(t_kelvin) / m._thickness)
}

// convective conductance of a gas gap at a given tilt angle, W/m2K
func (m *EnergyWindowMaterialGas) convective_conductance_at_angle(delta_t float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	return m.nusselt_at_angle(delta_t, height, angle, t_kelvin, pressure) *
		(m.conductivity_at_temperature(t_kelvin) / m._thickness)
}

/*
Radiative conductance between the two faces enclosing the gas gap, W/m2K.

	Args:
		emissivity_1: emissivity of the face on one side of the gap, -
		emissivity_2: emissivity of the face on the other side, -
		t_kelvin: mean temperature of the gap, K
*/
func (m *EnergyWindowMaterialGas) radiative_conductance(emissivity_1 float64, emissivity_2 float64, t_kelvin float64) float64 {
	return 4.0 * get_sgm() / (1.0/emissivity_1 + 1.0/emissivity_2 - 1.0) * math.Pow(t_kelvin, 3.0)
}

/*
U-value of the vertical gas gap, W/m2K.

	Args:
		delta_t: temperature difference across the gap, C
		emissivity_back: emissivity of the face on the outdoor side of the gap, -
		emissivity_front: emissivity of the face on the indoor side of the gap, -
		t_kelvin: mean temperature of the gap, K
*/
func (m *EnergyWindowMaterialGas) u_value(delta_t float64, emissivity_back float64, emissivity_front float64, t_kelvin float64) float64 {
	return m.convective_conductance(delta_t, 1.0, t_kelvin, get_p_atm()) +
		m.radiative_conductance(emissivity_back, emissivity_front, t_kelvin)
}

/*
U-value of the gas gap at a given tilt angle, W/m2K.

	Args:
		delta_t: temperature difference across the gap, C
		emissivity_back: emissivity of the face on the outdoor side of the gap, -
		emissivity_front: emissivity of the face on the indoor side of the gap, -
		height: height of the gap, m
		angle: tilt angle in degrees between 0 and 180
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa
*/
func (m *EnergyWindowMaterialGas) u_value_at_angle(delta_t float64, emissivity_back float64, emissivity_front float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	return m.convective_conductance_at_angle(delta_t, height, angle, t_kelvin, pressure) +
		m.radiative_conductance(emissivity_back, emissivity_front, t_kelvin)
}
