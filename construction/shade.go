package construction

// behavior shared by shade and blind layers: the solid layer plus the air
// gap(s) it creates against adjacent glazing
type _shade_layer_base struct {
	_emissivity        float64 // -
	_distance_to_glass float64 // m
	_r_intrinsic       float64 // m2K/W
	_gap               *EnergyWindowMaterialGas
}

func _new_shade_layer_base(emissivity float64, distance_to_glass float64, r_intrinsic float64) _shade_layer_base {
	if distance_to_glass <= 0.0 {
		panic("shade distance_to_glass must be greater than 0")
	}
	return _shade_layer_base{
		_emissivity:        emissivity,
		_distance_to_glass: distance_to_glass,
		_r_intrinsic:       r_intrinsic,
		_gap:               NewEnergyWindowMaterialGas("generic shade gap", distance_to_glass, GasTypeAir),
	}
}

/*
Resistance of the shading layer on the exterior of a construction, m2K/W.
Includes the air gap between the shading layer and the adjacent glazing.

	Args:
		delta_t: temperature difference across the shading layer and its gap, C
		emissivity_adjacent: emissivity of the glazing face behind the layer, -
		height: height of the gap, m
		angle: tilt angle in degrees between 0 and 180
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa
*/
func (s *_shade_layer_base) r_value_exterior(delta_t float64, emissivity_adjacent float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	r_gap := 1.0 / s._gap.u_value_at_angle(
		delta_t, s._emissivity, emissivity_adjacent, height, angle, t_kelvin, pressure)
	return s._r_intrinsic + r_gap
}

/*
Resistance of the shading layer on the interior of a construction, m2K/W.
Includes the air gap between the adjacent glazing and the shading layer.

	Args:
		delta_t: temperature difference across the shading layer and its gap, C
		emissivity_adjacent: emissivity of the glazing face in front of the layer, -
		height: height of the gap, m
		angle: tilt angle in degrees between 0 and 180
		t_kelvin: mean temperature of the gap, K
		pressure: air pressure, Pa
*/
func (s *_shade_layer_base) r_value_interior(delta_t float64, emissivity_adjacent float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	r_gap := 1.0 / s._gap.u_value_at_angle(
		delta_t, emissivity_adjacent, s._emissivity, height, angle, t_kelvin, pressure)
	return s._r_intrinsic + r_gap
}

/*
Resistance of the shading layer between two glazing layers, m2K/W.
Includes the two air gaps the layer creates against the glazing on each side.

	Args:
		delta_t: temperature difference across the shading layer and its gaps, C
		emissivity_back: emissivity of the glazing face on the outdoor side, -
		emissivity_front: emissivity of the glazing face on the indoor side, -
		height: height of the gaps, m
		angle: tilt angle in degrees between 0 and 180
		t_kelvin: mean temperature of the gaps, K
		pressure: air pressure, Pa
*/
func (s *_shade_layer_base) r_value_between(delta_t float64, emissivity_back float64, emissivity_front float64, height float64, angle float64, t_kelvin float64, pressure float64) float64 {
	r_gap_out := 1.0 / s._gap.u_value_at_angle(
		delta_t, emissivity_back, s._emissivity, height, angle, t_kelvin, pressure)
	r_gap_in := 1.0 / s._gap.u_value_at_angle(
		delta_t, s._emissivity, emissivity_front, height, angle, t_kelvin, pressure)
	return s._r_intrinsic + r_gap_out + r_gap_in
}

// fabric shade or screen layer of a window construction
type EnergyWindowMaterialShade struct {
	_shade_layer_base
	_name                  string
	_thickness             float64 // m
	_conductivity          float64 // W/mK
	_solar_transmittance   float64 // -
	_visible_transmittance float64 // -
}

/*
Create a fabric shade or screen layer.

	Args:
		name: material name
		thickness: thickness of the shade fabric, m
		conductivity: thermal conductivity of the fabric, W/mK
		solar_transmittance: solar transmittance of the fabric, -
		visible_transmittance: visible transmittance of the fabric, -
		emissivity: hemispherical emissivity of the fabric, -
		distance_to_glass: distance between the shade and the adjacent
			glazing, m
*/
func NewEnergyWindowMaterialShade(
	name string,
	thickness float64,
	conductivity float64,
	solar_transmittance float64,
	visible_transmittance float64,
	emissivity float64,
	distance_to_glass float64,
) *EnergyWindowMaterialShade {
	if thickness <= 0.0 {
		panic("shade thickness must be greater than 0")
	}
	if conductivity <= 0.0 {
		panic("shade conductivity must be greater than 0")
	}
	return &EnergyWindowMaterialShade{
		_shade_layer_base:      _new_shade_layer_base(emissivity, distance_to_glass, thickness/conductivity),
		_name:                  name,
		_thickness:             thickness,
		_conductivity:          conductivity,
		_solar_transmittance:   solar_transmittance,
		_visible_transmittance: visible_transmittance,
	}
}

func (m *EnergyWindowMaterialShade) Name() string {
	return m._name
}

// thermal resistance of the shade fabric alone, m2K/W
func (m *EnergyWindowMaterialShade) RValue() float64 {
	return m._r_intrinsic
}

func (m *EnergyWindowMaterialShade) kind() MaterialKind {
	return MaterialShade
}

func (m *EnergyWindowMaterialShade) thickness() float64 {
	return m._thickness
}

// slat blind layer of a window construction
type EnergyWindowMaterialBlind struct {
	_shade_layer_base
	_name              string
	_slat_width        float64 // m
	_slat_separation   float64 // m
	_slat_thickness    float64 // m
	_slat_angle        float64 // degree
	_slat_conductivity float64 // W/mK
}

/*
Create a slat blind layer.

	Args:
		name: material name
		slat_width: width of each slat, m
		slat_separation: distance between adjacent slats, m
		slat_thickness: thickness of each slat, m
		slat_angle: angle of the slats from horizontal, degree
		slat_conductivity: thermal conductivity of the slat material, W/mK
		emissivity: hemispherical emissivity of the slat surfaces, -
		distance_to_glass: distance between the blind and the adjacent
			glazing, m
*/
func NewEnergyWindowMaterialBlind(
	name string,
	slat_width float64,
	slat_separation float64,
	slat_thickness float64,
	slat_angle float64,
	slat_conductivity float64,
	emissivity float64,
	distance_to_glass float64,
) *EnergyWindowMaterialBlind {
	if slat_thickness <= 0.0 {
		panic("blind slat_thickness must be greater than 0")
	}
	if slat_conductivity <= 0.0 {
		panic("blind slat_conductivity must be greater than 0")
	}
	return &EnergyWindowMaterialBlind{
		_shade_layer_base:  _new_shade_layer_base(emissivity, distance_to_glass, slat_thickness/slat_conductivity),
		_name:              name,
		_slat_width:        slat_width,
		_slat_separation:   slat_separation,
		_slat_thickness:    slat_thickness,
		_slat_angle:        slat_angle,
		_slat_conductivity: slat_conductivity,
	}
}

func (m *EnergyWindowMaterialBlind) Name() string {
	return m._name
}

// thermal resistance of the slats alone, m2K/W
func (m *EnergyWindowMaterialBlind) RValue() float64 {
	return m._r_intrinsic
}

func (m *EnergyWindowMaterialBlind) kind() MaterialKind {
	return MaterialBlind
}

// a blind occupies the depth its slats sweep
func (m *EnergyWindowMaterialBlind) thickness() float64 {
	return m._slat_width
}
