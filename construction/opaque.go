package construction

// opaque material layer with mass
type EnergyMaterial struct {
	_name                string
	_thickness           float64 // m
	_conductivity        float64 // W/mK
	_density             float64 // kg/m3
	_specific_heat       float64 // J/kgK
	_thermal_absorptance float64 // -
	_solar_absorptance   float64 // -
	_visible_absorptance float64 // -
}

/*
Create an opaque material layer with mass.

	Args:
		name: material name
		thickness: thickness of the material layer, m
		conductivity: thermal conductivity of the material, W/mK
		density: density of the material, kg/m3
		specific_heat: specific heat of the material, J/kgK
		thermal_absorptance: fraction of incident long wavelength radiation
			absorbed by the material (= surface emissivity), -
		solar_absorptance: fraction of incident solar radiation absorbed, -
		visible_absorptance: fraction of incident visible radiation absorbed, -
*/
func NewEnergyMaterial(
	name string,
	thickness float64,
	conductivity float64,
	density float64,
	specific_heat float64,
	thermal_absorptance float64,
	solar_absorptance float64,
	visible_absorptance float64,
) *EnergyMaterial {
	if thickness <= 0.0 {
		panic("material thickness must be greater than 0")
	}
	if conductivity <= 0.0 {
		panic("material conductivity must be greater than 0")
	}
	return &EnergyMaterial{
		_name:                name,
		_thickness:           thickness,
		_conductivity:        conductivity,
		_density:             density,
		_specific_heat:       specific_heat,
		_thermal_absorptance: thermal_absorptance,
		_solar_absorptance:   solar_absorptance,
		_visible_absorptance: visible_absorptance,
	}
}

func (m *EnergyMaterial) Name() string {
	return m._name
}

// thermal resistance of the material layer, m2K/W
func (m *EnergyMaterial) RValue() float64 {
	return m._thickness / m._conductivity
}

func (m *EnergyMaterial) kind() MaterialKind {
	return MaterialOpaque
}

func (m *EnergyMaterial) thickness() float64 {
	return m._thickness
}

func (m *EnergyMaterial) thermal_absorptance() float64 {
	return m._thermal_absorptance
}

func (m *EnergyMaterial) solar_absorptance() float64 {
	return m._solar_absorptance
}

func (m *EnergyMaterial) visible_absorptance() float64 {
	return m._visible_absorptance
}

// area density of the material layer, kg/m2
func (m *EnergyMaterial) mass_area_density() float64 {
	return m._thickness * m._density
}

// heat capacity per unit area of the material layer, J/Km2
func (m *EnergyMaterial) area_heat_capacity() float64 {
	return m.mass_area_density() * m._specific_heat
}

// opaque material layer described by a resistance only
type EnergyMaterialNoMass struct {
	_name                string
	_r_value             float64 // m2K/W
	_thermal_absorptance float64 // -
	_solar_absorptance   float64 // -
	_visible_absorptance float64 // -
}

/*
Create an opaque material layer that has no mass (air gaps, insulation boards
specified by resistance).

	Args:
		name: material name
		r_value: thermal resistance of the material layer, m2K/W
		thermal_absorptance: fraction of incident long wavelength radiation
			absorbed by the material (= surface emissivity), -
		solar_absorptance: fraction of incident solar radiation absorbed, -
		visible_absorptance: fraction of incident visible radiation absorbed, -
*/
func NewEnergyMaterialNoMass(
	name string,
	r_value float64,
	thermal_absorptance float64,
	solar_absorptance float64,
	visible_absorptance float64,
) *EnergyMaterialNoMass {
	if r_value <= 0.0 {
		panic("material r_value must be greater than 0")
	}
	return &EnergyMaterialNoMass{
		_name:                name,
		_r_value:             r_value,
		_thermal_absorptance: thermal_absorptance,
		_solar_absorptance:   solar_absorptance,
		_visible_absorptance: visible_absorptance,
	}
}

func (m *EnergyMaterialNoMass) Name() string {
	return m._name
}

// thermal resistance of the material layer, m2K/W
func (m *EnergyMaterialNoMass) RValue() float64 {
	return m._r_value
}

func (m *EnergyMaterialNoMass) kind() MaterialKind {
	return MaterialOpaqueNoMass
}

func (m *EnergyMaterialNoMass) thickness() float64 {
	return 0.0
}

func (m *EnergyMaterialNoMass) thermal_absorptance() float64 {
	return m._thermal_absorptance
}

func (m *EnergyMaterialNoMass) solar_absorptance() float64 {
	return m._solar_absorptance
}

func (m *EnergyMaterialNoMass) visible_absorptance() float64 {
	return m._visible_absorptance
}

func (m *EnergyMaterialNoMass) mass_area_density() float64 {
	return 0.0
}

func (m *EnergyMaterialNoMass) area_heat_capacity() float64 {
	return 0.0
}
