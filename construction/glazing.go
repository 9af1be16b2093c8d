package construction

// single glass pane of a window construction
type EnergyWindowMaterialGlazing struct {
	_name                  string
	_thickness             float64 // m
	_conductivity          float64 // W/mK
	_solar_transmittance   float64 // -
	_visible_transmittance float64 // -
	_emissivity            float64 // -
	_emissivity_back       float64 // -
}

/*
Create a glass pane layer.

	Args:
		name: material name
		thickness: thickness of the glass pane, m
		conductivity: thermal conductivity of the glass, W/mK
		solar_transmittance: solar transmittance at normal incidence, -
		visible_transmittance: visible transmittance at normal incidence, -
		emissivity: hemispherical emissivity of the outdoor-facing (front)
			face of the glass, -
		emissivity_back: hemispherical emissivity of the indoor-facing (back)
			face of the glass, -
*/
func NewEnergyWindowMaterialGlazing(
	name string,
	thickness float64,
	conductivity float64,
	solar_transmittance float64,
	visible_transmittance float64,
	emissivity float64,
	emissivity_back float64,
) *EnergyWindowMaterialGlazing {
	if thickness <= 0.0 {
		panic("glazing thickness must be greater than 0")
	}
	if conductivity <= 0.0 {
		panic("glazing conductivity must be greater than 0")
	}
	return &EnergyWindowMaterialGlazing{
		_name:                  name,
		_thickness:             thickness,
		_conductivity:          conductivity,
		_solar_transmittance:   solar_transmittance,
		_visible_transmittance: visible_transmittance,
		_emissivity:            emissivity,
		_emissivity_back:       emissivity_back,
	}
}

func (m *EnergyWindowMaterialGlazing) Name() string {
	return m._name
}

// thermal resistance of the glass pane, m2K/W
func (m *EnergyWindowMaterialGlazing) RValue() float64 {
	return m._thickness / m._conductivity
}

func (m *EnergyWindowMaterialGlazing) kind() MaterialKind {
	return MaterialGlazing
}

func (m *EnergyWindowMaterialGlazing) thickness() float64 {
	return m._thickness
}

func (m *EnergyWindowMaterialGlazing) solar_transmittance() float64 {
	return m._solar_transmittance
}

func (m *EnergyWindowMaterialGlazing) visible_transmittance() float64 {
	return m._visible_transmittance
}

// whole-glazing-system layer described by performance metrics
type EnergyWindowMaterialSimpleGlazSys struct {
	_name     string
	_u_factor float64 // W/m2K, including standard air film resistances
	_shgc     float64 // -
	_vt       float64 // -
}

/*
Create a simple glazing system layer from whole-system performance metrics
(for example NFRC rated values). A simple glazing system must be the only
layer in its construction.

	Args:
		name: material name
		u_factor: U-factor of the whole glazing system including standard
			interior and exterior air films, W/m2K
		shgc: solar heat gain coefficient of the system, -
		vt: visible transmittance of the system, -
*/
func NewEnergyWindowMaterialSimpleGlazSys(name string, u_factor float64, shgc float64, vt float64) *EnergyWindowMaterialSimpleGlazSys {
	if u_factor <= 0.0 {
		panic("simple glazing system u_factor must be greater than 0")
	}
	return &EnergyWindowMaterialSimpleGlazSys{
		_name:     name,
		_u_factor: u_factor,
		_shgc:     shgc,
		_vt:       vt,
	}
}

func (m *EnergyWindowMaterialSimpleGlazSys) Name() string {
	return m._name
}

/*
Thermal resistance of the glazing system with the standard air film
resistances removed, m2K/W.

	Notes:
		The rated U-factor includes the ISO 10292 air films, so the intrinsic
		resistance is 1/U minus the simple exterior and interior film
		resistances at the standard glass emissivity of 0.84.
*/
func (m *EnergyWindowMaterialSimpleGlazSys) RValue() float64 {
	return 1.0/m._u_factor - 1.0/out_h_simple() - 1.0/in_h_simple(0.84)
}

func (m *EnergyWindowMaterialSimpleGlazSys) kind() MaterialKind {
	return MaterialSimpleGlazSys
}

func (m *EnergyWindowMaterialSimpleGlazSys) thickness() float64 {
	return 0.0
}

func (m *EnergyWindowMaterialSimpleGlazSys) shgc() float64 {
	return m._shgc
}

func (m *EnergyWindowMaterialSimpleGlazSys) vt() float64 {
	return m._vt
}
