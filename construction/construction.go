package construction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// boundary conditions of a steady state solve
type BoundaryConditions struct {
	OutsideTemperature float64 // outdoor air temperature, C
	InsideTemperature  float64 // indoor air temperature, C
	WindSpeed          float64 // average outdoor wind speed, m/s
	Height             float64 // height of the surface, m
	Angle              float64 // tilt angle in degrees between 0 and 180
	Pressure           float64 // air pressure, Pa
}

// NFRC 100-2010 winter design conditions for a vertical surface.
func NewBoundaryConditions() BoundaryConditions {
	return BoundaryConditions{
		OutsideTemperature: -18.0,
		InsideTemperature:  21.0,
		WindSpeed:          6.7,
		Height:             1.0,
		Angle:              90.0,
		Pressure:           101325.0,
	}
}

/*
Transform the tilt angle when the heat flow through the construction is
reversed: with a warmer outdoor side the buoyancy driven convection at an
inclined layer behaves as if the layer were tilted the opposite way.
*/
func _heat_flow_angle(angle float64, outside_temperature float64, inside_temperature float64) float64 {
	if angle != 90.0 && outside_temperature > inside_temperature {
		return math.Abs(180.0 - angle)
	}
	return angle
}

// opaque construction: an ordered sequence of opaque material layers from
// outside to inside
type OpaqueConstruction struct {
	_name      string
	_materials []OpaqueMaterial
}

/*
Create an opaque construction.

	Args:
		name: construction name
		materials: material layers of the construction, outside to inside
*/
func NewOpaqueConstruction(name string, materials []OpaqueMaterial) *OpaqueConstruction {
	if name == "" {
		panic("construction name must not be empty")
	}
	if len(materials) == 0 {
		panic("construction must possess at least one material")
	}
	if len(materials) > 10 {
		panic("opaque construction cannot have more than 10 materials")
	}
	mats := make([]OpaqueMaterial, len(materials))
	copy(mats, materials)
	return &OpaqueConstruction{_name: name, _materials: mats}
}

func (c *OpaqueConstruction) Name() string {
	return c._name
}

// material layers of the construction, outside to inside
func (c *OpaqueConstruction) Materials() []OpaqueMaterial {
	mats := make([]OpaqueMaterial, len(c._materials))
	copy(mats, c._materials)
	return mats
}

// material layer names, outside to inside
func (c *OpaqueConstruction) Layers() []string {
	layers := make([]string, len(c._materials))
	for i, mat := range c._materials {
		layers[i] = mat.Name()
	}
	return layers
}

// R-value of the construction excluding air films, m2K/W
func (c *OpaqueConstruction) RValue() float64 {
	r := 0.0
	for _, mat := range c._materials {
		r += mat.RValue()
	}
	return r
}

// U-value of the construction excluding air films, W/m2K
func (c *OpaqueConstruction) UValue() float64 {
	return 1.0 / c.RValue()
}

/*
R-factor of the construction including the standard air film resistances,
m2K/W.

	Notes:
		Film coefficient formulas come from EN 673 / ISO 10292.
*/
func (c *OpaqueConstruction) RFactor() float64 {
	return c.RValue() + 1.0/out_h_simple() + 1.0/in_h_simple(c.InsideEmissivity())
}

// U-factor of the construction including the standard air film resistances, W/m2K
func (c *OpaqueConstruction) UFactor() float64 {
	return 1.0 / c.RFactor()
}

// emissivity of the inside face of the construction, -
func (c *OpaqueConstruction) InsideEmissivity() float64 {
	return c._materials[len(c._materials)-1].thermal_absorptance()
}

// emissivity of the outside face of the construction, -
func (c *OpaqueConstruction) OutsideEmissivity() float64 {
	return c._materials[0].thermal_absorptance()
}

// solar reflectance of the inside face of the construction, -
func (c *OpaqueConstruction) InsideSolarReflectance() float64 {
	return 1.0 - c._materials[len(c._materials)-1].solar_absorptance()
}

// solar reflectance of the outside face of the construction, -
func (c *OpaqueConstruction) OutsideSolarReflectance() float64 {
	return 1.0 - c._materials[0].solar_absorptance()
}

// visible reflectance of the inside face of the construction, -
func (c *OpaqueConstruction) InsideVisibleReflectance() float64 {
	return 1.0 - c._materials[len(c._materials)-1].visible_absorptance()
}

// visible reflectance of the outside face of the construction, -
func (c *OpaqueConstruction) OutsideVisibleReflectance() float64 {
	return 1.0 - c._materials[0].visible_absorptance()
}

// total thickness of the construction, m
func (c *OpaqueConstruction) Thickness() float64 {
	thickness := 0.0
	for _, mat := range c._materials {
		thickness += mat.thickness()
	}
	return thickness
}

// area density of the construction, kg/m2
func (c *OpaqueConstruction) MassAreaDensity() float64 {
	density := 0.0
	for _, mat := range c._materials {
		density += mat.mass_area_density()
	}
	return density
}

// heat capacity per unit area of the construction, J/Km2
func (c *OpaqueConstruction) AreaHeatCapacity() float64 {
	capacity := 0.0
	for _, mat := range c._materials {
		capacity += mat.area_heat_capacity()
	}
	return capacity
}

/*
Temperatures at each material boundary across the construction.

	Args:
		bc: boundary conditions of the solve

	Returns:
		(1) boundary temperatures, C; the first entry is the outdoor air
		temperature, the second the exterior surface temperature, the last
		the indoor air temperature and the second to last the interior
		surface temperature
		(2) resistances of each boundary segment, m2K/W; the first entry is
		the outdoor film and the last the indoor film; the sum is the
		R-factor of the construction under the given conditions

	Notes:
		Opaque layer resistances never depend on temperature, so this is a
		single pass: only the indoor film is refined once from the interior
		temperature drop.
*/
func (c *OpaqueConstruction) TemperatureProfile(bc BoundaryConditions) ([]float64, []float64) {
	angle := _heat_flow_angle(bc.Angle, bc.OutsideTemperature, bc.InsideTemperature)
	in_r_init := 1.0 / in_h_simple(c.InsideEmissivity())
	r_values := make([]float64, 0, len(c._materials)+2)
	r_values = append(r_values, 1.0/out_h(bc.WindSpeed, bc.OutsideTemperature+273.15, c.OutsideEmissivity()))
	for _, mat := range c._materials {
		r_values = append(r_values, mat.RValue())
	}
	r_values = append(r_values, in_r_init)
	in_delta_t := (in_r_init / floats.Sum(r_values)) *
		(bc.OutsideTemperature - bc.InsideTemperature)
	r_values[len(r_values)-1] = 1.0 / in_h(
		bc.InsideTemperature-(in_delta_t/2.0)+273.15, in_delta_t,
		bc.Height, angle, bc.Pressure, c.InsideEmissivity())
	temperatures := temperature_profile_from_r_values(
		r_values, bc.OutsideTemperature, bc.InsideTemperature)
	return temperatures, r_values
}

// R-factor of the construction under the given boundary conditions, m2K/W
func (c *OpaqueConstruction) RFactorAt(bc BoundaryConditions) float64 {
	_, r_values := c.TemperatureProfile(bc)
	return floats.Sum(r_values)
}

// U-factor of the construction under the given boundary conditions, W/m2K
func (c *OpaqueConstruction) UFactorAt(bc BoundaryConditions) float64 {
	return 1.0 / c.RFactorAt(bc)
}

// window construction: an ordered sequence of window material layers from
// outside to inside
type WindowConstruction struct {
	_name      string
	_materials []WindowMaterial
	_has_shade bool
	_gap_count int
	_slots     []_layer_slot
}

/*
Create a window construction.

The layer sequence must satisfy the rules of multi-layer glazing systems:
the first and last layer must be solid (glass or shade/blind), adjacent
glass layers must be separated by exactly one gas layer, a gas layer must
always sit next to a glazing layer, at most one shade or blind layer is
allowed, and a simple glazing system must be the only layer. Violations
panic.

	Args:
		name: construction name
		materials: material layers of the construction, outside to inside
*/
func NewWindowConstruction(name string, materials []WindowMaterial) *WindowConstruction {
	if name == "" {
		panic("construction name must not be empty")
	}
	if len(materials) == 0 {
		panic("construction must possess at least one material")
	}
	if len(materials) > 8 {
		panic("window construction cannot have more than 8 materials")
	}
	if materials[0].kind() == MaterialGas {
		panic("window construction cannot have a gas layer on the outside")
	}
	if materials[len(materials)-1].kind() == MaterialGas {
		panic("window construction cannot have a gas layer on the inside")
	}
	glazing_layer := false
	has_shade := false
	for i, mat := range materials {
		switch mat.kind() {
		case MaterialSimpleGlazSys:
			if len(materials) != 1 {
				panic("a simple glazing system must be the only layer of its construction")
			}
		case MaterialGas:
			if !glazing_layer {
				panic(fmt.Sprintf("gas layer `%s` must be adjacent to a glazing layer", mat.Name()))
			}
			glazing_layer = false
		case MaterialGlazing:
			if glazing_layer {
				panic("two adjacent glazing layers are not allowed")
			}
			glazing_layer = true
		case MaterialShade, MaterialBlind:
			if i != 0 && !glazing_layer {
				panic(fmt.Sprintf("shade layer `%s` must be adjacent to a glazing layer", mat.Name()))
			}
			if has_shade {
				panic("window construction can only possess one shade layer")
			}
			glazing_layer = false
			has_shade = true
		default:
			panic(fmt.Sprintf("invalid window material `%s`", mat.Name()))
		}
	}
	mats := make([]WindowMaterial, len(materials))
	copy(mats, materials)
	c := &WindowConstruction{
		_name:      name,
		_materials: mats,
		_has_shade: has_shade,
		_gap_count: _count_gaps(mats),
	}
	c._slots = _build_layer_slots(mats)
	return c
}

/*
Number of gaps in a layer sequence: every gas layer is one gap, and a shade
or blind layer creates one gap against the adjacent glazing at an assembly
boundary or two gaps between glass.
*/
func _count_gaps(materials []WindowMaterial) int {
	count := 0
	for i, mat := range materials {
		switch mat.kind() {
		case MaterialGas:
			count++
		case MaterialShade, MaterialBlind:
			if i == 0 || i == len(materials)-1 {
				count++
			} else {
				count += 2
			}
		}
	}
	return count
}

func (c *WindowConstruction) Name() string {
	return c._name
}

// material layers of the construction, outside to inside
func (c *WindowConstruction) Materials() []WindowMaterial {
	mats := make([]WindowMaterial, len(c._materials))
	copy(mats, c._materials)
	return mats
}

// material layer names, outside to inside
func (c *WindowConstruction) Layers() []string {
	layers := make([]string, len(c._materials))
	for i, mat := range c._materials {
		layers[i] = mat.Name()
	}
	return layers
}

// number of glazing layers in the construction
func (c *WindowConstruction) GlazingCount() int {
	count := 0
	for _, mat := range c._materials {
		if mat.kind() == MaterialGlazing {
			count++
		}
	}
	return count
}

// number of gaps in the construction, counting the air spaces shades create
func (c *WindowConstruction) GapCount() int {
	return c._gap_count
}

// whether the construction contains a shade or blind layer
func (c *WindowConstruction) HasShade() bool {
	return c._has_shade
}

// location of the shade layer: Exterior, Interior, Between or empty when
// there is none
func (c *WindowConstruction) ShadeLocation() string {
	first := c._materials[0].kind()
	last := c._materials[len(c._materials)-1].kind()
	if first == MaterialShade || first == MaterialBlind {
		return "Exterior"
	}
	if last == MaterialShade || last == MaterialBlind {
		return "Interior"
	}
	if c._has_shade {
		return "Between"
	}
	return ""
}

// emissivity of the inside face of the construction, -
func (c *WindowConstruction) InsideEmissivity() float64 {
	if c._materials[0].kind() == MaterialSimpleGlazSys {
		return 0.84
	}
	return _emissivity_back(c._materials[len(c._materials)-1])
}

// emissivity of the outside face of the construction, -
func (c *WindowConstruction) OutsideEmissivity() float64 {
	if c._materials[0].kind() == MaterialSimpleGlazSys {
		return 0.84
	}
	return _emissivity_front(c._materials[0])
}

// total thickness of the construction, m
func (c *WindowConstruction) Thickness() float64 {
	thickness := 0.0
	for _, mat := range c._materials {
		thickness += mat.thickness()
	}
	return thickness
}

/*
Solar transmittance of the window at normal incidence ignoring any shade
layer, -.

	Notes:
		For a simple glazing system roughly 80 percent of the solar heat
		gain comes from direct transmission.
*/
func (c *WindowConstruction) UnshadedSolarTransmittance() float64 {
	if sys, ok := c._materials[0].(*EnergyWindowMaterialSimpleGlazSys); ok {
		return sys.shgc() * 0.8
	}
	trans := 1.0
	for _, mat := range c._materials {
		if glz, ok := mat.(*EnergyWindowMaterialGlazing); ok {
			trans *= glz.solar_transmittance()
		}
	}
	return trans
}

// visible transmittance of the window at normal incidence ignoring any
// shade layer, -
func (c *WindowConstruction) UnshadedVisibleTransmittance() float64 {
	if sys, ok := c._materials[0].(*EnergyWindowMaterialSimpleGlazSys); ok {
		return sys.vt()
	}
	trans := 1.0
	for _, mat := range c._materials {
		if glz, ok := mat.(*EnergyWindowMaterialGlazing); ok {
			trans *= glz.visible_transmittance()
		}
	}
	return trans
}

/*
R-factor of the construction including the air film resistances under the
NFRC winter design conditions, m2K/W.

	Returns:
		R-factor and an error when the iterative solve does not converge.
		Single pane and simple glazing system constructions use the closed
		form with the simple ISO 10292 films and never error.
*/
func (c *WindowConstruction) RFactor() (float64, error) {
	if c._gap_count == 0 {
		return c._materials[0].RValue() + 1.0/out_h_simple() + 1.0/in_h_simple(c.InsideEmissivity()), nil
	}
	r_values, _, err := c._solve_default()
	if err != nil {
		return 0.0, err
	}
	return floats.Sum(r_values), nil
}

// U-factor of the construction including the air film resistances, W/m2K
func (c *WindowConstruction) UFactor() (float64, error) {
	r_factor, err := c.RFactor()
	if err != nil {
		return 0.0, err
	}
	return 1.0 / r_factor, nil
}

/*
R-value of the construction excluding the air films, m2K/W.

	Notes:
		Shade layers are considered impermeable to air, so the gaps they
		create count toward the construction resistance.
*/
func (c *WindowConstruction) RValue() (float64, error) {
	if c._gap_count == 0 {
		return c._materials[0].RValue(), nil
	}
	r_values, _, err := c._solve_default()
	if err != nil {
		return 0.0, err
	}
	return floats.Sum(r_values[1 : len(r_values)-1]), nil
}

// U-value of the construction excluding the air films, W/m2K
func (c *WindowConstruction) UValue() (float64, error) {
	r_value, err := c.RValue()
	if err != nil {
		return 0.0, err
	}
	return 1.0 / r_value, nil
}

// solve under the standardized conditions used by the R-factor and R-value
// metrics: a 15 C drop guess around freezing and the NFRC winter boundary
func (c *WindowConstruction) _solve_default() ([]float64, int, error) {
	r_values := c._layered_r_value_initial(15.0, 273.15, 6.7)
	return c._solve_r_values(r_values, NewBoundaryConditions(), 90.0)
}

/*
Temperatures at each material boundary across the construction.

	Args:
		bc: boundary conditions of the solve

	Returns:
		(1) boundary temperatures, C; the first entry is the outdoor air
		temperature, the second the exterior surface temperature, the last
		the indoor air temperature and the second to last the interior
		surface temperature
		(2) resistances of each boundary segment, m2K/W; the sum is the
		R-factor of the construction under the given conditions
		(3) error when the iterative solve does not converge
*/
func (c *WindowConstruction) TemperatureProfile(bc BoundaryConditions) ([]float64, []float64, error) {
	angle := _heat_flow_angle(bc.Angle, bc.OutsideTemperature, bc.InsideTemperature)
	return c._temperature_profile_at_angle(bc, angle)
}

// profile computation on the already transformed angle
func (c *WindowConstruction) _temperature_profile_at_angle(bc BoundaryConditions, angle float64) ([]float64, []float64, error) {
	if c._gap_count == 0 {
		// single pane or simple glazing system: no iteration is needed and
		// only the indoor film is refined once, like an opaque construction
		in_r_init := 1.0 / in_h_simple(c.InsideEmissivity())
		r_values := []float64{
			1.0 / out_h(bc.WindSpeed, bc.OutsideTemperature+273.15, c.OutsideEmissivity()),
			c._materials[0].RValue(),
			in_r_init,
		}
		in_delta_t := (in_r_init / floats.Sum(r_values)) *
			(bc.OutsideTemperature - bc.InsideTemperature)
		r_values[len(r_values)-1] = 1.0 / in_h(
			bc.InsideTemperature-(in_delta_t/2.0)+273.15, in_delta_t,
			bc.Height, angle, bc.Pressure, c.InsideEmissivity())
		temperatures := temperature_profile_from_r_values(
			r_values, bc.OutsideTemperature, bc.InsideTemperature)
		return temperatures, r_values, nil
	}
	// multi-layered window construction
	guess := math.Abs(bc.InsideTemperature-bc.OutsideTemperature) / 2.0
	if guess < 1.0 {
		// prevents zero division within the gas conductance
		guess = 1.0
	}
	avg_guess := (bc.InsideTemperature+bc.OutsideTemperature)/2.0 + 273.15
	r_values := c._layered_r_value_initial(guess, avg_guess, bc.WindSpeed)
	r_values, _, err := c._solve_r_values(r_values, bc, angle)
	if err != nil {
		return nil, nil, err
	}
	temperatures := temperature_profile_from_r_values(
		r_values, bc.OutsideTemperature, bc.InsideTemperature)
	return temperatures, r_values, nil
}

// R-factor of the construction under the given boundary conditions, m2K/W
func (c *WindowConstruction) RFactorAt(bc BoundaryConditions) (float64, error) {
	_, r_values, err := c.TemperatureProfile(bc)
	if err != nil {
		return 0.0, err
	}
	return floats.Sum(r_values), nil
}

// U-factor of the construction under the given boundary conditions, W/m2K
func (c *WindowConstruction) UFactorAt(bc BoundaryConditions) (float64, error) {
	r_factor, err := c.RFactorAt(bc)
	if err != nil {
		return 0.0, err
	}
	return 1.0 / r_factor, nil
}
