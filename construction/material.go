package construction

// material layer variants
type MaterialKind int

const (
	MaterialOpaque MaterialKind = iota // opaque material with mass
	MaterialOpaqueNoMass               // opaque material described by a resistance only
	MaterialGlazing                    // glass pane
	MaterialSimpleGlazSys              // whole-glazing-system described by U-factor and SHGC
	MaterialGas                        // gas gap
	MaterialShade                      // fabric shade or screen
	MaterialBlind                      // slat blind
)

// OpaqueMaterial is a material layer allowed in an opaque construction.
type OpaqueMaterial interface {
	Name() string

	// intrinsic thermal resistance of the layer, m2K/W
	RValue() float64

	kind() MaterialKind
	thickness() float64
	thermal_absorptance() float64
	solar_absorptance() float64
	visible_absorptance() float64
	mass_area_density() float64
	area_heat_capacity() float64
}

// WindowMaterial is a material layer allowed in a window construction.
type WindowMaterial interface {
	Name() string

	// intrinsic thermal resistance of the layer, m2K/W
	// For gas layers this is the resistance at standardized conditions;
	// the solver recomputes gap resistances from actual temperatures.
	RValue() float64

	kind() MaterialKind
	thickness() float64
}

/*
Get the emissivity of the outdoor-facing (front) face of a solid window layer.

	Args:
		m: a glazing, shade or blind layer adjacent to a gap

	Returns:
		emissivity of the face exposed to the gap on its outdoor side, -
*/
func _emissivity_front(m WindowMaterial) float64 {
	switch mat := m.(type) {
	case *EnergyWindowMaterialGlazing:
		return mat._emissivity
	case *EnergyWindowMaterialShade:
		return mat._emissivity
	case *EnergyWindowMaterialBlind:
		return mat._emissivity
	default:
		panic("layer has no front face emissivity")
	}
}

/*
Get the emissivity of the indoor-facing (back) face of a solid window layer.

	Args:
		m: a glazing, shade or blind layer adjacent to a gap

	Returns:
		emissivity of the face exposed to the gap on its indoor side, -
*/
func _emissivity_back(m WindowMaterial) float64 {
	switch mat := m.(type) {
	case *EnergyWindowMaterialGlazing:
		return mat._emissivity_back
	case *EnergyWindowMaterialShade:
		return mat._emissivity
	case *EnergyWindowMaterialBlind:
		return mat._emissivity
	default:
		panic("layer has no back face emissivity")
	}
}
