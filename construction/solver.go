package construction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// how a layer's resistance responds to the temperatures around it
type _gap_position int

const (
	_gap_none _gap_position = iota // resistance is temperature independent
	_gap_gas
	_gap_shade_exterior
	_gap_shade_interior
	_gap_shade_between
)

// shading layers expose position specific resistance formulas
type _shading_layer interface {
	r_value_exterior(delta_t float64, emissivity_adjacent float64, height float64, angle float64, t_kelvin float64, pressure float64) float64
	r_value_interior(delta_t float64, emissivity_adjacent float64, height float64, angle float64, t_kelvin float64, pressure float64) float64
	r_value_between(delta_t float64, emissivity_back float64, emissivity_front float64, height float64, angle float64, t_kelvin float64, pressure float64) float64
}

/*
Capability slot of one layer in the iterative resistance solve. The slot is
selected once when the construction is built so that the solver never
re-examines material kinds inside the iteration.

For _gap_gas and _gap_shade_between both emissivities are set; for an
exterior or interior shading layer only the adjacent one is; for temperature
independent layers neither is and r_fixed carries the intrinsic resistance.
*/
type _layer_slot struct {
	position _gap_position
	r_fixed  float64
	e_back   float64 // emissivity of the face on the outdoor side of the gap
	e_front  float64 // emissivity of the face on the indoor side of the gap
	gas      *EnergyWindowMaterialGas
	shade    _shading_layer
}

/*
Build the per-layer capability table of a window construction.

	Args:
		materials: the structurally validated layer sequence, outside to inside

	Returns:
		one slot per layer
*/
func _build_layer_slots(materials []WindowMaterial) []_layer_slot {
	slots := make([]_layer_slot, len(materials))
	for i, mt := range materials {
		switch m := mt.(type) {
		case *EnergyWindowMaterialGlazing:
			slots[i] = _layer_slot{position: _gap_none, r_fixed: m.RValue()}
		case *EnergyWindowMaterialSimpleGlazSys:
			slots[i] = _layer_slot{position: _gap_none, r_fixed: m.RValue()}
		case *EnergyWindowMaterialGas:
			slots[i] = _layer_slot{
				position: _gap_gas,
				e_back:   _emissivity_back(materials[i-1]),
				e_front:  _emissivity_front(materials[i+1]),
				gas:      m,
			}
		case *EnergyWindowMaterialShade:
			slots[i] = _shading_slot(materials, i, &m._shade_layer_base)
		case *EnergyWindowMaterialBlind:
			slots[i] = _shading_slot(materials, i, &m._shade_layer_base)
		default:
			panic(fmt.Sprintf("invalid window material `%s`", mt.Name()))
		}
	}
	return slots
}

// slot of a shade or blind layer, by its position in the sequence
func _shading_slot(materials []WindowMaterial, i int, shade _shading_layer) _layer_slot {
	if i == 0 {
		return _layer_slot{
			position: _gap_shade_exterior,
			e_front:  _emissivity_front(materials[i+1]),
			shade:    shade,
		}
	}
	if i == len(materials)-1 {
		return _layer_slot{
			position: _gap_shade_interior,
			e_back:   _emissivity_back(materials[i-1]),
			shade:    shade,
		}
	}
	return _layer_slot{
		position: _gap_shade_between,
		e_back:   _emissivity_back(materials[i-1]),
		e_front:  _emissivity_front(materials[i+1]),
		shade:    shade,
	}
}

/*
Compute the initial resistance of each boundary segment of a layered window
construction.

	Args:
		delta_t_guess: guess of the temperature difference across the
			construction, C; spread uniformly over the gaps
		avg_t_guess: guess of the mean temperature of the construction, K
		wind_speed: average outdoor wind speed, m/s

	Returns:
		seed resistances, m2K/W, [outdoor film, layer_1 .. layer_n, indoor film]

	Notes:
		Gap resistances are seeded with the vertical correlations at standard
		pressure; the indoor film is seeded with the simple formula. The
		iteration replaces both with the detailed angle dependent values.
*/
func (c *WindowConstruction) _layered_r_value_initial(delta_t_guess float64, avg_t_guess float64, wind_speed float64) []float64 {
	r_values := make([]float64, 0, len(c._materials)+2)
	r_values = append(r_values, 1.0/out_h(wind_speed, avg_t_guess-delta_t_guess, c.OutsideEmissivity()))
	delta_t := delta_t_guess / float64(c._gap_count)
	for i := range c._slots {
		slot := &c._slots[i]
		switch slot.position {
		case _gap_none:
			r_values = append(r_values, slot.r_fixed)
		case _gap_gas:
			r_values = append(r_values, 1.0/slot.gas.u_value(delta_t, slot.e_back, slot.e_front, avg_t_guess))
		case _gap_shade_exterior:
			r_values = append(r_values, slot.shade.r_value_exterior(
				delta_t, slot.e_front, 1.0, 90.0, avg_t_guess, get_p_atm()))
		case _gap_shade_interior:
			r_values = append(r_values, slot.shade.r_value_interior(
				delta_t, slot.e_back, 1.0, 90.0, avg_t_guess, get_p_atm()))
		case _gap_shade_between:
			r_values = append(r_values, slot.shade.r_value_between(
				delta_t, slot.e_back, slot.e_front, 1.0, 90.0, avg_t_guess, get_p_atm()))
		}
	}
	r_values = append(r_values, 1.0/in_h_simple(c.InsideEmissivity()))
	return r_values
}

/*
Recompute the resistance of each boundary segment from the actual
temperatures of the current iterate.

	Args:
		temperatures: boundary temperatures of the current iterate, C,
			[len(r_values_init)+1]
		r_values_init: resistances of the current iterate, m2K/W
		wind_speed: average outdoor wind speed, m/s
		height: height of the construction, m
		angle: tilt angle in degrees between 0 and 180, already transformed
			for heat flow direction
		pressure: air pressure, Pa

	Returns:
		refined resistances, m2K/W

	Notes:
		Opaque and glazing resistances are temperature independent and carry
		over unchanged. Gap resistances use the temperature difference and
		mean temperature across the gap; the films use the adjacent surface
		temperatures.
*/
func (c *WindowConstruction) _layered_r_value(temperatures []float64, r_values_init []float64, wind_speed float64, height float64, angle float64, pressure float64) []float64 {
	r_values := make([]float64, 0, len(r_values_init))
	t_out_film := (temperatures[0]+temperatures[1])/2.0 + 273.15
	r_values = append(r_values, 1.0/out_h(wind_speed, t_out_film, c.OutsideEmissivity()))
	for i := range c._slots {
		slot := &c._slots[i]
		if slot.position == _gap_none {
			r_values = append(r_values, r_values_init[i+1])
			continue
		}
		delta_t := math.Abs(temperatures[i+1] - temperatures[i+2])
		avg_temp := (temperatures[i+1]+temperatures[i+2])/2.0 + 273.15
		switch slot.position {
		case _gap_gas:
			r_values = append(r_values, 1.0/slot.gas.u_value_at_angle(
				delta_t, slot.e_back, slot.e_front, height, angle, avg_temp, pressure))
		case _gap_shade_exterior:
			r_values = append(r_values, slot.shade.r_value_exterior(
				delta_t, slot.e_front, height, angle, avg_temp, pressure))
		case _gap_shade_interior:
			r_values = append(r_values, slot.shade.r_value_interior(
				delta_t, slot.e_back, height, angle, avg_temp, pressure))
		case _gap_shade_between:
			r_values = append(r_values, slot.shade.r_value_between(
				delta_t, slot.e_back, slot.e_front, height, angle, avg_temp, pressure))
		}
	}
	n := len(temperatures)
	delta_t := math.Abs(temperatures[n-1] - temperatures[n-2])
	avg_temp := (temperatures[n-1]+temperatures[n-2])/2.0 + 273.15
	r_values = append(r_values, 1.0/in_h(avg_temp, delta_t, height, angle, pressure, c.InsideEmissivity()))
	return r_values
}

/*
Iteratively solve for the resistance of each boundary segment until the total
resistance stabilizes.

	Args:
		r_values: seed resistances from _layered_r_value_initial, m2K/W
		bc: boundary conditions of the solve
		angle: tilt angle in degrees between 0 and 180, already transformed
			for heat flow direction

	Returns:
		(1) converged resistances, m2K/W
		(2) iterations used
		(3) error when the resistance sum does not stabilize within the
		    iteration cap

	Notes:
		Gap resistances depend on the temperature difference across them, so
		the resistance distribution is the fixed point of guessing
		resistances, deriving temperatures and refining the resistances. The
		coupling is weak and the loop normally converges within a handful of
		iterations to the 0.001 m2K/W tolerance.
*/
func (c *WindowConstruction) _solve_r_values(r_values []float64, bc BoundaryConditions, angle float64) ([]float64, int, error) {
	r_last := 0.0
	r_next := floats.Sum(r_values)
	iterations := 0
	for math.Abs(r_next-r_last) > get_r_value_tolerance() {
		if iterations >= get_max_iterations() {
			return nil, iterations, fmt.Errorf(
				"construction `%s`: resistance solve failed to converge within %d iterations (residual %f m2K/W)",
				c._name, get_max_iterations(), math.Abs(r_next-r_last))
		}
		r_last = floats.Sum(r_values)
		temperatures := temperature_profile_from_r_values(
			r_values, bc.OutsideTemperature, bc.InsideTemperature)
		r_values = c._layered_r_value(
			temperatures, r_values, bc.WindSpeed, bc.Height, angle, bc.Pressure)
		r_next = floats.Sum(r_values)
		iterations++
	}
	return r_values, iterations, nil
}
