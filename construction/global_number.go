package construction

// Stefan-Boltzmann constant used by ISO 15099, W/m2K4
func get_sgm() float64 {
	return 5.6697e-8
}

// gravitational acceleration, m/s2
func get_g() float64 {
	return 9.81
}

// universal gas constant, J/molK
func get_r_univ() float64 {
	return 8.314
}

// standard atmospheric pressure at sea level, Pa
func get_p_atm() float64 {
	return 101325.0
}

// convergence tolerance of the layered resistance solve, m2K/W
func get_r_value_tolerance() float64 {
	return 0.001
}

// iteration cap of the layered resistance solve
func get_max_iterations() int {
	return 100
}
