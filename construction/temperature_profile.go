package construction

import (
	"gonum.org/v1/gonum/floats"
)

/*
Build the temperature at each material boundary from a resistance vector.

	Args:
		r_values: resistance of each boundary segment from the outdoor film
			to the indoor film, m2K/W
		outside_temperature: outdoor air temperature, C
		inside_temperature: indoor air temperature, C

	Returns:
		boundary temperatures, C, [len(r_values)+1]; the first entry is the
		outdoor air temperature and the last entry is the indoor air
		temperature since the resistance fractions sum to 1

	Notes:
		The total temperature drop is apportioned across segments in
		proportion to each segment resistance.
*/
func temperature_profile_from_r_values(r_values []float64, outside_temperature float64, inside_temperature float64) []float64 {
	r_factor := floats.Sum(r_values)
	delta_t := inside_temperature - outside_temperature
	temperatures := make([]float64, len(r_values)+1)
	temperatures[0] = outside_temperature
	for i, r_val := range r_values {
		temperatures[i+1] = temperatures[i] + delta_t*(r_val/r_factor)
	}
	return temperatures
}
