package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"envelope_calc/construction"
)

/*
Run the envelope calculation.

	Args:
		library_path: path of the construction library CSV file
		output_data_dir: path of the output directory
		is_results_saved: whether the computed metrics are written to a CSV file
		bc: boundary conditions of the condition specific metrics
*/
func run(
	library_path string,
	output_data_dir string,
	is_results_saved bool,
	bc construction.BoundaryConditions,
) {
	log.Printf("Load construction library from `%s`", library_path)
	opaques, windows := construction.LoadConstructionLibrary(library_path)
	log.Printf("loaded %d opaque and %d window constructions", len(opaques), len(windows))

	results := make([]*construction.ConstructionResultRow, 0, len(opaques)+len(windows))

	for _, c := range opaques {
		r_factor_at := c.RFactorAt(bc)
		fmt.Printf("%s: R-value %.3f m2K/W, U-factor %.3f W/m2K (%.3f at %.1f C / %.1f C)\n",
			c.Name(), c.RValue(), c.UFactor(), 1.0/r_factor_at,
			bc.OutsideTemperature, bc.InsideTemperature)
		results = append(results, &construction.ConstructionResultRow{
			Construction:     c.Name(),
			ConstructionType: "opaque",
			Layers:           len(c.Layers()),
			Thickness:        c.Thickness(),
			RValue:           c.RValue(),
			RFactor:          c.RFactor(),
			UFactor:          c.UFactor(),
			RFactorAt:        r_factor_at,
			UFactorAt:        1.0 / r_factor_at,
		})
	}

	for _, c := range windows {
		r_value, err := c.RValue()
		if err != nil {
			log.Fatal(err)
		}
		r_factor, err := c.RFactor()
		if err != nil {
			log.Fatal(err)
		}
		r_factor_at, err := c.RFactorAt(bc)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: R-value %.3f m2K/W, U-factor %.3f W/m2K (%.3f at %.1f C / %.1f C)\n",
			c.Name(), r_value, 1.0/r_factor, 1.0/r_factor_at,
			bc.OutsideTemperature, bc.InsideTemperature)
		results = append(results, &construction.ConstructionResultRow{
			Construction:     c.Name(),
			ConstructionType: "window",
			Layers:           len(c.Layers()),
			Thickness:        c.Thickness(),
			RValue:           r_value,
			RFactor:          r_factor,
			UFactor:          1.0 / r_factor,
			RFactorAt:        r_factor_at,
			UFactorAt:        1.0 / r_factor_at,
		})
	}

	if is_results_saved {
		results_path := filepath.Join(output_data_dir, "results.csv")
		log.Printf("Write results to `%s`", results_path)
		if err := construction.WriteResults(results_path, results); err != nil {
			log.Fatal(err)
		}
	}
}

func main() {
	var library_path string
	flag.StringVar(&library_path, "input", "example/library.csv", "construction library CSV file")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output directory")

	var results_saved bool
	flag.BoolVar(&results_saved, "results_saved", false, "write the computed metrics to a CSV file")

	var outside_temperature float64
	flag.Float64Var(&outside_temperature, "outside_temperature", -18.0, "outdoor air temperature, C")

	var inside_temperature float64
	flag.Float64Var(&inside_temperature, "inside_temperature", 21.0, "indoor air temperature, C")

	var wind_speed float64
	flag.Float64Var(&wind_speed, "wind_speed", 6.7, "average outdoor wind speed, m/s")

	var height float64
	flag.Float64Var(&height, "height", 1.0, "height of the surface, m")

	var angle float64
	flag.Float64Var(&angle, "angle", 90.0, "tilt angle in degrees between 0 and 180")

	var pressure float64
	flag.Float64Var(&pressure, "pressure", 101325.0, "air pressure, Pa")

	flag.Parse()

	// Print flag values
	fmt.Printf("library_path: %s\n", library_path)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("results_saved: %t\n", results_saved)
	fmt.Printf("outside_temperature: %f\n", outside_temperature)
	fmt.Printf("inside_temperature: %f\n", inside_temperature)
	fmt.Printf("wind_speed: %f\n", wind_speed)
	fmt.Printf("height: %f\n", height)
	fmt.Printf("angle: %f\n", angle)
	fmt.Printf("pressure: %f\n", pressure)

	start := time.Now()

	run(
		library_path,
		output_data_dir,
		results_saved,
		construction.BoundaryConditions{
			OutsideTemperature: outside_temperature,
			InsideTemperature:  inside_temperature,
			WindSpeed:          wind_speed,
			Height:             height,
			Angle:              angle,
			Pressure:           pressure,
		},
	)

	elapsedTime := time.Since(start)
	log.Printf("elapsed_time: %v [sec]", elapsedTime)
}
