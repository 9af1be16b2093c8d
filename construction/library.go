package construction

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// one material layer of one construction in a library file
type ConstructionLayerRow struct {
	Construction         string  `csv:"construction"`
	ConstructionType     string  `csv:"construction_type"` // opaque or window
	Material             string  `csv:"material"`
	MaterialType         string  `csv:"material_type"`
	Thickness            float64 `csv:"thickness"`             // m
	Conductivity         float64 `csv:"conductivity"`          // W/mK
	Density              float64 `csv:"density"`               // kg/m3
	SpecificHeat         float64 `csv:"specific_heat"`         // J/kgK
	RValue               float64 `csv:"r_value"`               // m2K/W
	Emissivity           float64 `csv:"emissivity"`            // -
	EmissivityBack       float64 `csv:"emissivity_back"`       // -
	GasType              string  `csv:"gas_type"`              // Air, Argon, Krypton, Xenon
	UFactor              float64 `csv:"u_factor"`              // W/m2K
	SHGC                 float64 `csv:"shgc"`                  // -
	VisibleTransmittance float64 `csv:"visible_transmittance"` // -
	SolarTransmittance   float64 `csv:"solar_transmittance"`   // -
	DistanceToGlass      float64 `csv:"distance_to_glass"`     // m
	ThermalAbsorptance   float64 `csv:"thermal_absorptance"`   // -
	SolarAbsorptance     float64 `csv:"solar_absorptance"`     // -
	VisibleAbsorptance   float64 `csv:"visible_absorptance"`   // -
}

/*
Load a construction library from a CSV file. Each row is one material layer;
rows sharing a construction name form the layer sequence of that
construction, outside to inside, in file order.

	Args:
		file_path: path of the library CSV file

	Returns:
		(1) opaque constructions in file order
		(2) window constructions in file order

	Notes:
		Structurally invalid constructions and unknown material or
		construction types panic, like any other invalid input.
*/
func LoadConstructionLibrary(file_path string) ([]*OpaqueConstruction, []*WindowConstruction) {
	// file is exist
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		panic(fmt.Sprintf("Error File %s is not exist.", file_path))
	}

	file, err := os.Open(file_path)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var rows []*ConstructionLayerRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		panic(err)
	}

	// group the rows by construction, preserving file order
	names := make([]string, 0)
	grouped := make(map[string][]*ConstructionLayerRow)
	for _, row := range rows {
		if _, ok := grouped[row.Construction]; !ok {
			names = append(names, row.Construction)
		}
		grouped[row.Construction] = append(grouped[row.Construction], row)
	}

	opaques := make([]*OpaqueConstruction, 0)
	windows := make([]*WindowConstruction, 0)
	for _, name := range names {
		layers := grouped[name]
		switch layers[0].ConstructionType {
		case "opaque":
			materials := make([]OpaqueMaterial, len(layers))
			for i, row := range layers {
				materials[i] = _opaque_material_from_row(row)
			}
			opaques = append(opaques, NewOpaqueConstruction(name, materials))
		case "window":
			materials := make([]WindowMaterial, len(layers))
			for i, row := range layers {
				materials[i] = _window_material_from_row(row)
			}
			windows = append(windows, NewWindowConstruction(name, materials))
		default:
			panic(fmt.Sprintf("invalid construction type `%s` of construction `%s`",
				layers[0].ConstructionType, name))
		}
	}
	return opaques, windows
}

func _opaque_material_from_row(row *ConstructionLayerRow) OpaqueMaterial {
	switch row.MaterialType {
	case "material":
		return NewEnergyMaterial(
			row.Material, row.Thickness, row.Conductivity, row.Density,
			row.SpecificHeat, row.ThermalAbsorptance, row.SolarAbsorptance,
			row.VisibleAbsorptance)
	case "material_no_mass":
		return NewEnergyMaterialNoMass(
			row.Material, row.RValue, row.ThermalAbsorptance,
			row.SolarAbsorptance, row.VisibleAbsorptance)
	default:
		panic(fmt.Sprintf("invalid opaque material type `%s` of material `%s`",
			row.MaterialType, row.Material))
	}
}

func _window_material_from_row(row *ConstructionLayerRow) WindowMaterial {
	switch row.MaterialType {
	case "glazing":
		return NewEnergyWindowMaterialGlazing(
			row.Material, row.Thickness, row.Conductivity,
			row.SolarTransmittance, row.VisibleTransmittance,
			row.Emissivity, row.EmissivityBack)
	case "simple_glazing_system":
		return NewEnergyWindowMaterialSimpleGlazSys(
			row.Material, row.UFactor, row.SHGC, row.VisibleTransmittance)
	case "gas":
		return NewEnergyWindowMaterialGas(
			row.Material, row.Thickness, GasTypeFromString(row.GasType))
	case "shade":
		return NewEnergyWindowMaterialShade(
			row.Material, row.Thickness, row.Conductivity,
			row.SolarTransmittance, row.VisibleTransmittance,
			row.Emissivity, row.DistanceToGlass)
	default:
		panic(fmt.Sprintf("invalid window material type `%s` of material `%s`",
			row.MaterialType, row.Material))
	}
}

// computed metrics of one construction for the results file
type ConstructionResultRow struct {
	Construction     string  `csv:"construction"`
	ConstructionType string  `csv:"construction_type"`
	Layers           int     `csv:"layers"`
	Thickness        float64 `csv:"thickness"`   // m
	RValue           float64 `csv:"r_value"`     // m2K/W
	RFactor          float64 `csv:"r_factor"`    // m2K/W
	UFactor          float64 `csv:"u_factor"`    // W/m2K
	RFactorAt        float64 `csv:"r_factor_at"` // m2K/W under the given boundary conditions
	UFactorAt        float64 `csv:"u_factor_at"` // W/m2K under the given boundary conditions
}

/*
Write computed construction metrics to a CSV file.

	Args:
		file_path: path of the results CSV file; overwritten when it exists
		rows: computed metrics, one row per construction
*/
func WriteResults(file_path string, rows []*ConstructionResultRow) error {
	file, err := os.Create(file_path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&rows, file)
}
