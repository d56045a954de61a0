package impact

import "fmt"

// Per-unit coefficients. Compostable water use is higher than conventional
// for every category, so water savings come out negative.
//
//nolint:gochecknoglobals // Read-only lookup data.
var (
	bagsConventional      = Coefficients{CO2PerUnit: 0.04, WastePerUnit: 0.005, OilPerUnit: 0.02, WaterPerUnit: 0.5}
	bagsCompostable       = Coefficients{CO2PerUnit: 0.02, WastePerUnit: 0, OilPerUnit: 0, WaterPerUnit: 0.8}
	packagingConventional = Coefficients{CO2PerUnit: 0.1, WastePerUnit: 0.02, OilPerUnit: 0.05, WaterPerUnit: 1.2}
	packagingCompostable  = Coefficients{CO2PerUnit: 0.05, WastePerUnit: 0, OilPerUnit: 0, WaterPerUnit: 1.5}
	filmsConventional     = Coefficients{CO2PerUnit: 0.03, WastePerUnit: 0.015, OilPerUnit: 0.015, WaterPerUnit: 0.3}
	filmsCompostable      = Coefficients{CO2PerUnit: 0.015, WastePerUnit: 0, OilPerUnit: 0, WaterPerUnit: 0.4}
)

// FactorsFor returns the coefficients for a product category and material.
func FactorsFor(p ProductType, m Material) (Coefficients, error) {
	conventional, compostable, err := factorPair(p)
	if err != nil {
		return Coefficients{}, err
	}

	switch m {
	case MaterialConventional:
		return conventional, nil
	case MaterialCompostable:
		return compostable, nil
	default:
		return Coefficients{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, m)
	}
}

// factorPair returns (conventional, compostable) for p.
func factorPair(p ProductType) (Coefficients, Coefficients, error) {
	switch p {
	case ProductBags:
		return bagsConventional, bagsCompostable, nil
	case ProductPackaging:
		return packagingConventional, packagingCompostable, nil
	case ProductFilms:
		return filmsConventional, filmsCompostable, nil
	default:
		return Coefficients{}, Coefficients{}, fmt.Errorf("%w: %q", ErrUnknownProductType, string(p))
	}
}
