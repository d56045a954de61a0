// Package impact computes the environmental footprint of a purchase of
// plastic products and compares conventional material against compostable
// material.
//
// The calculation is a pure function over two static tables: per-unit impact
// coefficients for each product category and material, and an annualisation
// multiplier for each purchase frequency. Savings are translated into
// relatable equivalents such as trees planted or car miles avoided.
package impact

import "fmt"

// ProductType is a product category with its own coefficient set.
type ProductType string

const (
	// ProductBags covers carrier, produce and waste bags.
	ProductBags ProductType = "bags"

	// ProductPackaging covers rigid and semi-rigid packaging.
	ProductPackaging ProductType = "packaging"

	// ProductFilms covers wraps, mulch and cling films.
	ProductFilms ProductType = "films"
)

// ProductTypes returns every product category in display order.
func ProductTypes() []ProductType {
	return []ProductType{ProductBags, ProductPackaging, ProductFilms}
}

// ParseProductType converts s to a ProductType. Matching is exact.
func ParseProductType(s string) (ProductType, error) {
	p := ProductType(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProductType, s)
	}
	return p, nil
}

// IsValid reports whether p is one of the known product categories.
func (p ProductType) IsValid() bool {
	switch p {
	case ProductBags, ProductPackaging, ProductFilms:
		return true
	default:
		return false
	}
}

func (p ProductType) String() string { return string(p) }

// Frequency is how often a quantity is purchased.
type Frequency string

const (
	FrequencyOnce      Frequency = "once"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Frequencies returns every purchase frequency in display order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyOnce, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly}
}

// ParseFrequency converts s to a Frequency. Matching is exact.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	return f, nil
}

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	_, err := f.Multiplier()
	return err == nil
}

// Multiplier returns the number of purchases per year for f.
// A one-off purchase counts as a single purchase.
func (f Frequency) Multiplier() (float64, error) {
	switch f {
	case FrequencyOnce:
		return MultiplierOnce, nil
	case FrequencyMonthly:
		return MultiplierMonthly, nil
	case FrequencyQuarterly:
		return MultiplierQuarterly, nil
	case FrequencyYearly:
		return MultiplierYearly, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
	}
}

func (f Frequency) String() string { return string(f) }

// Material is the variant of a product being compared.
type Material int

const (
	// MaterialConventional is fossil-based plastic.
	MaterialConventional Material = iota

	// MaterialCompostable is certified compostable bioplastic.
	MaterialCompostable
)

func (m Material) String() string {
	switch m {
	case MaterialConventional:
		return "conventional"
	case MaterialCompostable:
		return "compostable"
	default:
		return fmt.Sprintf("Material(%d)", int(m))
	}
}

// Coefficients are the per-unit impact rates of one product/material pair.
type Coefficients struct {
	// CO2PerUnit is kg CO2 emitted per unit.
	CO2PerUnit float64 `json:"co2PerUnit"`

	// WastePerUnit is kg of persistent waste per unit.
	WastePerUnit float64 `json:"wastePerUnit"`

	// OilPerUnit is litres of oil consumed per unit.
	OilPerUnit float64 `json:"oilPerUnit"`

	// WaterPerUnit is litres of water consumed per unit.
	WaterPerUnit float64 `json:"waterPerUnit"`
}

// Scale multiplies every rate by quantity.
func (c Coefficients) Scale(quantity float64) Totals {
	return Totals{
		CO2:   c.CO2PerUnit * quantity,
		Waste: c.WastePerUnit * quantity,
		Oil:   c.OilPerUnit * quantity,
		Water: c.WaterPerUnit * quantity,
	}
}

// Totals are absolute impact figures for a quantity of product.
type Totals struct {
	CO2   float64 `json:"co2"`
	Waste float64 `json:"waste"`
	Oil   float64 `json:"oil"`
	Water float64 `json:"water"`
}

// Sub returns t - o for each metric. Results may be negative.
func (t Totals) Sub(o Totals) Totals {
	return Totals{
		CO2:   t.CO2 - o.CO2,
		Waste: t.Waste - o.Waste,
		Oil:   t.Oil - o.Oil,
		Water: t.Water - o.Water,
	}
}

// Equivalents translate savings into everyday terms. Negative values mean
// the compostable option costs more of that resource.
type Equivalents struct {
	TreesPlanted   int64 `json:"treesPlanted"`
	PlasticBottles int64 `json:"plasticBottles"`
	CarMiles       int64 `json:"carMiles"`
	ShowerMinutes  int64 `json:"showerMinutes"`
}

// Result is the outcome of one calculation.
type Result struct {
	AnnualQuantity float64     `json:"annualQuantity"`
	Conventional   Totals      `json:"conventional"`
	Compostable    Totals      `json:"compostable"`
	Savings        Totals      `json:"savings"`
	Equivalents    Equivalents `json:"equivalents"`
}
