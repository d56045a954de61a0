package impact

import (
	"math"
)

// Compute derives the annual impact of buying quantity units of productType
// at the given frequency, for both materials, and the savings of switching
// to compostable.
//
// Nothing is rounded except the equivalents. Savings keep their sign: a
// metric where compostable is worse yields a negative saving and negative
// equivalent.
//
// Compute returns ErrUnknownProductType or ErrUnknownFrequency for values
// outside the closed sets, and ErrNonFiniteResult if quantity is NaN or
// infinite or the arithmetic overflows.
func Compute(productType ProductType, quantity float64, frequency Frequency) (Result, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return Result{}, ErrNonFiniteResult
	}

	multiplier, err := frequency.Multiplier()
	if err != nil {
		return Result{}, err
	}

	conventional, compostable, err := factorPair(productType)
	if err != nil {
		return Result{}, err
	}

	annual := quantity * multiplier
	result := Result{
		AnnualQuantity: annual,
		Conventional:   conventional.Scale(annual),
		Compostable:    compostable.Scale(annual),
	}
	result.Savings = result.Conventional.Sub(result.Compostable)
	result.Equivalents = EquivalentsFor(result.Savings)

	if !result.finite() {
		return Result{}, ErrNonFiniteResult
	}

	return result, nil
}

// ComputeRaw parses productType and frequency and calls Compute.
func ComputeRaw(productType string, quantity float64, frequency string) (Result, error) {
	p, err := ParseProductType(productType)
	if err != nil {
		return Result{}, err
	}
	f, err := ParseFrequency(frequency)
	if err != nil {
		return Result{}, err
	}
	return Compute(p, quantity, f)
}

// EquivalentsFor converts savings into everyday equivalents.
func EquivalentsFor(savings Totals) Equivalents {
	return Equivalents{
		TreesPlanted:   roundHalfUp(savings.CO2 / KgCO2PerTree),
		PlasticBottles: roundHalfUp(savings.Waste / KgPerPlasticBottle),
		CarMiles:       roundHalfUp(savings.CO2 * CarMilesPerKgCO2),
		ShowerMinutes:  roundHalfUp(savings.Water / LitresPerShowerMinute),
	}
}

// roundHalfUp rounds to the nearest integer with halves going toward
// positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
// Values beyond the int64 range saturate.
func roundHalfUp(v float64) int64 {
	r := math.Floor(v + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(r)
	}
}

func (r Result) finite() bool {
	values := []float64{r.AnnualQuantity}
	for _, t := range []Totals{r.Conventional, r.Compostable, r.Savings} {
		values = append(values, t.CO2, t.Waste, t.Oil, t.Water)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
