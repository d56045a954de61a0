package impact

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTolerance = 1e-9

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		productType ProductType
		quantity    float64
		frequency   Frequency
		check       func(t *testing.T, r Result)
	}{
		{
			name:        "bags 100 monthly",
			productType: ProductBags,
			quantity:    100,
			frequency:   FrequencyMonthly,
			check: func(t *testing.T, r Result) {
				assert.InDelta(t, 1200.0, r.AnnualQuantity, floatTolerance)
				assert.InDelta(t, 48.0, r.Conventional.CO2, floatTolerance) // 1200 * 0.04
				assert.InDelta(t, 24.0, r.Compostable.CO2, floatTolerance)  // 1200 * 0.02
				assert.InDelta(t, 24.0, r.Savings.CO2, floatTolerance)
				assert.Equal(t, int64(1), r.Equivalents.TreesPlanted) // round(24/21)
				assert.Equal(t, int64(96), r.Equivalents.CarMiles)    // round(24*4)
			},
		},
		{
			name:        "films 50 once",
			productType: ProductFilms,
			quantity:    50,
			frequency:   FrequencyOnce,
			check: func(t *testing.T, r Result) {
				assert.InDelta(t, 50.0, r.AnnualQuantity, floatTolerance)
				assert.InDelta(t, 0.75, r.Conventional.Waste, floatTolerance) // 50 * 0.015
				assert.InDelta(t, 0.0, r.Compostable.Waste, floatTolerance)
				assert.InDelta(t, 0.75, r.Savings.Waste, floatTolerance)
				assert.Equal(t, int64(75), r.Equivalents.PlasticBottles) // round(0.75/0.01)
			},
		},
		{
			name:        "packaging 10 quarterly",
			productType: ProductPackaging,
			quantity:    10,
			frequency:   FrequencyQuarterly,
			check: func(t *testing.T, r Result) {
				assert.InDelta(t, 40.0, r.AnnualQuantity, floatTolerance)
				assert.InDelta(t, 4.0, r.Conventional.CO2, floatTolerance)
				assert.InDelta(t, 2.0, r.Compostable.CO2, floatTolerance)
				assert.InDelta(t, 2.0, r.Conventional.Oil, floatTolerance)
				assert.InDelta(t, 2.0, r.Savings.Oil, floatTolerance)
				assert.InDelta(t, -12.0, r.Savings.Water, floatTolerance) // 48 - 60
				assert.Equal(t, int64(-1), r.Equivalents.ShowerMinutes)   // round(-1.2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.productType, tt.quantity, tt.frequency)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestCompute_Annualization(t *testing.T) {
	const q = 37.5
	for _, p := range ProductTypes() {
		t.Run(p.String(), func(t *testing.T) {
			once, err := Compute(p, q, FrequencyOnce)
			require.NoError(t, err)
			yearly, err := Compute(p, q, FrequencyYearly)
			require.NoError(t, err)
			monthly, err := Compute(p, q, FrequencyMonthly)
			require.NoError(t, err)
			quarterly, err := Compute(p, q, FrequencyQuarterly)
			require.NoError(t, err)

			assert.InDelta(t, q, once.AnnualQuantity, floatTolerance)
			assert.InDelta(t, q, yearly.AnnualQuantity, floatTolerance)
			assert.InDelta(t, 12*q, monthly.AnnualQuantity, floatTolerance)
			assert.InDelta(t, 4*q, quarterly.AnnualQuantity, floatTolerance)
			assert.Equal(t, once, yearly)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	for _, p := range ProductTypes() {
		for _, f := range Frequencies() {
			first, err := Compute(p, 123.456, f)
			require.NoError(t, err)
			second, err := Compute(p, 123.456, f)
			require.NoError(t, err)
			assert.Equal(t, first, second, "%s/%s", p, f)
		}
	}
}

func TestCompute_Linearity(t *testing.T) {
	scales := []float64{0.5, 2, 3, 10, 1000}
	for _, p := range ProductTypes() {
		for _, f := range Frequencies() {
			base, err := Compute(p, 7, f)
			require.NoError(t, err)
			for _, k := range scales {
				scaled, err := Compute(p, 7*k, f)
				require.NoError(t, err)
				assert.InDelta(t, k*base.AnnualQuantity, scaled.AnnualQuantity, 1e-6)
				assert.InDelta(t, k*base.Savings.CO2, scaled.Savings.CO2, 1e-6)
				assert.InDelta(t, k*base.Conventional.Water, scaled.Conventional.Water, 1e-6)
			}
		}
	}
}

func TestCompute_WaterSavingsNegative(t *testing.T) {
	for _, p := range ProductTypes() {
		t.Run(p.String(), func(t *testing.T) {
			got, err := Compute(p, 1000, FrequencyYearly)
			require.NoError(t, err)
			assert.Negative(t, got.Savings.Water)
			assert.Negative(t, got.Equivalents.ShowerMinutes)
			assert.Positive(t, got.Savings.CO2)
		})
	}
}

func TestCompute_SavingsIsDifference(t *testing.T) {
	got, err := Compute(ProductPackaging, 250, FrequencyMonthly)
	require.NoError(t, err)

	assert.InDelta(t, got.Conventional.CO2-got.Compostable.CO2, got.Savings.CO2, floatTolerance)
	assert.InDelta(t, got.Conventional.Waste-got.Compostable.Waste, got.Savings.Waste, floatTolerance)
	assert.InDelta(t, got.Conventional.Oil-got.Compostable.Oil, got.Savings.Oil, floatTolerance)
	assert.InDelta(t, got.Conventional.Water-got.Compostable.Water, got.Savings.Water, floatTolerance)
}

func TestCompute_NegativeQuantityKeepsSign(t *testing.T) {
	got, err := Compute(ProductBags, -100, FrequencyOnce)
	require.NoError(t, err)

	assert.InDelta(t, -100.0, got.AnnualQuantity, floatTolerance)
	assert.InDelta(t, -2.0, got.Savings.CO2, floatTolerance)
	assert.Equal(t, int64(-8), got.Equivalents.CarMiles)
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name        string
		productType ProductType
		quantity    float64
		frequency   Frequency
		wantErr     error
	}{
		{"unknown product", ProductType("bottles"), 10, FrequencyOnce, ErrUnknownProductType},
		{"empty product", ProductType(""), 10, FrequencyOnce, ErrUnknownProductType},
		{"unknown frequency", ProductBags, 10, Frequency("weekly"), ErrUnknownFrequency},
		{"NaN quantity", ProductBags, math.NaN(), FrequencyOnce, ErrNonFiniteResult},
		{"infinite quantity", ProductBags, math.Inf(1), FrequencyOnce, ErrNonFiniteResult},
		{"overflowing quantity", ProductBags, math.MaxFloat64, FrequencyMonthly, ErrNonFiniteResult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.productType, tt.quantity, tt.frequency)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Result{}, got)
		})
	}
}

func TestComputeRaw(t *testing.T) {
	got, err := ComputeRaw("bags", 100, "monthly")
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, got.AnnualQuantity, floatTolerance)

	_, err = ComputeRaw("Bags", 100, "monthly")
	assert.ErrorIs(t, err, ErrUnknownProductType)

	_, err = ComputeRaw("bags", 100, "daily")
	assert.ErrorIs(t, err, ErrUnknownFrequency)
}

func TestEquivalentsFor(t *testing.T) {
	got := EquivalentsFor(Totals{CO2: 42, Waste: 1.5, Water: -25})

	assert.Equal(t, int64(2), got.TreesPlanted)     // 42 / 21
	assert.Equal(t, int64(150), got.PlasticBottles) // 1.5 / 0.01
	assert.Equal(t, int64(168), got.CarMiles)       // 42 * 4
	assert.Equal(t, int64(-2), got.ShowerMinutes)   // -2.5 rounds toward +inf
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-2.5, -2},
		{-2.51, -3},
		{math.NaN(), 0},
		{1e300, math.MaxInt64},
		{-1e300, math.MinInt64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in), "roundHalfUp(%v)", tt.in)
	}
}
