package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/impactcalc/internal/impact"
)

func TestRenderResultTable(t *testing.T) {
	r, err := impact.Compute(impact.ProductBags, 100, impact.FrequencyMonthly)
	require.NoError(t, err)

	out := RenderResultTable(r, 2)
	for _, want := range []string{"METRIC", "CO2 (kg)", "Water (L)", "48.00", "24.00", "-360.00", "960.00"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderEquivalents(t *testing.T) {
	out := RenderEquivalents(impact.Equivalents{
		TreesPlanted:   12,
		PlasticBottles: 18248,
		CarMiles:       1000,
		ShowerMinutes:  -36,
	})

	assert.Contains(t, out, "Trees planted")
	assert.Contains(t, out, "18,248")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "-36")
}

func TestRenderResult(t *testing.T) {
	r, err := impact.Compute(impact.ProductFilms, 50, impact.FrequencyOnce)
	require.NoError(t, err)

	out := RenderResult(impact.ProductFilms, impact.FrequencyOnce, r, 1, 0)
	assert.Contains(t, out, "ENVIRONMENTAL IMPACT")
	assert.Contains(t, out, "films")
	assert.Contains(t, out, "once")
	assert.Contains(t, out, "Plastic bottles")
	assert.Contains(t, out, "75")
}
