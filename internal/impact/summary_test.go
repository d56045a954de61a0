package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{18248, "18,248"},
		{-1234, "-1,234"},
		{1234567890, "1,234,567,890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.n))
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{"integer precision", 18248.56, 0, "18,249"},
		{"one decimal", 781.25, 1, "781.2"},
		{"two decimals with separator", 1234.567, 2, "1,234.57"},
		{"negative", -360, 1, "-360.0"},
		{"small", 0.75, 2, "0.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999_999))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~2.0 billion", FormatLarge(2_000_000_000))
	assert.Equal(t, "-~3.0 million", FormatLarge(-3_000_000))
}

func TestSummarize(t *testing.T) {
	r, err := Compute(ProductBags, 100, FrequencyMonthly)
	require.NoError(t, err)

	s := Summarize(r)

	assert.Contains(t, s.DisplayText, "saves ~24.0 kg CO2 a year")
	assert.Contains(t, s.DisplayText, "~1 tree planted")
	assert.Contains(t, s.DisplayText, "~96 car miles")
	assert.Contains(t, s.DisplayText, "~600 bottles")
	assert.Contains(t, s.DisplayText, "more water")
	assert.Equal(t, "(≈ 24.0 kg CO2, 1 tree, 96 mi)", s.CompactText)
	require.Len(t, s.Tradeoffs, 1)
	assert.Contains(t, s.Tradeoffs[0], "~360.0 L more water (~36 shower minutes)")
}

func TestSummarize_NoCO2Savings(t *testing.T) {
	r, err := Compute(ProductBags, -10, FrequencyOnce)
	require.NoError(t, err)

	s := Summarize(r)

	assert.Contains(t, s.DisplayText, "changes CO2 by -0.2 kg")
	assert.NotContains(t, s.DisplayText, "bottles")
	require.Len(t, s.Tradeoffs, 1, "water flips to a saving, oil flips to a cost")
	assert.Equal(t, "uses ~0.2 L more oil", s.Tradeoffs[0])
}
