package impact

// Annualisation multipliers: purchases per year for each frequency.
const (
	MultiplierOnce      = 1.0
	MultiplierMonthly   = 12.0
	MultiplierQuarterly = 4.0
	MultiplierYearly    = 1.0
)

// Equivalency conversion ratios applied to savings.
const (
	// KgCO2PerTree is the CO2 a mature tree absorbs in a year.
	KgCO2PerTree = 21.0

	// KgPerPlasticBottle is the mass of a single-use PET bottle (10 g).
	KgPerPlasticBottle = 0.01

	// CarMilesPerKgCO2 is miles driven by an average car per kg CO2
	// (about 0.25 kg CO2 per mile).
	CarMilesPerKgCO2 = 4.0

	// LitresPerShowerMinute is the flow of a standard shower head.
	LitresPerShowerMinute = 10.0
)

// Display thresholds for summaries.
const (
	// LargeNumberThreshold switches summaries to "~X.X million".
	LargeNumberThreshold = 1_000_000

	// BillionThreshold switches summaries to "~X.X billion".
	BillionThreshold = 1_000_000_000
)
