package impact

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Summary is the prose rendering of a Result.
type Summary struct {
	// DisplayText is the full sentence used by the CLI and TUI.
	// Example: "Switching to compostable saves ~24 kg CO2 a year, equivalent to
	// ~1 tree planted or ~96 car miles."
	DisplayText string `json:"displayText"`

	// CompactText is the short form for narrow outputs.
	// Example: "(≈ 24 kg CO2, 1 tree, 96 mi)"
	CompactText string `json:"compactText"`

	// Tradeoffs lists metrics where compostable is worse.
	Tradeoffs []string `json:"tradeoffs,omitempty"`
}

// Summarize renders r as human-readable text.
func Summarize(r Result) Summary {
	co2 := FormatFloat(r.Savings.CO2, 1)
	trees := FormatLarge(float64(r.Equivalents.TreesPlanted))
	miles := FormatLarge(float64(r.Equivalents.CarMiles))

	var display string
	if r.Savings.CO2 > 0 {
		display = fmt.Sprintf(
			"Switching to compostable saves ~%s kg CO2 a year, equivalent to ~%s %s planted or ~%s car miles.",
			co2, trees, plural(r.Equivalents.TreesPlanted, "tree", "trees"), miles)
	} else {
		display = fmt.Sprintf("Switching to compostable changes CO2 by %s kg a year.", co2)
	}

	if r.Equivalents.PlasticBottles > 0 {
		display += fmt.Sprintf(" It keeps ~%s kg of plastic waste out of landfill (~%s bottles).",
			FormatFloat(r.Savings.Waste, 2), FormatLarge(float64(r.Equivalents.PlasticBottles)))
	}

	var tradeoffs []string
	if r.Savings.Water < 0 {
		tradeoffs = append(tradeoffs, fmt.Sprintf("uses ~%s L more water (~%s shower minutes)",
			FormatFloat(-r.Savings.Water, 1), FormatNumber(-r.Equivalents.ShowerMinutes)))
	}
	if r.Savings.Oil < 0 {
		tradeoffs = append(tradeoffs, fmt.Sprintf("uses ~%s L more oil", FormatFloat(-r.Savings.Oil, 1)))
	}
	if len(tradeoffs) > 0 {
		display += " Compostable " + strings.Join(tradeoffs, " and ") + "."
	}

	compact := fmt.Sprintf("(≈ %s kg CO2, %s %s, %s mi)",
		co2, FormatNumber(r.Equivalents.TreesPlanted),
		plural(r.Equivalents.TreesPlanted, "tree", "trees"), FormatNumber(r.Equivalents.CarMiles))

	return Summary{DisplayText: display, CompactText: compact, Tradeoffs: tradeoffs}
}

func plural(n int64, one, many string) string {
	if n == 1 || n == -1 {
		return one
	}
	return many
}

// FormatNumber formats an integer with thousands separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f rounded to precision decimals with thousands
// separators. Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	return sign + FormatNumber(n) + "." + fracPart
}

// FormatLarge abbreviates values of a million or more as "~X.X million" or
// "~X.X billion" and otherwise formats them like FormatNumber.
func FormatLarge(n float64) string {
	abs := math.Abs(n)
	sign := ""
	if n < 0 {
		sign = "-"
	}

	switch {
	case abs >= BillionThreshold:
		return fmt.Sprintf("%s~%.1f billion", sign, abs/BillionThreshold)
	case abs >= LargeNumberThreshold:
		return fmt.Sprintf("%s~%.1f million", sign, abs/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}
