package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/greenloop/impactcalc/internal/config"
	"github.com/greenloop/impactcalc/internal/impact"
	"github.com/greenloop/impactcalc/internal/tui"
)

// OptionsOutput lists what calculate accepts.
type OptionsOutput struct {
	ProductTypes []impact.ProductType  `json:"productTypes"`
	Frequencies  []FrequencyOption     `json:"frequencies"`
	Factors      map[string]FactorPair `json:"factors"`
}

// FrequencyOption is a frequency and its annual multiplier.
type FrequencyOption struct {
	Name       impact.Frequency `json:"name"`
	Multiplier float64          `json:"multiplier"`
}

// FactorPair holds both coefficient sets of a product type.
type FactorPair struct {
	Conventional impact.Coefficients `json:"conventional"`
	Compostable  impact.Coefficients `json:"compostable"`
}

// NewOptionsCmd creates the options command.
func NewOptionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List product types, frequencies and impact factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := collectOptions()
			if err != nil {
				return err
			}

			switch output {
			case config.FormatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(opts)
			case config.FormatTable:
				printOptions(cmd.OutOrStdout(), opts)
				return nil
			default:
				return usageErrorf("unsupported output format %q (valid: table, json)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.FormatTable, "Output format (table, json)")
	return cmd
}

func collectOptions() (OptionsOutput, error) {
	opts := OptionsOutput{
		ProductTypes: impact.ProductTypes(),
		Factors:      make(map[string]FactorPair),
	}

	for _, f := range impact.Frequencies() {
		mult, err := f.Multiplier()
		if err != nil {
			return OptionsOutput{}, err
		}
		opts.Frequencies = append(opts.Frequencies, FrequencyOption{Name: f, Multiplier: mult})
	}

	for _, p := range opts.ProductTypes {
		conv, err := impact.FactorsFor(p, impact.MaterialConventional)
		if err != nil {
			return OptionsOutput{}, err
		}
		comp, err := impact.FactorsFor(p, impact.MaterialCompostable)
		if err != nil {
			return OptionsOutput{}, err
		}
		opts.Factors[string(p)] = FactorPair{Conventional: conv, Compostable: comp}
	}
	return opts, nil
}

func printOptions(w io.Writer, opts OptionsOutput) {
	fmt.Fprintln(w, tui.HeaderStyle.Render("Product types"))
	for _, p := range opts.ProductTypes {
		f := opts.Factors[string(p)]
		fmt.Fprintf(w, "  %-10s conventional co2=%g waste=%g oil=%g water=%g\n", p,
			f.Conventional.CO2PerUnit, f.Conventional.WastePerUnit, f.Conventional.OilPerUnit, f.Conventional.WaterPerUnit)
		fmt.Fprintf(w, "  %-10s compostable  co2=%g waste=%g oil=%g water=%g\n", "",
			f.Compostable.CO2PerUnit, f.Compostable.WastePerUnit, f.Compostable.OilPerUnit, f.Compostable.WaterPerUnit)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.HeaderStyle.Render("Frequencies"))
	for _, f := range opts.Frequencies {
		fmt.Fprintf(w, "  %-10s x%g per year\n", f.Name, f.Multiplier)
	}
}
