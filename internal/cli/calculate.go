package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/greenloop/impactcalc/internal/config"
	"github.com/greenloop/impactcalc/internal/impact"
	"github.com/greenloop/impactcalc/internal/tui"
)

// CalculateParams holds the flags of the calculate command.
type CalculateParams struct {
	ProductType string
	Quantity    float64
	Frequency   string
	Output      string
	Precision   int
	Interactive bool
}

// CalculationOutput is the JSON and NDJSON document written by calculate.
type CalculationOutput struct {
	ProductType impact.ProductType `json:"productType"`
	Quantity    float64            `json:"quantity"`
	Frequency   impact.Frequency   `json:"frequency"`
	impact.Result
	Summary impact.Summary `json:"summary"`
}

// NewCalculateCmd creates the calculate command.
func NewCalculateCmd() *cobra.Command {
	var params CalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the impact of switching to compostable materials",
		Long: `Calculates annual CO2, waste, oil and water for conventional and compostable
versions of a product, the savings of switching, and relatable equivalents.`,
		Example: `  impactcalc calculate --product-type bags --quantity 100 --frequency monthly
  impactcalc calculate -p films -q 50 -f once --output ndjson
  impactcalc calculate --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				params.Output = config.GetDefaultOutputFormat()
			}
			if !cmd.Flags().Changed("precision") {
				params.Precision = config.GetGlobalConfig().Output.Precision
			}
			if params.Interactive {
				return runInteractiveCalculate(cmd, params)
			}
			return runCalculate(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.ProductType, "product-type", "p", "", "product type (bags, packaging, films)")
	cmd.Flags().Float64VarP(&params.Quantity, "quantity", "q", 0, "units bought per purchase")
	cmd.Flags().StringVarP(&params.Frequency, "frequency", "f", "",
		"purchase frequency (once, monthly, quarterly, yearly)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", config.FormatTable, "Output format (table, json, ndjson)")
	cmd.Flags().IntVar(&params.Precision, "precision", config.DefaultPrecision, "decimal places in table output")
	cmd.Flags().BoolVarP(&params.Interactive, "interactive", "i", false, "Launch interactive TUI mode")

	return cmd
}

// ValidateCalculateParams checks the flags of a non-interactive run and
// returns the parsed enums.
func ValidateCalculateParams(params CalculateParams) (impact.ProductType, impact.Frequency, error) {
	if params.ProductType == "" || params.Frequency == "" || params.Quantity == 0 {
		return "", "", usageErrorf("--product-type, --quantity and --frequency are required")
	}

	p, err := impact.ParseProductType(params.ProductType)
	if err != nil {
		return "", "", &UsageError{Err: fmt.Errorf("%w (valid: %s)", err, joinValues(impact.ProductTypes()))}
	}
	f, err := impact.ParseFrequency(params.Frequency)
	if err != nil {
		return "", "", &UsageError{Err: fmt.Errorf("%w (valid: %s)", err, joinValues(impact.Frequencies()))}
	}

	switch params.Output {
	case config.FormatTable, config.FormatJSON, config.FormatNDJSON:
	default:
		return "", "", usageErrorf("unsupported output format %q (valid: table, json, ndjson)", params.Output)
	}
	if params.Precision < 0 {
		return "", "", usageErrorf("--precision must not be negative")
	}
	return p, f, nil
}

func runCalculate(cmd *cobra.Command, params CalculateParams) error {
	p, f, err := ValidateCalculateParams(params)
	if err != nil {
		return err
	}

	result, err := impact.Compute(p, params.Quantity, f)
	if err != nil {
		return fmt.Errorf("calculating impact: %w", err)
	}

	logger.Debug().Ctx(cmd.Context()).
		Str("product_type", string(p)).
		Str("frequency", string(f)).
		Float64("quantity", params.Quantity).
		Float64("co2_saved", result.Savings.CO2).
		Msg("impact calculated")

	return renderCalculation(cmd.OutOrStdout(), params.Output, params.Precision, CalculationOutput{
		ProductType: p,
		Quantity:    params.Quantity,
		Frequency:   f,
		Result:      result,
		Summary:     impact.Summarize(result),
	})
}

// renderCalculation writes out in the requested format.
func renderCalculation(w io.Writer, format string, precision int, out CalculationOutput) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case config.FormatNDJSON:
		return json.NewEncoder(w).Encode(out)
	default:
		_, err := fmt.Fprintln(w, tui.RenderResult(out.ProductType, out.Frequency, out.Result, precision, 0))
		return err
	}
}

func runInteractiveCalculate(cmd *cobra.Command, params CalculateParams) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("interactive mode requires a terminal")
	}

	quantity := ""
	if params.Quantity != 0 {
		quantity = strconv.FormatFloat(params.Quantity, 'f', -1, 64)
	}
	// Unknown values fall back to the first option in the TUI.
	m := tui.NewCalculatorModel(
		impact.ProductType(params.ProductType), impact.Frequency(params.Frequency), quantity, params.Precision)

	_, err := tui.RunCalculator(cmd.Context(), m, tea.WithAltScreen())
	return err
}

func joinValues[T ~string](values []T) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += string(v)
	}
	return out
}
