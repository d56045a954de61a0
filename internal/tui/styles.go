package tui

import "github.com/charmbracelet/lipgloss"

// Colour palette.
const (
	ColorSaving  = lipgloss.Color("42")  // green
	ColorCost    = lipgloss.Color("214") // amber
	ColorError   = lipgloss.Color("196")
	ColorHeader  = lipgloss.Color("99")
	ColorSubtle  = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("240")
	ColorFocused = lipgloss.Color("229")
	ColorFocusBg = lipgloss.Color("57")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorSubtle)
	ValueStyle    = lipgloss.NewStyle().Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorSubtle).Italic(true)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorSubtle)
	SavingStyle   = lipgloss.NewStyle().Foreground(ColorSaving)
	CostStyle     = lipgloss.NewStyle().Foreground(ColorCost)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorFocused).Background(ColorFocusBg).Padding(0, 1)
	OptionStyle   = lipgloss.NewStyle().Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Padding(0, 1)
	TableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// signedStyle colours savings green and losses amber.
func signedStyle(v float64) lipgloss.Style {
	if v < 0 {
		return CostStyle
	}
	return SavingStyle
}
