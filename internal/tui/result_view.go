// Package tui renders impact results with lipgloss and hosts the
// interactive calculator built on Bubble Tea.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/greenloop/impactcalc/internal/impact"
)

const borderPadding = 2

type metricRow struct {
	label        string
	conventional float64
	compostable  float64
	savings      float64
}

func metricRows(r impact.Result) []metricRow {
	return []metricRow{
		{"CO2 (kg)", r.Conventional.CO2, r.Compostable.CO2, r.Savings.CO2},
		{"Waste (kg)", r.Conventional.Waste, r.Compostable.Waste, r.Savings.Waste},
		{"Oil (L)", r.Conventional.Oil, r.Compostable.Oil, r.Savings.Oil},
		{"Water (L)", r.Conventional.Water, r.Compostable.Water, r.Savings.Water},
	}
}

// RenderResultTable renders the per-metric comparison of r as a bordered
// table. Negative savings are highlighted.
func RenderResultTable(r impact.Result, precision int) string {
	rows := metricRows(r)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("METRIC", "CONVENTIONAL", "COMPOSTABLE", "SAVINGS").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			style := TableCellStyle
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			if col == 3 && row >= 0 && row < len(rows) {
				style = style.Inherit(signedStyle(rows[row].savings))
			}
			return style
		})

	for _, m := range rows {
		t.Row(
			m.label,
			impact.FormatFloat(m.conventional, precision),
			impact.FormatFloat(m.compostable, precision),
			impact.FormatFloat(m.savings, precision),
		)
	}
	return t.Render()
}

// RenderEquivalents renders the rounded equivalents, one per line.
func RenderEquivalents(e impact.Equivalents) string {
	lines := []struct {
		label string
		value int64
	}{
		{"Trees planted:   ", e.TreesPlanted},
		{"Plastic bottles: ", e.PlasticBottles},
		{"Car miles:       ", e.CarMiles},
		{"Shower minutes:  ", e.ShowerMinutes},
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(LabelStyle.Render(l.label))
		b.WriteString(signedStyle(float64(l.value)).Render(impact.FormatNumber(l.value)))
	}
	return b.String()
}

// RenderResult renders a full report: header, comparison table,
// equivalents and summary, boxed to width. A width of 0 leaves the box
// unconstrained.
func RenderResult(p impact.ProductType, f impact.Frequency, r impact.Result, precision, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ENVIRONMENTAL IMPACT"))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Product: "))
	content.WriteString(ValueStyle.Render(string(p)))
	content.WriteString(LabelStyle.Render("    Frequency: "))
	content.WriteString(ValueStyle.Render(string(f)))
	content.WriteString(LabelStyle.Render("    Units per year: "))
	content.WriteString(ValueStyle.Render(impact.FormatFloat(r.AnnualQuantity, precision)))
	content.WriteString("\n\n")

	content.WriteString(RenderResultTable(r, precision))
	content.WriteString("\n\n")
	content.WriteString(RenderEquivalents(r.Equivalents))
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render(impact.Summarize(r).DisplayText))

	box := BoxStyle
	if width > borderPadding {
		box = box.Width(width - borderPadding)
	}
	return box.Render(content.String())
}
