package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/greenloop/impactcalc/internal/impact"
)

// Field identifies the focused input of the calculator.
type Field int

const (
	// FieldProductType selects the product category.
	FieldProductType Field = iota
	// FieldFrequency selects the purchase frequency.
	FieldFrequency
	// FieldQuantity is the free-text quantity input.
	FieldQuantity

	fieldCount = 3
)

const (
	calculatorDefaultWidth = 80
	quantityCharLimit      = 24
)

var errQuantityRequired = errors.New("enter a quantity")

// CalculatorModel is the Bubble Tea model for the interactive calculator.
// The result is recomputed on every change.
type CalculatorModel struct {
	productTypes []impact.ProductType
	frequencies  []impact.Frequency
	productIdx   int
	frequencyIdx int
	quantity     textinput.Model
	focus        Field

	result    impact.Result
	hasResult bool
	err       error

	precision int
	width     int
	quitting  bool
}

// NewCalculatorModel creates a model preselected with the given values.
// Zero values select the first option and an empty quantity.
func NewCalculatorModel(p impact.ProductType, f impact.Frequency, quantity string, precision int) *CalculatorModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. 100"
	ti.CharLimit = quantityCharLimit
	ti.Width = quantityCharLimit
	ti.Prompt = ""
	ti.SetValue(quantity)

	m := &CalculatorModel{
		productTypes: impact.ProductTypes(),
		frequencies:  impact.Frequencies(),
		quantity:     ti,
		focus:        FieldQuantity,
		precision:    precision,
		width:        calculatorDefaultWidth,
	}
	for i, v := range m.productTypes {
		if v == p {
			m.productIdx = i
		}
	}
	for i, v := range m.frequencies {
		if v == f {
			m.frequencyIdx = i
		}
	}
	m.quantity.Focus()
	m.recompute()
	return m
}

// Init starts the cursor blink.
func (m *CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.focus == FieldQuantity {
		var cmd tea.Cmd
		m.quantity, cmd = m.quantity.Update(msg)
		return m, cmd
	}
	return m, nil
}

//nolint:exhaustive // Only keys the calculator reacts to.
func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case tea.KeyLeft, tea.KeyRight:
		if m.focus != FieldQuantity {
			step := 1
			if msg.Type == tea.KeyLeft {
				step = -1
			}
			m.cycle(step)
			m.recompute()
			return m, nil
		}

	case tea.KeyRunes:
		if m.focus != FieldQuantity && string(msg.Runes) == "q" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	if m.focus != FieldQuantity {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.quantity.Value()
	m.quantity, cmd = m.quantity.Update(msg)
	if m.quantity.Value() != before {
		m.recompute()
	}
	return m, cmd
}

func (m *CalculatorModel) setFocus(f Field) {
	m.focus = f
	if f == FieldQuantity {
		m.quantity.Focus()
	} else {
		m.quantity.Blur()
	}
}

func (m *CalculatorModel) cycle(step int) {
	switch m.focus {
	case FieldProductType:
		m.productIdx = (m.productIdx + step + len(m.productTypes)) % len(m.productTypes)
	case FieldFrequency:
		m.frequencyIdx = (m.frequencyIdx + step + len(m.frequencies)) % len(m.frequencies)
	case FieldQuantity:
	}
}

func (m *CalculatorModel) recompute() {
	m.hasResult = false
	m.err = nil

	raw := strings.TrimSpace(m.quantity.Value())
	if raw == "" {
		m.err = errQuantityRequired
		return
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.err = fmt.Errorf("quantity %q is not a number", raw)
		return
	}

	result, err := impact.Compute(m.ProductType(), q, m.Frequency())
	if err != nil {
		m.err = err
		return
	}
	m.result = result
	m.hasResult = true
}

// ProductType returns the selected product type.
func (m *CalculatorModel) ProductType() impact.ProductType {
	return m.productTypes[m.productIdx]
}

// Frequency returns the selected frequency.
func (m *CalculatorModel) Frequency() impact.Frequency {
	return m.frequencies[m.frequencyIdx]
}

// Result returns the latest result and whether the inputs produced one.
func (m *CalculatorModel) Result() (impact.Result, bool) {
	return m.result, m.hasResult
}

// Err returns why there is no result, if any.
func (m *CalculatorModel) Err() error {
	return m.err
}

// View renders the form and the latest result.
func (m *CalculatorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("IMPACT CALCULATOR"))
	b.WriteString("\n\n")
	b.WriteString(m.renderSelector("Product type", FieldProductType, enumStrings(m.productTypes), m.productIdx))
	b.WriteString("\n")
	b.WriteString(m.renderSelector("Frequency   ", FieldFrequency, enumStrings(m.frequencies), m.frequencyIdx))
	b.WriteString("\n")
	b.WriteString(m.renderLabel("Quantity    ", FieldQuantity))
	b.WriteString(" ")
	b.WriteString(m.quantity.View())
	b.WriteString("\n\n")

	if m.hasResult {
		b.WriteString(RenderResult(m.ProductType(), m.Frequency(), m.result, m.precision, m.width))
	} else if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("tab/↑↓ move • ←/→ change • esc quit"))
	return b.String()
}

func (m *CalculatorModel) renderLabel(label string, f Field) string {
	if m.focus == f {
		return ValueStyle.Render("> " + label)
	}
	return LabelStyle.Render("  " + label)
}

func (m *CalculatorModel) renderSelector(label string, f Field, options []string, selected int) string {
	var b strings.Builder
	b.WriteString(m.renderLabel(label, f))
	for i, opt := range options {
		if i == selected {
			b.WriteString(SelectedStyle.Render(opt))
		} else {
			b.WriteString(OptionStyle.Render(opt))
		}
	}
	return b.String()
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// RunCalculator runs the interactive calculator until the user quits and
// returns the final model.
func RunCalculator(ctx context.Context, m *CalculatorModel, opts ...tea.ProgramOption) (*CalculatorModel, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("running calculator: %w", err)
	}
	fm, ok := final.(*CalculatorModel)
	if !ok {
		return nil, errors.New("unexpected model type")
	}
	return fm, nil
}
