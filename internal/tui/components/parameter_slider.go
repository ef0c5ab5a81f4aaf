package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goalsim/goalsim/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable plan parameter with a visual
// slider bar.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g. "%", " years"
	Format    string // e.g. "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider with sensible rendering defaults.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment raises the value by one step, staying within range.
func (p *ParameterSlider) Increment() {
	p.SetValue(p.Value + p.Step)
}

// Decrement lowers the value by one step, staying within range.
func (p *ParameterSlider) Decrement() {
	p.SetValue(p.Value - p.Step)
}

// SetValue sets the value directly, clamping to min/max.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value's position in the range, 0..1.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the slider as a single line: label, value, bar.
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	valueStr := fmt.Sprintf(p.Format, p.Value) + p.Unit

	return fmt.Sprintf("%s %s\n%s",
		labelStyle.Render(p.Label+":"),
		valueStyle.Render(valueStr),
		p.renderBar())
}

// renderBar draws the [━━●──] track.
func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty := p.Width - filled; empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	minStr := fmt.Sprintf(p.Format, p.Min) + p.Unit
	maxStr := fmt.Sprintf(p.Format, p.Max) + p.Unit
	return bar.String() + " " + rangeStyle.Render(minStr+"–"+maxStr)
}
