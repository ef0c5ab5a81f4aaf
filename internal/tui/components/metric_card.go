package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goalsim/goalsim/internal/tui/tuistyles"
)

// MetricCard displays a single labeled metric in a bordered box.
type MetricCard struct {
	Label      string
	Value      string
	ValueStyle lipgloss.Style
	Width      int
}

// NewMetricCard creates a metric card.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label:      label,
		Value:      value,
		ValueStyle: tuistyles.MetricValueStyle,
		Width:      22,
	}
}

// WithValueStyle overrides the value styling, e.g. to color a probability.
func (m *MetricCard) WithValueStyle(style lipgloss.Style) *MetricCard {
	m.ValueStyle = style
	return m
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled card.
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := m.ValueStyle.Render(m.Value)

	return tuistyles.BorderStyle.Width(m.Width).Render(
		lipgloss.JoinVertical(lipgloss.Left, label, value))
}
