package tuistyles

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by the TUI and its components.
var (
	ColorPrimary    = lipgloss.Color("#7D56F4")
	ColorAccent     = lipgloss.Color("#04B575")
	ColorSuccess    = lipgloss.Color("#04B575")
	ColorDanger     = lipgloss.Color("#FF5F87")
	ColorInfo       = lipgloss.Color("#5FAFFF")
	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#626262")
	ColorBorder     = lipgloss.Color("#444444")

	ColorChartLine1 = lipgloss.Color("#5FAFFF")
	ColorChartLine2 = lipgloss.Color("#04B575")
)

// Base styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	SliderThumbStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// ProbabilityStyle colors a success probability using the same bands the
// console report's recommendations use.
func ProbabilityStyle(successProbability float64) lipgloss.Style {
	switch {
	case successProbability >= 80:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	case successProbability >= 60:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	}
}

// FormatCurrency renders a compact dollar amount for axis labels and cards.
func FormatCurrency(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1000000:
		return fmt.Sprintf("$%.2fM", value/1000000)
	case abs >= 1000:
		return fmt.Sprintf("$%.0fK", value/1000)
	default:
		return fmt.Sprintf("$%.0f", value)
	}
}
