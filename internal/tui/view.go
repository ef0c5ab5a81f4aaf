package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goalsim/goalsim/internal/tui/components"
	"github.com/goalsim/goalsim/internal/tui/tuistyles"
)

// View renders the plan explorer: sliders on the left, results on the
// right, status bar below.
func (m Model) View() string {
	title := tuistyles.TitleStyle.Render("goalsim — savings plan explorer")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderParameters(),
		"  ",
		m.renderResults(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", m.renderStatusBar())
}

func (m Model) renderParameters() string {
	var content strings.Builder
	for _, slider := range m.sliders {
		content.WriteString(slider.Render())
		content.WriteString("\n\n")
	}
	return tuistyles.BorderStyle.Render(strings.TrimRight(content.String(), "\n"))
}

func (m Model) renderResults() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("error: " + m.err.Error())
	}
	if m.result == nil || m.running {
		return tuistyles.InfoStyle.Render("Running simulations...")
	}

	s := m.result.Summary

	probability := components.NewMetricCard(
		"Success Probability",
		fmt.Sprintf("%.1f%%", s.SuccessProbability)).
		WithValueStyle(tuistyles.ProbabilityStyle(s.SuccessProbability))
	median := components.NewMetricCard("Median", tuistyles.FormatCurrency(s.Median))
	mean := components.NewMetricCard("Mean", tuistyles.FormatCurrency(s.Mean))
	target := components.NewMetricCard("Target", tuistyles.FormatCurrency(m.result.Target))

	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		probability.Render(),
		median.Render(),
		mean.Render(),
		target.Render(),
	)

	chart := components.NewASCIIChart("Sample Paths").WithSize(70, 12)
	for i, path := range m.result.SamplePaths {
		color := tuistyles.ColorChartLine1
		if i == 0 {
			color = tuistyles.ColorChartLine2
		}
		chart.AddSeries(fmt.Sprintf("trial %d", i), path, color)
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, "", chart.Render())
}

func (m Model) renderStatusBar() string {
	bindings := []struct{ keys, desc string }{
		{"↑↓", "select"},
		{"←→", "adjust"},
		{"enter", "run"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts,
			tuistyles.StatusKeyStyle.Render(b.keys)+" "+tuistyles.StatusBarStyle.Render(b.desc))
	}
	return strings.Join(parts, tuistyles.StatusBarStyle.Render(" • "))
}
