package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalsim/goalsim/internal/config"
	"github.com/goalsim/goalsim/internal/domain"
	"github.com/goalsim/goalsim/internal/simulation"
	"github.com/goalsim/goalsim/internal/tui"
)

// defaultPlan seeds the explorer when no plan file is given.
func defaultPlan() domain.PlanParameters {
	return domain.PlanParameters{
		CurrentSavings:         50000,
		MonthlyContribution:    1000,
		Years:                  30,
		AnnualReturn:           0.07,
		AnnualVolatility:       0.15,
		InflationRate:          0.025,
		AdjustGoalForInflation: true,
		GoalAmount:             1500000,
	}
}

func main() {
	plan := defaultPlan()

	if len(os.Args) > 1 {
		parser := config.NewInputParser()
		loaded, err := parser.LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading plan: %v\n", err)
			os.Exit(1)
		}
		plan = *loaded
	}

	model := tui.NewModel(simulation.NewEngine(), plan)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
