package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalsim/goalsim/internal/domain"
	"github.com/goalsim/goalsim/internal/simulation"
	"github.com/goalsim/goalsim/internal/tui/components"
)

// Slider indexes; order matches the on-screen list.
const (
	sliderSavings = iota
	sliderContribution
	sliderYears
	sliderReturn
	sliderVolatility
	sliderInflation
	sliderGoal
	sliderSimulations
	sliderCount
)

// KeyMap defines the key bindings for the plan explorer.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Run   key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous parameter")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next parameter")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Run:   key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter/r", "run simulation")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the entire application state: the plan being edited, the
// sliders that edit it, and the latest simulation result.
type Model struct {
	engine *simulation.Engine
	params domain.PlanParameters

	sliders [sliderCount]*components.ParameterSlider
	focused int

	result  *domain.SimulationResult
	running bool
	err     error

	keys   KeyMap
	width  int
	height int
}

// NewModel creates the application model seeded with a starting plan.
func NewModel(engine *simulation.Engine, params domain.PlanParameters) Model {
	params.ApplyDefaults()
	m := Model{
		engine: engine,
		params: params,
		keys:   DefaultKeyMap(),
		width:  100,
		height: 30,
	}
	m.buildSliders()
	return m
}

// buildSliders creates one slider per plan parameter. Rate sliders work in
// percentage points for readability and are converted back on read.
func (m *Model) buildSliders() {
	p := m.params
	m.sliders[sliderSavings] = components.NewParameterSlider("Current Savings", p.CurrentSavings, 0, 1000000, 5000).
		WithFormat("$%.0f")
	m.sliders[sliderContribution] = components.NewParameterSlider("Monthly Contribution", p.MonthlyContribution, 0, 10000, 100).
		WithFormat("$%.0f")
	m.sliders[sliderYears] = components.NewParameterSlider("Years", float64(p.Years), 1, 50, 1).
		WithFormat("%.0f")
	m.sliders[sliderReturn] = components.NewParameterSlider("Expected Return", p.AnnualReturn*100, 0, 15, 0.25).
		WithFormat("%.2f").WithUnit("%")
	m.sliders[sliderVolatility] = components.NewParameterSlider("Volatility", p.AnnualVolatility*100, 0, 30, 0.5).
		WithFormat("%.1f").WithUnit("%")
	m.sliders[sliderInflation] = components.NewParameterSlider("Inflation Rate", p.InflationRate*100, 0, 6, 0.25).
		WithFormat("%.2f").WithUnit("%")
	m.sliders[sliderGoal] = components.NewParameterSlider("Goal Amount", p.GoalAmount, 50000, 5000000, 50000).
		WithFormat("$%.0f")
	m.sliders[sliderSimulations] = components.NewParameterSlider("Simulations", float64(p.NumSimulations), 1000, 20000, 1000).
		WithFormat("%.0f")
	m.sliders[m.focused].IsFocused = true
}

// planFromSliders reads the slider values back into plan parameters.
func (m *Model) planFromSliders() domain.PlanParameters {
	p := m.params
	p.CurrentSavings = m.sliders[sliderSavings].Value
	p.MonthlyContribution = m.sliders[sliderContribution].Value
	p.Years = int(m.sliders[sliderYears].Value)
	p.AnnualReturn = m.sliders[sliderReturn].Value / 100
	p.AnnualVolatility = m.sliders[sliderVolatility].Value / 100
	p.InflationRate = m.sliders[sliderInflation].Value / 100
	p.GoalAmount = m.sliders[sliderGoal].Value
	p.NumSimulations = int(m.sliders[sliderSimulations].Value)
	return p
}

// Init kicks off the first simulation so the screen opens with results.
func (m Model) Init() tea.Cmd {
	return runSimulationCmd(m.engine, m.params)
}

// runSimulationCmd runs the engine off the update loop.
func runSimulationCmd(engine *simulation.Engine, params domain.PlanParameters) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Run(context.Background(), params)
		return SimulationCompleteMsg{Result: result, Err: err}
	}
}
