package domain

import "math"

// Defaults applied to a plan when the caller leaves tunables unset.
const (
	DefaultNumSimulations = 5000
	DefaultSamplePaths    = 10
)

// PlanParameters describes one savings plan to be simulated. It is built
// once per request, validated, consumed by the engine, and discarded.
// Rates are fractions (0.07 means 7%), not percentage points.
type PlanParameters struct {
	CurrentSavings      float64 `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	Years               int     `yaml:"years" json:"years"`
	AnnualReturn        float64 `yaml:"annual_return" json:"annual_return"`
	AnnualVolatility    float64 `yaml:"annual_volatility" json:"annual_volatility"`
	InflationRate       float64 `yaml:"inflation_rate" json:"inflation_rate"`
	GoalAmount          float64 `yaml:"goal_amount" json:"goal_amount"`

	// AdjustGoalForInflation compounds the goal by the inflation rate over
	// the horizon before comparing. The portfolio side is never deflated.
	AdjustGoalForInflation bool `yaml:"adjust_goal_for_inflation" json:"adjust_goal_for_inflation"`

	// Engine tunables.
	NumSimulations int   `yaml:"num_simulations" json:"num_simulations"`
	SamplePaths    int   `yaml:"sample_paths" json:"sample_paths"`
	Seed           int64 `yaml:"seed" json:"seed"`       // 0 means time-derived
	Workers        int   `yaml:"workers" json:"workers"` // 0 means NumCPU
}

// ApplyDefaults fills in unset tunables.
func (p *PlanParameters) ApplyDefaults() {
	if p.NumSimulations == 0 {
		p.NumSimulations = DefaultNumSimulations
	}
	if p.SamplePaths == 0 {
		p.SamplePaths = DefaultSamplePaths
	}
}

// Validate checks the structural preconditions of the plan. It returns an
// *InvalidParameterError naming the offending field, and is always called
// before any simulation work begins.
func (p *PlanParameters) Validate() error {
	if p.CurrentSavings < 0 {
		return &InvalidParameterError{Field: "current_savings", Reason: "must not be negative"}
	}
	if p.Years < 1 {
		return &InvalidParameterError{Field: "years", Reason: "must be at least 1"}
	}
	if p.AnnualVolatility < 0 {
		return &InvalidParameterError{Field: "annual_volatility", Reason: "must not be negative"}
	}
	if p.InflationRate < 0 {
		return &InvalidParameterError{Field: "inflation_rate", Reason: "must not be negative"}
	}
	if p.GoalAmount <= 0 {
		return &InvalidParameterError{Field: "goal_amount", Reason: "must be positive"}
	}
	if p.NumSimulations < 1 {
		return &InvalidParameterError{Field: "num_simulations", Reason: "must be at least 1"}
	}
	if p.SamplePaths < 0 {
		return &InvalidParameterError{Field: "sample_paths", Reason: "must not be negative"}
	}
	return nil
}

// Derived holds the per-run quantities that are invariant across trials.
// They are computed exactly once so every trial sees identical rounding.
type Derived struct {
	Months            int
	MonthlyReturn     float64
	MonthlyVolatility float64
	Target            float64
}

// Derive computes the trial-invariant quantities for a validated plan.
func (p *PlanParameters) Derive() Derived {
	target := p.GoalAmount
	if p.AdjustGoalForInflation {
		target = p.GoalAmount * math.Pow(1+p.InflationRate, float64(p.Years))
	}
	return Derived{
		Months:            p.Years * 12,
		MonthlyReturn:     math.Pow(1+p.AnnualReturn, 1.0/12.0) - 1,
		MonthlyVolatility: p.AnnualVolatility / math.Sqrt(12),
		Target:            target,
	}
}
