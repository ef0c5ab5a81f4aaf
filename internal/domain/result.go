package domain

// Summary holds the distributional statistics reduced from one run's final
// values. Standard deviation is the population convention (divide by n),
// and percentiles use linear interpolation between order statistics; both
// choices are fixed so repeated runs are comparable.
type Summary struct {
	SuccessProbability   float64         `json:"success_probability"` // percent, in [0,100]
	Mean                 float64         `json:"mean"`
	StdDev               float64         `json:"std_dev"`
	Median               float64         `json:"median"`
	Min                  float64         `json:"min"`
	Max                  float64         `json:"max"`
	Percentiles          map[int]float64 `json:"percentiles"` // ranks 5,25,50,75,95
	ShortfallProbability float64         `json:"shortfall_probability"` // percent
	AvgShortfall         float64         `json:"avg_shortfall"`         // mean of target-v over failing trials, 0 if none
}

// SimulationResult is the complete, immutable output of one engine run.
type SimulationResult struct {
	Params         PlanParameters `json:"params"`
	Target         float64        `json:"target"` // goal, inflation-adjusted when requested
	NumSimulations int            `json:"num_simulations"`
	Summary        Summary        `json:"summary"`

	// SamplePaths holds the full monthly trajectory (months+1 points,
	// starting balance included) for the first few trials, kept for
	// visualization only.
	SamplePaths [][]float64 `json:"sample_paths"`

	// FinalValues is the ending balance of every trial, indexed by trial.
	// Omitted from JSON payloads; formatters that need the raw
	// distribution read it directly.
	FinalValues []float64 `json:"-"`
}
