package simulation

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/goalsim/goalsim/internal/domain"
)

// trialBlockSize is the number of trials sharing one random stream. Blocks
// are the unit of work handed to workers; each block seeds its own
// generator from the run seed, so results depend only on the seed and
// never on worker count or scheduling.
const trialBlockSize = 256

// Engine runs Monte Carlo savings-plan simulations. The zero value is not
// usable; construct with NewEngine.
type Engine struct {
	Workers int // 0 means runtime.NumCPU()
	Log     Logger
}

// NewEngine creates an engine with default worker count and no logging.
func NewEngine() *Engine {
	return &Engine{Log: NopLogger{}}
}

// Run validates the plan, simulates every trial and reduces the ending
// balances into a SimulationResult. Validation happens eagerly; no trial
// runs for an invalid plan, and no partial result is ever returned.
func (e *Engine) Run(ctx context.Context, params domain.PlanParameters) (*domain.SimulationResult, error) {
	params.ApplyDefaults()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	d := params.Derive()
	e.Log.Debugf("running %d trials over %d months (target %.2f)", params.NumSimulations, d.Months, d.Target)

	start := time.Now()
	finals, paths, err := e.simulate(ctx, params, d)
	if err != nil {
		return nil, err
	}

	summary, err := Aggregate(finals, d.Target)
	if err != nil {
		return nil, err
	}
	e.Log.Infof("simulation finished in %s: success %.1f%%", time.Since(start).Round(time.Millisecond), summary.SuccessProbability)

	return &domain.SimulationResult{
		Params:         params,
		Target:         d.Target,
		NumSimulations: params.NumSimulations,
		Summary:        summary,
		SamplePaths:    paths,
		FinalValues:    finals,
	}, nil
}

// simulate produces one ending balance per trial, plus the full monthly
// path for the first SamplePaths trials. Trials are partitioned into
// contiguous blocks; workers pull block indices from a channel and write
// into disjoint slice ranges, so no locking is needed beyond the join.
func (e *Engine) simulate(ctx context.Context, p domain.PlanParameters, d domain.Derived) ([]float64, [][]float64, error) {
	n := p.NumSimulations
	pathCount := p.SamplePaths
	if pathCount > n {
		pathCount = n
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	finals := make([]float64, n)
	paths := make([][]float64, pathCount)

	numBlocks := (n + trialBlockSize - 1) / trialBlockSize
	blocks := make(chan int, numBlocks)
	for b := 0; b < numBlocks; b++ {
		blocks <- b
	}
	close(blocks)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range blocks {
				if ctx.Err() != nil {
					return
				}
				rng := rand.New(rand.NewSource(seed + int64(b)))
				lo := b * trialBlockSize
				hi := lo + trialBlockSize
				if hi > n {
					hi = n
				}
				for i := lo; i < hi; i++ {
					final, path := runTrial(rng, p, d, i < pathCount)
					finals[i] = final
					if path != nil {
						paths[i] = path
					}
				}
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return finals, paths, nil
}

// runTrial walks one portfolio from the starting balance to the horizon.
// Each month draws an independent N(monthlyReturn, monthlyVolatility)
// return, compounds it, then adds the contribution. The balance is not
// floored at zero: a trial whose losses exceed its balance keeps the
// literal compounding result.
func runTrial(rng *rand.Rand, p domain.PlanParameters, d domain.Derived, recordPath bool) (float64, []float64) {
	portfolio := p.CurrentSavings

	var path []float64
	if recordPath {
		path = make([]float64, 0, d.Months+1)
		path = append(path, portfolio)
	}

	for m := 0; m < d.Months; m++ {
		r := d.MonthlyReturn + d.MonthlyVolatility*rng.NormFloat64()
		portfolio = portfolio*(1+r) + p.MonthlyContribution
		if recordPath {
			path = append(path, portfolio)
		}
	}
	return portfolio, path
}
