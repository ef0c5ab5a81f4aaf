package domain

import (
	"errors"
	"math"
	"testing"
)

func validPlan() PlanParameters {
	return PlanParameters{
		CurrentSavings:      10000,
		MonthlyContribution: 500,
		Years:               20,
		AnnualReturn:        0.07,
		AnnualVolatility:    0.15,
		InflationRate:       0.02,
		GoalAmount:          400000,
		NumSimulations:      1000,
		SamplePaths:         10,
	}
}

func TestApplyDefaults(t *testing.T) {
	p := PlanParameters{}
	p.ApplyDefaults()

	if p.NumSimulations != DefaultNumSimulations {
		t.Errorf("expected %d simulations, got %d", DefaultNumSimulations, p.NumSimulations)
	}
	if p.SamplePaths != DefaultSamplePaths {
		t.Errorf("expected %d sample paths, got %d", DefaultSamplePaths, p.SamplePaths)
	}

	// Explicit values survive.
	p = PlanParameters{NumSimulations: 250, SamplePaths: 3}
	p.ApplyDefaults()
	if p.NumSimulations != 250 || p.SamplePaths != 3 {
		t.Errorf("defaults overwrote explicit tunables: %d/%d", p.NumSimulations, p.SamplePaths)
	}
}

func TestValidate(t *testing.T) {
	valid := validPlan()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*PlanParameters)
		field  string
	}{
		{"negative savings", func(p *PlanParameters) { p.CurrentSavings = -100 }, "current_savings"},
		{"zero years", func(p *PlanParameters) { p.Years = 0 }, "years"},
		{"negative years", func(p *PlanParameters) { p.Years = -3 }, "years"},
		{"negative volatility", func(p *PlanParameters) { p.AnnualVolatility = -0.01 }, "annual_volatility"},
		{"negative inflation", func(p *PlanParameters) { p.InflationRate = -0.01 }, "inflation_rate"},
		{"zero goal", func(p *PlanParameters) { p.GoalAmount = 0 }, "goal_amount"},
		{"negative goal", func(p *PlanParameters) { p.GoalAmount = -5 }, "goal_amount"},
		{"zero simulations", func(p *PlanParameters) { p.NumSimulations = 0 }, "num_simulations"},
		{"negative sample paths", func(p *PlanParameters) { p.SamplePaths = -1 }, "sample_paths"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPlan()
			tc.mutate(&p)

			err := p.Validate()
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected InvalidParameterError, got %v", err)
			}
			if ipe.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, ipe.Field)
			}
		})
	}
}

func TestValidateAllowsEdgeValues(t *testing.T) {
	p := validPlan()
	p.CurrentSavings = 0
	p.MonthlyContribution = -200 // withdrawals are a valid plan
	p.AnnualReturn = -0.5        // negative expected returns too
	p.AnnualVolatility = 0
	p.InflationRate = 0
	p.SamplePaths = 0

	if err := p.Validate(); err != nil {
		t.Errorf("edge-value plan rejected: %v", err)
	}
}

func TestDerive(t *testing.T) {
	p := validPlan()
	d := p.Derive()

	if d.Months != 240 {
		t.Errorf("months: expected 240, got %d", d.Months)
	}
	wantReturn := math.Pow(1.07, 1.0/12.0) - 1
	if math.Abs(d.MonthlyReturn-wantReturn) > 1e-15 {
		t.Errorf("monthly return: expected %g, got %g", wantReturn, d.MonthlyReturn)
	}
	wantVol := 0.15 / math.Sqrt(12)
	if math.Abs(d.MonthlyVolatility-wantVol) > 1e-15 {
		t.Errorf("monthly volatility: expected %g, got %g", wantVol, d.MonthlyVolatility)
	}
	if d.Target != p.GoalAmount {
		t.Errorf("target without inflation adjustment: expected %f, got %f", p.GoalAmount, d.Target)
	}
}

func TestDeriveInflationAdjustedTarget(t *testing.T) {
	p := validPlan()
	p.AdjustGoalForInflation = true
	d := p.Derive()

	want := p.GoalAmount * math.Pow(1.02, 20)
	if math.Abs(d.Target-want) > 1e-6 {
		t.Errorf("inflated target: expected %f, got %f", want, d.Target)
	}
}

func TestInvalidParameterErrorMessage(t *testing.T) {
	err := &InvalidParameterError{Field: "years", Reason: "must be at least 1"}
	want := "invalid parameter years: must be at least 1"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
