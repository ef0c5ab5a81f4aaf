package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goalsim/goalsim/internal/domain"
	"github.com/goalsim/goalsim/internal/simulation"
)

// ConsoleFormatter renders the full text report: inputs, results,
// percentile analysis, risk analysis and a plain-language recommendation.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	p := result.Params
	s := result.Summary

	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 40)

	fmt.Fprintln(buf, rule)
	fmt.Fprintln(buf, "MONTE CARLO SAVINGS PLAN REPORT")
	fmt.Fprintln(buf, rule)

	fmt.Fprintln(buf, "\nINPUT PARAMETERS")
	fmt.Fprintln(buf, thin)
	fmt.Fprintf(buf, "Current Savings:      %s\n", FormatCurrency(p.CurrentSavings))
	fmt.Fprintf(buf, "Monthly Contribution: %s\n", FormatCurrency(p.MonthlyContribution))
	fmt.Fprintf(buf, "Horizon:              %d years\n", p.Years)
	fmt.Fprintf(buf, "Expected Return:      %s\n", FormatRate(p.AnnualReturn))
	fmt.Fprintf(buf, "Volatility:           %s\n", FormatRate(p.AnnualVolatility))
	fmt.Fprintf(buf, "Inflation Rate:       %s\n", FormatRate(p.InflationRate))
	fmt.Fprintf(buf, "Goal Amount:          %s\n", FormatCurrency(p.GoalAmount))
	if p.AdjustGoalForInflation {
		fmt.Fprintf(buf, "Target (inflation-adjusted): %s\n", FormatCurrency(result.Target))
	}
	fmt.Fprintf(buf, "Simulations:          %d\n", result.NumSimulations)

	fmt.Fprintln(buf, "\nSIMULATION RESULTS")
	fmt.Fprintln(buf, thin)
	fmt.Fprintf(buf, "Probability of Reaching Goal: %s\n", FormatPercentage(s.SuccessProbability))
	fmt.Fprintf(buf, "Shortfall Probability:        %s\n", FormatPercentage(s.ShortfallProbability))
	fmt.Fprintln(buf, "\nFinal Portfolio Statistics:")
	fmt.Fprintf(buf, "  Mean:               %s\n", FormatCurrency(s.Mean))
	fmt.Fprintf(buf, "  Median:             %s\n", FormatCurrency(s.Median))
	fmt.Fprintf(buf, "  Standard Deviation: %s\n", FormatCurrency(s.StdDev))
	fmt.Fprintf(buf, "  Minimum:            %s\n", FormatCurrency(s.Min))
	fmt.Fprintf(buf, "  Maximum:            %s\n", FormatCurrency(s.Max))

	fmt.Fprintln(buf, "\nPERCENTILE ANALYSIS")
	fmt.Fprintln(buf, thin)
	for _, rank := range simulation.PercentileRanks {
		fmt.Fprintf(buf, "%2dth percentile: %s\n", rank, FormatCurrency(s.Percentiles[rank]))
	}

	fmt.Fprintln(buf, "\nRISK ANALYSIS")
	fmt.Fprintln(buf, thin)
	fmt.Fprintf(buf, "Average Shortfall (if goal not met): %s\n", FormatCurrency(s.AvgShortfall))

	fmt.Fprintln(buf, "\nRECOMMENDATIONS")
	fmt.Fprintln(buf, thin)
	fmt.Fprintln(buf, recommendation(s.SuccessProbability))

	fmt.Fprintln(buf)
	fmt.Fprintln(buf, rule)
	return buf.Bytes(), nil
}

// recommendation maps the success probability onto the advice bands the
// report has always used: >=80 on track, >=60 moderate, below that low.
func recommendation(successProbability float64) string {
	switch {
	case successProbability >= 80:
		return "You're on track. The current plan has a high probability of\n" +
			"success; consider maintaining the strategy or reducing risk."
	case successProbability >= 60:
		return "The plan has a moderate chance of success. Consider raising\n" +
			"monthly contributions, extending the horizon, or reviewing the\n" +
			"investment mix."
	default:
		return "The plan has a low probability of reaching the goal. Raise\n" +
			"contributions significantly, extend the horizon, or revisit the\n" +
			"goal amount."
	}
}
