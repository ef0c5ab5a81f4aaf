package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalsim/goalsim/internal/domain"
)

func sampleResult() *domain.SimulationResult {
	return &domain.SimulationResult{
		Params: domain.PlanParameters{
			CurrentSavings:      100000,
			MonthlyContribution: 1500,
			Years:               25,
			AnnualReturn:        0.06,
			AnnualVolatility:    0.12,
			InflationRate:       0.025,
			GoalAmount:          1200000,
			NumSimulations:      5000,
		},
		Target:         1200000,
		NumSimulations: 5000,
		Summary: domain.Summary{
			SuccessProbability:   78.4,
			Mean:                 1389000.25,
			StdDev:               412000.5,
			Median:               1320500,
			Min:                  310000,
			Max:                  4100000,
			Percentiles:          map[int]float64{5: 810000, 25: 1090000, 50: 1320500, 75: 1630000, 95: 2150000},
			ShortfallProbability: 21.6,
			AvgShortfall:         185000,
		},
		SamplePaths: [][]float64{{100000, 101200}},
	}
}

func TestGetFormatterByName(t *testing.T) {
	cases := map[string]string{
		"console":     "console",
		"Console":     "console",
		" JSON ":      "json",
		"csv":         "csv",
		"text":        "console",
		"report":      "console",
		"json-pretty": "json",
		"csv-summary": "csv",
	}
	for name, want := range cases {
		f := GetFormatterByName(name)
		require.NotNil(t, f, "formatter %q not found", name)
		assert.Equal(t, want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
	assert.Nil(t, GetFormatterByName(""))
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"console", "json", "csv"}, FormatNames())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := (ConsoleFormatter{}).Format(sampleResult())
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "MONTE CARLO SAVINGS PLAN REPORT")
	assert.Contains(t, report, "INPUT PARAMETERS")
	assert.Contains(t, report, "SIMULATION RESULTS")
	assert.Contains(t, report, "PERCENTILE ANALYSIS")
	assert.Contains(t, report, "RISK ANALYSIS")
	assert.Contains(t, report, "RECOMMENDATIONS")

	assert.Contains(t, report, "Probability of Reaching Goal: 78.4%")
	assert.Contains(t, report, "Goal Amount:          $1200000.00")
	assert.Contains(t, report, "Expected Return:      6.0%")
	assert.Contains(t, report, " 5th percentile: $810000.00")
	assert.Contains(t, report, "95th percentile: $2150000.00")
}

func TestConsoleFormatterInflationLine(t *testing.T) {
	result := sampleResult()

	data, err := (ConsoleFormatter{}).Format(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "inflation-adjusted")

	result.Params.AdjustGoalForInflation = true
	result.Target = 1500000
	data, err = (ConsoleFormatter{}).Format(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Target (inflation-adjusted): $1500000.00")
}

func TestRecommendationBands(t *testing.T) {
	assert.Contains(t, recommendation(92), "on track")
	assert.Contains(t, recommendation(80), "on track")
	assert.Contains(t, recommendation(70), "moderate")
	assert.Contains(t, recommendation(60), "moderate")
	assert.Contains(t, recommendation(40), "low probability")
}

func TestJSONFormatter(t *testing.T) {
	data, err := (JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded struct {
		Target  float64 `json:"target"`
		Summary struct {
			SuccessProbability float64         `json:"success_probability"`
			Percentiles        map[int]float64 `json:"percentiles"`
		} `json:"summary"`
		SamplePaths [][]float64 `json:"sample_paths"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 1200000.0, decoded.Target)
	assert.Equal(t, 78.4, decoded.Summary.SuccessProbability)
	assert.Equal(t, 1320500.0, decoded.Summary.Percentiles[50])
	assert.Len(t, decoded.SamplePaths, 1)

	// Raw per-trial values never ship over the wire.
	assert.NotContains(t, string(data), "final_values")
}

func TestCSVFormatter(t *testing.T) {
	data, err := (CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header, row := records[0], records[1]
	require.Equal(t, len(header), len(row))
	assert.Equal(t, "NumSimulations", header[0])
	assert.Equal(t, "P95", header[len(header)-1])
	assert.Equal(t, "5000", row[0])
	assert.Equal(t, "78.40", row[2])
	assert.Equal(t, "2150000.00", row[len(row)-1])
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "$-250.75", FormatCurrency(-250.75))
	assert.Equal(t, "78.4%", FormatPercentage(78.42))
	assert.Equal(t, "7.0%", FormatRate(0.07))
	assert.Equal(t, "12.5%", FormatRate(0.125))
}
