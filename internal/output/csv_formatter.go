package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/goalsim/goalsim/internal/domain"
	"github.com/goalsim/goalsim/internal/simulation"
)

// CSVFormatter writes the summary statistics as a two-row CSV (header +
// values), one column per statistic, percentile columns last.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"NumSimulations", "Target", "SuccessProbability", "Mean", "StdDev", "Median", "Min", "Max", "AvgShortfall"}
	for _, rank := range simulation.PercentileRanks {
		header = append(header, "P"+strconv.Itoa(rank))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	s := result.Summary
	row := []string{
		strconv.Itoa(result.NumSimulations),
		formatFloat(result.Target),
		formatFloat(s.SuccessProbability),
		formatFloat(s.Mean),
		formatFloat(s.StdDev),
		formatFloat(s.Median),
		formatFloat(s.Min),
		formatFloat(s.Max),
		formatFloat(s.AvgShortfall),
	}
	for _, rank := range simulation.PercentileRanks {
		row = append(row, formatFloat(s.Percentiles[rank]))
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
