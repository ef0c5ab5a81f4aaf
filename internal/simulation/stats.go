package simulation

import (
	"math"
	"sort"

	"github.com/goalsim/goalsim/internal/domain"
)

// PercentileRanks are the percentile cut points reported for every run.
var PercentileRanks = []int{5, 25, 50, 75, 95}

// Aggregate reduces the ending balances of a complete run against the
// target. The input slice is not mutated; aggregation is deterministic for
// identical inputs. Standard deviation uses the population convention and
// percentiles interpolate linearly between order statistics.
func Aggregate(finalValues []float64, target float64) (domain.Summary, error) {
	n := len(finalValues)
	if n == 0 {
		return domain.Summary{}, domain.ErrEmptyInput
	}

	sorted := append([]float64(nil), finalValues...)
	sort.Float64s(sorted)

	successCount := 0
	sum := 0.0
	shortfallSum := 0.0
	shortfallCount := 0
	for _, v := range finalValues {
		sum += v
		if v >= target {
			successCount++
		} else {
			shortfallSum += target - v
			shortfallCount++
		}
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, v := range finalValues {
		dev := v - mean
		variance += dev * dev
	}
	variance /= float64(n)

	percentiles := make(map[int]float64, len(PercentileRanks))
	for _, rank := range PercentileRanks {
		percentiles[rank] = percentile(sorted, float64(rank))
	}

	avgShortfall := 0.0
	if shortfallCount > 0 {
		avgShortfall = shortfallSum / float64(shortfallCount)
	}

	successProbability := 100 * float64(successCount) / float64(n)
	return domain.Summary{
		SuccessProbability:   successProbability,
		Mean:                 mean,
		StdDev:               math.Sqrt(variance),
		Median:               percentiles[50],
		Min:                  sorted[0],
		Max:                  sorted[n-1],
		Percentiles:          percentiles,
		ShortfallProbability: 100 - successProbability,
		AvgShortfall:         avgShortfall,
	}, nil
}

// percentile returns the value at the given rank (0-100) of an
// ascending-sorted slice, interpolating linearly between the two
// surrounding order statistics.
func percentile(sorted []float64, rank float64) float64 {
	idx := rank / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
