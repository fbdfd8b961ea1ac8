package strbench

import (
	"math"
	"sort"
	"time"
)

// Statistics contains percentile data over a Result's check-window samples.
// Each sample covers Config.CheckEvery invocations, so the numbers describe
// the stability of the measurement loop rather than single-call latency.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// CalculateStatistics computes percentile window latencies from a Result.
func CalculateStatistics(result Result) Statistics {
	if len(result.Samples) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(result.Samples))
	copy(sorted, result.Samples)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	mean := sum / time.Duration(len(sorted))

	var variance float64
	for _, d := range sorted {
		diff := float64(d - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		P50:    sorted[len(sorted)*50/100],
		P95:    sorted[len(sorted)*95/100],
		P99:    sorted[len(sorted)*99/100],
	}
}
