package tsp

import (
	"math"
	"slices"
)

// GenerationStats summarizes the costs of one generation.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Median     float64
	Stdev      float64
}

// ComputeStats summarizes costs for generation gen. Best, worst and the sum
// come from a single pass; the deviation needs the mean, so it takes a second.
func ComputeStats(gen int, costs []float64) GenerationStats {
	st := GenerationStats{
		Generation: gen,
		Best:       math.Inf(1),
		Worst:      math.Inf(-1),
		Median:     Median(costs),
	}
	if len(costs) == 0 {
		return st
	}
	var sum float64
	for _, c := range costs {
		st.Best = min(st.Best, c)
		st.Worst = max(st.Worst, c)
		sum += c
	}
	st.Mean = sum / float64(len(costs))
	st.Stdev = sampleDeviation(costs, st.Mean)
	return st
}

// Mean returns the average of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Stdev returns the sample standard deviation of values.
func Stdev(values []float64) float64 {
	return sampleDeviation(values, Mean(values))
}

func sampleDeviation(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// MaxFloat returns the largest value, or -Inf for an empty slice.
func MaxFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(-1)
	}
	return slices.Max(values)
}

// MinFloat returns the smallest value, or +Inf for an empty slice.
func MinFloat(values []float64) float64 {
	if len(values) == 0 {
		return math.Inf(1)
	}
	return slices.Min(values)
}

// Median returns the median of values without reordering them, or NaN for an
// empty slice.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := slices.Sorted(slices.Values(values))
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
