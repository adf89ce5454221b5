package engine

import "math"

// ============================================================================
// AGGREGATORS — Measure reductions over a RecordView
// ============================================================================
// Every reduction over an empty view returns 0 rather than NaN or ±Inf.
// ============================================================================

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// AvgMeasure computes the arithmetic mean of a named measure.
func AvgMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// MaxMeasure returns the largest value of a named measure and its index.
// Ties keep the first index. An empty view returns (0, -1).
func MaxMeasure(view RecordView, measure string) (float64, int) {
	n := view.Len()
	if n == 0 {
		return 0, -1
	}
	m, at := math.Inf(-1), -1
	for i := 0; i < n; i++ {
		if v := view.Measure(i, measure); v > m {
			m, at = v, i
		}
	}
	return m, at
}
