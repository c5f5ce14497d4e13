package dataprocessing

import (
	"math"
	"sort"
)

// median returns the middle value of vals (the mean of the two middle
// values for even counts). The second return is false when vals is empty.
func median(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// mean returns the arithmetic mean of vals, false when vals is empty
func mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}

// mode returns the most frequent value; ties break to the smallest value
// so results are deterministic. The second return is false when vals is
// empty.
func mode(vals []string) (string, bool) {
	if len(vals) == 0 {
		return "", false
	}
	counts := make(map[string]int, len(vals))
	for _, v := range vals {
		counts[v]++
	}
	best := ""
	bestCount := -1
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best, true
}

// linearSlope fits a first-degree least-squares line of ys against the
// observation index 0..n-1 and returns the slope. The second return is
// false when fewer than two points are given or the fit degenerates.
func linearSlope(ys []float64) (float64, bool) {
	n := len(ys)
	if n < 2 {
		return 0, false
	}

	xMean := float64(n-1) / 2
	yMean := 0.0
	for _, y := range ys {
		yMean += y
	}
	yMean /= float64(n)

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0, false
	}

	slope := num / den
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0, false
	}
	return slope, true
}

// round1 rounds to 1 decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// clipFloat bounds v to [lo, hi]
func clipFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clipInt bounds v to [lo, hi]
func clipInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// float64Ptr returns a pointer to v
func float64Ptr(v float64) *float64 { return &v }

// int64Ptr returns a pointer to v
func int64Ptr(v int64) *int64 { return &v }

// stringPtr returns a pointer to v
func stringPtr(v string) *string { return &v }
