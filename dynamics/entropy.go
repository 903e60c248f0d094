package dynamics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// convergenceWindow is the trajectory suffix inspected by
// ConvergedTrajectory.
const convergenceWindow = 3

// convergenceThreshold bounds the mean consecutive distance below which the
// loop is considered converged.
const convergenceThreshold = 0.01

// Shannon returns the Shannon entropy, in bits, of a domain-count
// distribution. Zero-count domains contribute nothing; an empty or all-zero
// distribution scores 0. The result is never negative.
//
// Keys are visited in sorted order so the floating-point sum is identical
// across runs regardless of map iteration order.
func Shannon(counts map[string]int) float64 {
	var total int
	keys := make([]string, 0, len(counts))
	for k, c := range counts {
		if c > 0 {
			keys = append(keys, k)
			total += c
		}
	}
	if total == 0 {
		return 0
	}
	sort.Strings(keys)

	var entropy, p float64
	for _, k := range keys {
		p = float64(counts[k]) / float64(total)
		entropy -= p * math.Log2(p)
	}
	if entropy < 0 {
		entropy = 0 // clamp the −0.0 of a single-domain distribution
	}

	return entropy
}

// ConvergedTrajectory reports whether the epistemic trajectory has settled:
// it requires at least three points and declares convergence when the mean
// distance between consecutive points over the last three drops below 0.01.
func ConvergedTrajectory(points [][]float64) bool {
	if len(points) < convergenceWindow {
		return false
	}

	recent := points[len(points)-convergenceWindow:]
	var sum float64
	for i := 0; i < len(recent)-1; i++ {
		sum += floats.Distance(recent[i], recent[i+1], 2)
	}

	return sum/float64(len(recent)-1) < convergenceThreshold
}
