package explore

import "gonum.org/v1/gonum/stat"

// PeakIndices returns the indices of strict interior local maxima of values
// whose height is at least minHeight. Endpoints are never peaks; plateaus do
// not qualify. The scan order is left to right, so the result is sorted.
//
// Complexity: O(n).
func PeakIndices(values []float64, minHeight float64) []int {
	var peaks []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] && values[i] >= minHeight {
			peaks = append(peaks, i)
		}
	}

	return peaks
}

// GradientPeaks scans a path's gradient-magnitude sequence for local maxima
// at or above the path mean. Peaks mark candidate critical transitions: the
// cheap per-iteration bifurcation proxy used by the discovery loop instead of
// a full parameter sweep.
//
// An empty result means the gradient varied smoothly along the path.
func GradientPeaks(p Path) []int {
	if len(p.Samples) == 0 {
		return nil
	}

	grads := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		grads[i] = s.GradientMagnitude
	}

	return PeakIndices(grads, stat.Mean(grads, nil))
}
