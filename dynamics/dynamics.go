package dynamics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/epistemica/explore"
)

// Classification thresholds for displacement magnitude and trajectory
// variance, in normalized domain units.
const (
	stillDisplacement  = 0.01
	stillVariance      = 0.001
	orbitDisplacement  = 0.1
	orbitVariance      = 0.01
	escapeDisplacement = 0.5
	chaosVariance      = 0.1
)

// Classify maps one iteration's displacement magnitude and trajectory
// variance onto a convergence class. The branches are ordered so that the
// crisp regimes win over Marginal:
//
//	d < 0.01 ∧ v < 0.001        → FixedPoint
//	d < 0.1  ∧ v > 0.01         → Periodic
//	d > 0.5                     → Divergent
//	0.1 ≤ d ≤ 0.5 ∧ v > 0.1     → Chaotic
//	otherwise                   → Marginal
func Classify(displacement, variance float64) ConvergenceType {
	switch {
	case displacement < stillDisplacement && variance < stillVariance:
		return FixedPoint
	case displacement < orbitDisplacement && variance > orbitVariance:
		return Periodic
	case displacement > escapeDisplacement:
		return Divergent
	case displacement >= orbitDisplacement && displacement <= escapeDisplacement && variance > chaosVariance:
		return Chaotic
	default:
		return Marginal
	}
}

// Analyze computes one iteration's dynamics Report from its start and end
// positions, its entropy, and every exploration path sampled during the
// iteration.
//
// TrajectoryVariance is the mean over axes of the population variance of all
// sampled positions; with fewer than three samples it is zero, matching the
// "no spread observable" reading of a degenerate trajectory.
//
// Pure function; inputs are not retained.
func Analyze(initial, final []float64, entropy float64, paths []explore.Path) Report {
	displacement := make([]float64, len(final))
	floats.SubTo(displacement, final, initial)
	magnitude := floats.Norm(displacement, 2)

	variance := trajectoryVariance(paths, len(final))

	return Report{
		Displacement:          displacement,
		DisplacementMagnitude: magnitude,
		TrajectoryVariance:    variance,
		Entropy:               entropy,
		Class:                 Classify(magnitude, variance),
	}
}

// trajectoryVariance returns the mean per-axis population variance of all
// sampled positions across paths, or 0 with fewer than three samples.
func trajectoryVariance(paths []explore.Path, dims int) float64 {
	var total int
	for _, p := range paths {
		total += len(p.Samples)
	}
	if total <= 2 || dims == 0 {
		return 0
	}

	// Per-axis mean, fixed path→sample order for stable accumulation.
	mean := make([]float64, dims)
	for _, p := range paths {
		for _, s := range p.Samples {
			floats.Add(mean, s.Position)
		}
	}
	floats.Scale(1/float64(total), mean)

	// Per-axis population variance, averaged over axes.
	var acc, dev float64
	for _, p := range paths {
		for _, s := range p.Samples {
			for i := 0; i < dims; i++ {
				dev = s.Position[i] - mean[i]
				acc += dev * dev
			}
		}
	}

	return acc / float64(total) / float64(dims)
}
