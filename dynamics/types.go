// Package dynamics declares the convergence vocabulary and the per-iteration
// Report record.
package dynamics

// ConvergenceType labels one iteration's displacement/variance behavior.
type ConvergenceType int

const (
	// FixedPoint: the trajectory has effectively stopped moving.
	FixedPoint ConvergenceType = iota

	// Periodic: small displacement but persistent spread — orbiting.
	Periodic

	// Chaotic: moderate displacement with large, irregular spread.
	Chaotic

	// Divergent: the trajectory is leaving the charted region.
	Divergent

	// Marginal: none of the crisp regimes apply.
	Marginal
)

// String renders the convergence class in wire-stable lowercase form.
func (c ConvergenceType) String() string {
	switch c {
	case FixedPoint:
		return "fixed_point"
	case Periodic:
		return "periodic"
	case Chaotic:
		return "chaotic"
	case Divergent:
		return "divergent"
	default:
		return "marginal"
	}
}

// Report bundles one iteration's dynamics.
type Report struct {
	// Displacement is final − initial position, axis by axis.
	Displacement []float64

	// DisplacementMagnitude is ‖Displacement‖₂.
	DisplacementMagnitude float64

	// TrajectoryVariance is the mean per-axis population variance over all
	// exploration samples of the iteration; 0 when fewer than three samples
	// exist.
	TrajectoryVariance float64

	// Entropy is the iteration's knowledge entropy.
	Entropy float64

	// Class is the convergence label derived from the two scalars above.
	Class ConvergenceType
}
