// Package landscape declares the Center type and sentinel errors for the
// epistemic landscape model.
package landscape

import "errors"

// Sentinel errors for landscape construction and evaluation.
var (
	// ErrNoDimensions indicates a landscape was requested with dims < 1.
	ErrNoDimensions = errors.New("landscape: dimensionality must be positive")

	// ErrBadSpread indicates a center with a non-positive spread.
	ErrBadSpread = errors.New("landscape: center spread must be positive")

	// ErrDimensionMismatch indicates a center position or query point whose
	// length differs from the landscape dimensionality.
	ErrDimensionMismatch = errors.New("landscape: point length differs from dimensionality")
)

// gradStep is the finite-difference step, in normalized domain units, used by
// both IgnoranceGradient and Jacobian.
const gradStep = 1e-6

// Center is one knowledge center: a weighted Gaussian bump in domain space.
//
// Centers are immutable once handed to New; the Landscape keeps its own copy.
type Center struct {
	// Position is the bump location in domain space (length == dims).
	Position []float64

	// Strength is the positive scalar weight of the bump.
	Strength float64

	// Spread is the positive variance of the bump; smaller spread means a
	// sharper, more localized knowledge concentration.
	Spread float64

	// Domain is the knowledge-domain label this center represents.
	Domain string
}

// clone returns a deep copy of the center, detaching the position slice.
func (c Center) clone() Center {
	p := make([]float64, len(c.Position))
	copy(p, c.Position)

	return Center{Position: p, Strength: c.Strength, Spread: c.Spread, Domain: c.Domain}
}
