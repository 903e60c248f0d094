// Package landscape models a knowledge base as a scalar potential field over
// a bounded multi-dimensional domain space.
//
// # What
//
//   - A Landscape is a fixed set of knowledge Centers, each a weighted
//     Gaussian bump: position, strength (weight) and spread (variance),
//     tagged with a domain label.
//   - Potential(p) returns the knowledge density at p: the sum over centers
//     of strength·exp(−‖p−center‖²/spread). Higher potential = more knowledge.
//   - IgnoranceGradient(p) is the central finite-difference gradient of the
//     negated potential; it points toward regions of least knowledge.
//   - Jacobian(p) is the finite-difference linearization of the ignorance
//     gradient, a dims×dims matrix used for local stability analysis.
//   - Scaled(factor) derives a new Landscape with all center strengths
//     multiplied by factor; this is the control-parameter hook used by
//     bifurcation sweeps.
//
// # Why
//
//	The potential field is the single source of truth for every other
//	package: fixed-point search drives the gradient magnitude to zero,
//	exploration samples the field along probe directions, and gap detection
//	thresholds the potential. Keeping the model pure (no caching, no state)
//	makes all downstream results reproducible.
//
// # Domain box
//
//	Centers conventionally live in the unit box [0,1]^dims, but Potential and
//	both field operators accept arbitrary points: out-of-box points are valid
//	and simply yield small potential. No domain restriction is enforced.
//
// # Determinism
//
//	All three operators are pure functions of the Landscape and the query
//	point; evaluation order over centers is the construction order, so
//	floating-point accumulation is stable across runs.
//
// # Complexity (c = |Centers|, d = dims)
//
//   - Potential:          O(c·d)
//   - IgnoranceGradient:  O(c·d²)   (2d potential evaluations)
//   - Jacobian:           O(c·d³)   (2d gradient evaluations)
//
// # Errors
//
//   - ErrNoDimensions      if dims < 1.
//   - ErrBadSpread         if any center has a non-positive spread.
//   - ErrDimensionMismatch if a center position or query point has the wrong
//     length.
//
// Construction is the only fatal boundary: a malformed configuration fails
// fast in New; the operators themselves never fail on valid geometry.
package landscape
