// Package fixedpoint locates stationary points of the ignorance gradient and
// classifies their stability, and sweeps a landscape parameter to detect
// bifurcations.
//
// # What
//
//   - Find draws a configurable number of uniformly random starts in the unit
//     domain box and, for each, minimizes the gradient magnitude along fresh
//     random directions with a golden-section line search. A start is
//     accepted only when the gradient magnitude falls below the tolerance;
//     unconverged starts are discarded silently — they are a recovered
//     numerical condition, never an error.
//   - Each accepted point is classified from the eigenvalues of the field
//     Jacobian: all real parts negative ⇒ Sink, all positive ⇒ Source,
//     mixed signs ⇒ Saddle. Stability is the maximum real part.
//   - Sweep evaluates Find across a linearly spaced parameter range (the
//     parameter scales center strengths via Landscape.Scaled) and emits a
//     Bifurcation whenever the fixed-point count changes between consecutive
//     samples: SaddleNode when the count grows, Collision when it shrinks.
//
// # Why
//
//	Fixed points are the stable knowledge/ignorance configurations of the
//	epistemic landscape; bifurcations mark parameter values where that
//	structure reorganizes. The discovery loop itself uses a cheaper
//	gradient-peak proxy (see explore); Sweep is the diagnostic instrument.
//
// # Determinism
//
//	All randomness flows through one explicit seed. Per-start RNG streams are
//	derived with a SplitMix64-style mix of the seed and the start index, and
//	per-parameter streams mix in the sample index, so results are identical
//	for identical seeds and inputs regardless of any future parallel
//	reduction over starts.
//
// # Complexity (s = starts, r = restarts, d = dims, c = centers)
//
//   - Find:  O(s·r·L·c·d²) for L line-search probes, plus O(accepted·c·d³)
//     for Jacobian classification.
//   - Sweep: steps × Find.
//
// # Errors
//
//   - ErrNilLandscape    if the landscape pointer is nil.
//   - ErrOptionViolation if an invalid option is supplied (e.g. Starts < 1).
//   - ErrBadSweep        if a sweep requests fewer than two samples.
//
// An empty result from Find is a valid, non-error outcome.
package fixedpoint
