// Package explore walks the epistemic landscape along probe-derived unit
// vectors and records what it finds on the way.
//
// # What
//
//   - A Vector is a unit-length exploration direction carrying the domain
//     label and ignorance-type tag of the probe question it came from.
//     NewVector normalizes the raw direction and rejects zero vectors.
//   - Walk starts at the current epistemic position and, for every vector,
//     takes Options.Steps cumulative steps of Options.StepSize, sampling
//     position, potential and gradient magnitude at each step. Samples whose
//     potential falls below Options.LowKnowledge are flagged as discovered
//     Regions — candidate epistemic voids, tagged with their originating
//     vector.
//   - GradientPeaks scans one path's gradient-magnitude sequence for local
//     maxima at or above the path mean — the cheap per-iteration bifurcation
//     proxy consumed by the discovery loop.
//
// # Determinism
//
//	Walk has no randomness at all: paths and regions are pure functions of
//	the landscape, the origin and the vector set, visited in input order.
//
// # Complexity (v = vectors, k = steps, c = centers, d = dims)
//
//   - Walk:          O(v·k·c·d²)  (one gradient per sample)
//   - GradientPeaks: O(k)
//
// # Errors
//
//   - ErrZeroVector        if a raw direction has zero norm.
//   - ErrDimensionMismatch if origin or a vector disagrees with the
//     landscape dimensionality.
//   - ErrOptionViolation   for invalid options.
//
// Zero regions and zero peaks are valid outcomes; they simply mean this
// iteration discovered nothing new.
package explore
