// Package dynamics classifies per-iteration epistemic behavior and decides
// whole-loop convergence.
//
// What
//
//   - Classify maps one iteration's displacement magnitude and trajectory
//     variance onto a ConvergenceType: fixed-point, periodic, chaotic,
//     divergent or marginal.
//   - Analyze computes those two quantities from the iteration's start and
//     end positions plus every exploration sample, and bundles them with the
//     iteration entropy into a Report.
//   - Shannon computes the entropy of a domain-count distribution in bits;
//     it is never negative and an empty distribution scores zero.
//   - ConvergedTrajectory inspects the last three epistemic points and
//     declares convergence when their mean consecutive distance drops below
//     0.01.
//
// Determinism
//
//	Everything here is a pure function; the entropy sum iterates domain keys
//	in sorted order so floating-point accumulation is stable across runs.
package dynamics
