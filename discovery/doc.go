// Package discovery orchestrates the unknown-unknown discovery loop: it owns
// the epistemic landscape built from the caller's knowledge base, walks it
// with probe-derived exploration vectors, catalogues the gaps it finds and
// renders the final ignorance report.
//
// # What
//
//   - NewLoop summarizes a knowledge-item collection into one knowledge
//     center per active domain (strength proportional to item count, fixed
//     spread) and an initial coordinate vector of per-domain coverage
//     ratios, clamped to [0,1]. Competency questions seed the initial
//     competency score; anti-competency questions supply the exploration
//     vectors, normalized to unit length.
//   - ExecuteDiscoveryLoop runs the iteration cycle (assess, explore,
//     detect transitions, identify gaps, classify dynamics, advance the
//     epistemic state) until the budget is spent or the trajectory
//     converges, then maps the gap topology. The returned DiscoveryResults
//     is frozen: its lists only ever grew during the loop.
//   - GenerateIgnoranceReport renders DiscoveryResults into a fixed-order,
//     deterministic text report.
//   - FindFixedPoints and DetectBifurcations expose the heavier diagnostic
//     instruments over the loop's own landscape and seed.
//
// # Failure semantics
//
//	Only configuration errors stop execution: an empty domain list, a
//	malformed center, a zero-norm or wrong-length exploration vector, or a
//	negative iteration budget. Everything downstream degrades to "fewer
//	findings": zero gaps, zero bifurcations and an empty trajectory all
//	render cleanly.
//
// # Determinism
//
//	The loop itself is randomness-free; all stochastic diagnostics flow
//	through the engine seed (WithSeed). Two loops built with identical
//	inputs and seed produce identical DiscoveryResults and byte-identical
//	reports.
//
// # Known limitation
//
//	Domain labels beyond the configured dimensionality are tracked with
//	implicit weight 0 in every domain mapping; use TruncatedDomains to
//	detect how much of the domain list fell off the coordinate axes.
package discovery
