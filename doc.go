// Package epistemica models a knowledge base as a scalar potential field
// over a small multi-dimensional domain space and systematically hunts for
// what that knowledge base does not contain.
//
// 🚀 What is epistemica?
//
//	A deterministic, synchronous discovery engine that brings together:
//		• Landscape model: weighted Gaussian knowledge centers and their potential field
//		• Field operators: finite-difference ignorance gradient and Jacobian
//		• Fixed points: multi-start search + eigenvalue stability classification
//		• Bifurcations: parameter sweeps that flag structural transitions
//		• Exploration: directed walks along probe-derived unit vectors
//		• Gaps: severity-scored epistemic voids and critical transitions
//		• Topology: proximity graph over discovered gaps with component
//		  and clustering metrics
//		• Reporting: a fixed-order, reproducible text report
//
// ✨ Why choose epistemica?
//
//   - Reproducible – one explicit, seedable PRNG per engine; same seed and
//     inputs ⇒ identical results
//   - Honest about emptiness – no fixed points, no gaps and no bifurcations
//     are valid outcomes, never errors
//   - Pure Go – small numeric kernels on gonum, no cgo, no I/O
//
// Everything is organized under flat subpackages:
//
//	landscape/  — knowledge centers, potential field, gradient & Jacobian
//	fixedpoint/ — stationary-point search, stability classes, parameter sweeps
//	explore/    — exploration vectors, stepwise walks, gradient-peak scan
//	dynamics/   — convergence classification, entropy, trajectory tests
//	topology/   — gap graph: components and clustering coefficient
//	discovery/  — the discovery loop, accumulated results and the report
//
// Quick sketch:
//
//	items, domains := loadKnowledge()            // caller-supplied
//	loop, err := discovery.NewLoop(items, domains, cqs, antiCQs,
//	    discovery.WithSeed(42))
//	results, err := loop.ExecuteDiscoveryLoop(10)
//	fmt.Print(discovery.GenerateIgnoranceReport(results))
//
// Dive into each package's doc.go for contracts, determinism notes and
// complexity bounds.
package epistemica
