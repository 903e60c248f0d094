// Package topology summarizes the spatial structure of discovered gaps.
//
// What
//
//   - One Node per gap (position, kind, severity); an undirected edge joins
//     two nodes whose Euclidean distance is below Options.Threshold.
//   - Map builds that proximity graph and reports node count, edge count,
//     connected-component count (BFS) and the average clustering coefficient
//     (direct triangle counting; 0 for an empty graph).
//
// Why no graph library
//
//	The gap graph holds dozens of anonymous nodes at most; an adjacency list
//	with a BFS sweep and a triangle count covers everything the report needs.
//
// Determinism
//
//	Nodes are scanned in input order and neighbors collected in index order,
//	so every metric is reproducible for identical input.
//
// Complexity: O(n²·d) to build (pairwise distances), O(n + e) for
// components, O(n·k²) for clustering with k the maximum degree.
package topology
