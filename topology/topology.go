package topology

import (
	"gonum.org/v1/gonum/floats"
)

// Map builds the undirected gap-proximity graph and summarizes it.
//
// Two nodes are connected when the Euclidean distance between their positions
// is strictly below Options.Threshold. Components are collected with a BFS
// sweep over the adjacency lists; the clustering coefficient is the
// graph-average of per-node local coefficients obtained by direct triangle
// counting (nodes of degree < 2 contribute 0, as does an empty graph).
//
// An empty node list yields the all-zero Summary — a valid outcome.
//
// Errors: ErrOptionViolation, ErrDimensionMismatch.
func Map(nodes []Node, opts ...Option) (Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Summary{}, o.err
	}

	n := len(nodes)
	if n == 0 {
		return Summary{}, nil
	}
	for i := 1; i < n; i++ {
		if len(nodes[i].Position) != len(nodes[0].Position) {
			return Summary{}, ErrDimensionMismatch
		}
	}

	// Adjacency lists from pairwise distances, index order i<j.
	adj := make([][]int, n)
	edges := 0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if floats.Distance(nodes[i].Position, nodes[j].Position, 2) < o.Threshold {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
				edges++
			}
		}
	}

	return Summary{
		NodeCount:             n,
		EdgeCount:             edges,
		ConnectedComponents:   countComponents(adj),
		ClusteringCoefficient: averageClustering(adj),
	}, nil
}

// countComponents runs a BFS sweep over the adjacency lists and returns the
// number of connected components.
func countComponents(adj [][]int) int {
	n := len(adj)
	seen := make([]bool, n)
	components := 0

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		components++

		// BFS to absorb the component.
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, next := range adj[queue[qi]] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
	}

	return components
}

// averageClustering returns the mean local clustering coefficient over all
// nodes. For a node of degree k ≥ 2 the local coefficient is
// 2·links/(k·(k−1)) where links counts edges among its neighbors; lower
// degrees contribute 0.
func averageClustering(adj [][]int) float64 {
	n := len(adj)
	if n == 0 {
		return 0
	}

	var total float64
	for v := 0; v < n; v++ {
		k := len(adj[v])
		if k < 2 {
			continue
		}

		links := 0
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if connected(adj, adj[v][a], adj[v][b]) {
					links++
				}
			}
		}
		total += 2 * float64(links) / float64(k*(k-1))
	}

	return total / float64(n)
}

// connected reports whether u's adjacency list contains w.
func connected(adj [][]int, u, w int) bool {
	for _, x := range adj[u] {
		if x == w {
			return true
		}
	}

	return false
}
