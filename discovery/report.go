package discovery

import (
	"fmt"
	"sort"
	"strings"
)

// Report layout constants.
const (
	reportWidth    = 80
	reportGapLimit = 10 // gaps printed in full before the ellipsis line
	reportBifLimit = 5  // transitions printed in the critical section
)

// GenerateIgnoranceReport renders the run's findings as a fixed-layout text
// report. The output is a pure, deterministic function of the results: list
// sections follow discovery order and every domain mapping is printed with
// its keys sorted. Empty result sets render cleanly as zero-count sections.
func GenerateIgnoranceReport(r *DiscoveryResults) string {
	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(rule)
	line("UNKNOWN-UNKNOWN DISCOVERY LOOP - IGNORANCE ANALYSIS REPORT")
	line(rule)
	line("")
	line("Discovery Loop Completed: %d iterations", r.IterationsCompleted)
	line("Total Knowledge Gaps Discovered: %d", len(r.Gaps))
	line("Bifurcation Points Identified: %d", len(r.Bifurcations))
	line("")

	line("EPISTEMIC DYNAMICS ANALYSIS:")
	line("  Final Entropy: %.4f", r.Convergence.FinalEntropy)
	line("  Entropy Trend: %s", r.Convergence.EntropyTrend)
	line("  Trajectory Length: %d", r.Convergence.TrajectoryLength)
	line("")

	line("IGNORANCE TOPOLOGY:")
	line("  Ignorance Regions: %d", r.Topology.NodeCount)
	line("  Region Connections: %d", r.Topology.EdgeCount)
	line("  Connected Components: %d", r.Topology.ConnectedComponents)
	line("  Clustering Coefficient: %.4f", r.Topology.ClusteringCoefficient)
	line("")

	line("DISCOVERED KNOWLEDGE GAPS:")
	line("")
	shown := len(r.Gaps)
	if shown > reportGapLimit {
		shown = reportGapLimit
	}
	for i := 0; i < shown; i++ {
		g := r.Gaps[i]
		line("%d. %s", i+1, strings.ToUpper(g.Kind.String()))
		line("   Severity: %.3f", g.Severity)
		line("   Description: %s", g.Description)
		line("   Domain Mapping: %s", formatMapping(g.DomainMapping))
		line("")
	}
	if rest := len(r.Gaps) - shown; rest > 0 {
		line("... and %d additional gaps", rest)
		line("")
	}

	line("CRITICAL TRANSITIONS:")
	line("")
	shown = len(r.Bifurcations)
	if shown > reportBifLimit {
		shown = reportBifLimit
	}
	for i := 0; i < shown; i++ {
		t := r.Bifurcations[i]
		line("%d. %s", i+1, strings.ToUpper(t.Type))
		line("   Magnitude: %.3f", t.Magnitude)
		line("   Knowledge Potential: %.3f", t.KnowledgePotential)
		line("")
	}

	line("RECOMMENDATIONS FOR UNKNOWN-UNKNOWN MITIGATION:")
	line("1. Focus research on highest severity ignorance regions")
	line("2. Investigate critical transition points for paradigm shifts")
	line("3. Develop probing capabilities for discovered voids")
	line("4. Create targeted competency questions for gap domains")
	line("5. Establish monitoring for bifurcation indicators")
	line("")
	line(rule)

	return b.String()
}

// formatMapping prints a domain mapping with sorted keys, e.g.
// "alpha=0.500, beta=0.120". An empty mapping renders as "(none)".
func formatMapping(mapping map[string]float64) string {
	if len(mapping) == 0 {
		return "(none)"
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.3f", k, mapping[k]))
	}

	return strings.Join(parts, ", ")
}
