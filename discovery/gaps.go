package discovery

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/epistemica/explore"
)

// identifyGaps converts one iteration's findings into catalogue entries:
// every low-knowledge region becomes an epistemic void, every gradient peak a
// critical transition. Voids first, then transitions, each in discovery
// order.
func (l *Loop) identifyGaps(regions []explore.Region, transitions []TransitionPoint) []Gap {
	gaps := make([]Gap, 0, len(regions)+len(transitions))

	for _, r := range regions {
		v := r.Vector
		mapping := l.domainMapping(r.Position)
		gaps = append(gaps, Gap{
			Kind:          EpistemicVoid,
			Position:      r.Position,
			DomainMapping: mapping,
			Severity:      clamp01(1 - stat.Mean(r.Position, nil)),
			Description: fmt.Sprintf(
				"Knowledge void detected in %s with potential for undiscovered capabilities",
				l.dominantDomain(mapping)),
			Vector: &v,
		})
	}

	for _, t := range transitions {
		mapping := l.domainMapping(t.Position)
		gaps = append(gaps, Gap{
			Kind:          CriticalTransition,
			Position:      t.Position,
			DomainMapping: mapping,
			Severity:      t.Magnitude,
			Description: fmt.Sprintf(
				"Critical transition point in %s indicating potential paradigm shift",
				l.dominantDomain(mapping)),
			BifurcationType: t.Type,
			Magnitude:       t.Magnitude,
		})
	}

	return gaps
}

// domainMapping assigns each domain label its coordinate weight at pos.
// Truncated domains map to 0 so the full domain list always appears.
func (l *Loop) domainMapping(pos []float64) map[string]float64 {
	mapping := make(map[string]float64, len(l.domains))
	for i, domain := range l.domains {
		if i < len(pos) {
			mapping[domain] = pos[i]
		} else {
			mapping[domain] = 0
		}
	}

	return mapping
}

// dominantDomain returns the highest-weight domain of a mapping; ties break
// toward the earlier axis so the answer is deterministic.
func (l *Loop) dominantDomain(mapping map[string]float64) string {
	best := l.domains[0]
	for _, domain := range l.domains[1:] {
		if mapping[domain] > mapping[best] {
			best = domain
		}
	}

	return best
}
