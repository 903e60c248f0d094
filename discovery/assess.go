package discovery

// Assessment is a point-in-time reading of the epistemic state: where the
// engine sits, how dense the knowledge field is there and which way the
// ignorance gradient points.
type Assessment struct {
	// Coordinates of the assessed point.
	Coordinates []float64

	// Entropy of the assessed point.
	Entropy float64

	// CompetencyDistribution assigns each domain label its coordinate weight;
	// truncated domains carry weight 0.
	CompetencyDistribution map[string]float64

	// KnowledgeDensity is the field potential at the point.
	KnowledgeDensity float64

	// GradientDirection is the ignorance gradient at the point.
	GradientDirection []float64
}

// Assess evaluates the knowledge field at the given epistemic point. Pure
// read; the loop state does not change.
func (l *Loop) Assess(p EpistemicPoint) Assessment {
	density, _ := l.field.Potential(p.Coordinates) // lengths fixed at construction
	grad, _ := l.field.IgnoranceGradient(p.Coordinates)

	coords := make([]float64, len(p.Coordinates))
	copy(coords, p.Coordinates)

	return Assessment{
		Coordinates:            coords,
		Entropy:                p.Entropy,
		CompetencyDistribution: l.domainMapping(p.Coordinates),
		KnowledgeDensity:       density,
		GradientDirection:      grad,
	}
}
