package landscape

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Landscape is an immutable Gaussian-mixture potential field over a
// dims-dimensional domain space.
//
// A Landscape is safe for concurrent readers: all methods are pure and no
// method mutates internal state.
type Landscape struct {
	dims    int
	centers []Center
}

// New validates the configuration and builds a Landscape.
//
// Contract: dims ≥ 1; every center position has length dims; every center
// spread is strictly positive. Centers are deep-copied, so the caller may
// reuse or mutate its slice afterwards. An empty center list is valid and
// yields a uniformly zero potential.
//
// Errors: ErrNoDimensions, ErrDimensionMismatch, ErrBadSpread.
// Complexity: O(c·d).
func New(dims int, centers []Center) (*Landscape, error) {
	if dims < 1 {
		return nil, ErrNoDimensions
	}

	cs := make([]Center, 0, len(centers))
	for _, c := range centers {
		if len(c.Position) != dims {
			return nil, ErrDimensionMismatch
		}
		if c.Spread <= 0 {
			return nil, ErrBadSpread
		}
		cs = append(cs, c.clone())
	}

	return &Landscape{dims: dims, centers: cs}, nil
}

// Dims returns the dimensionality of the domain space.
func (l *Landscape) Dims() int { return l.dims }

// Centers returns a deep copy of the center list, in construction order.
func (l *Landscape) Centers() []Center {
	cs := make([]Center, 0, len(l.centers))
	for _, c := range l.centers {
		cs = append(cs, c.clone())
	}

	return cs
}

// Scaled returns a new Landscape whose center strengths are multiplied by
// factor; positions and spreads are unchanged. This is the parameter hook
// consumed by bifurcation sweeps.
//
// Complexity: O(c·d).
func (l *Landscape) Scaled(factor float64) *Landscape {
	cs := make([]Center, 0, len(l.centers))
	for _, c := range l.centers {
		s := c.clone()
		s.Strength *= factor
		cs = append(cs, s)
	}

	return &Landscape{dims: l.dims, centers: cs}
}

// Potential returns the knowledge density at point:
//
//	Σ over centers of strength · exp(−‖point − center‖² / spread)
//
// Arbitrary points are accepted, including points outside the unit box;
// far-away points simply yield a small potential. The point length must
// equal Dims() — a mismatched point yields ErrDimensionMismatch.
//
// Complexity: O(c·d).
func (l *Landscape) Potential(point []float64) (float64, error) {
	if len(point) != l.dims {
		return 0, ErrDimensionMismatch
	}

	var (
		potential float64
		dist      float64
	)
	for _, c := range l.centers {
		dist = floats.Distance(point, c.Position, 2)
		potential += c.Strength * math.Exp(-dist*dist/c.Spread)
	}

	return potential, nil
}

// IgnoranceGradient returns the central finite-difference gradient of the
// negated potential at point. The result points toward regions of maximum
// ignorance (least knowledge).
//
// Step size is gradStep (1e-6) along each axis; the returned slice is freshly
// allocated.
//
// Complexity: O(c·d²).
func (l *Landscape) IgnoranceGradient(point []float64) ([]float64, error) {
	if len(point) != l.dims {
		return nil, ErrDimensionMismatch
	}

	grad := make([]float64, l.dims)
	probe := make([]float64, l.dims)
	copy(probe, point)

	var i int
	var plus, minus float64
	for i = 0; i < l.dims; i++ {
		probe[i] = point[i] + gradStep
		plus, _ = l.Potential(probe) // length already validated
		probe[i] = point[i] - gradStep
		minus, _ = l.Potential(probe)
		probe[i] = point[i] // restore axis before moving on

		grad[i] = -(plus - minus) / (2 * gradStep)
	}

	return grad, nil
}

// Jacobian returns the dims×dims finite-difference Jacobian of the ignorance
// gradient at point, the local linearization used for stability analysis.
// Column j holds ∂g/∂x_j approximated with a central difference of gradStep.
//
// Complexity: O(c·d³).
func (l *Landscape) Jacobian(point []float64) (*mat.Dense, error) {
	if len(point) != l.dims {
		return nil, ErrDimensionMismatch
	}

	jac := mat.NewDense(l.dims, l.dims, nil)
	probe := make([]float64, l.dims)
	copy(probe, point)

	var i, j int
	var gradPlus, gradMinus []float64
	for j = 0; j < l.dims; j++ {
		probe[j] = point[j] + gradStep
		gradPlus, _ = l.IgnoranceGradient(probe) // length already validated
		probe[j] = point[j] - gradStep
		gradMinus, _ = l.IgnoranceGradient(probe)
		probe[j] = point[j]

		for i = 0; i < l.dims; i++ {
			jac.Set(i, j, (gradPlus[i]-gradMinus[i])/(2*gradStep))
		}
	}

	return jac, nil
}
