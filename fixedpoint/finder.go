package fixedpoint

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/epistemica/landscape"
)

// lineBracket bounds the golden-section search parameter t ∈ [−lineBracket, lineBracket]
// along each random direction, in normalized domain units.
const lineBracket = 1.0

// lineSearchIters shrinks the bracket by ~0.618^n; 60 iterations push the
// interval width to ~3e-13, well below the acceptance tolerance.
const lineSearchIters = 60

// invPhi is 1/φ, the golden-section reduction ratio.
const invPhi = 0.6180339887498949

// restartsPerStart is how many fresh random line-search directions a start
// may try before it is discarded.
const restartsPerStart = 4

// Find performs the multi-start stationary-point search over l.
//
// For each of Options.Starts uniformly random starting points in the unit
// domain box, the gradient magnitude is minimized along a few fresh random
// directions with a golden-section line search. The best point of
// a start is accepted only if its gradient magnitude is below
// Options.Tolerance; unconverged starts are discarded, not reported.
//
// Accepted points are classified from the eigenvalues of the field Jacobian.
// The returned list may be empty — a landscape without reachable stationary
// points is a valid, non-error outcome.
//
// Determinism: the start loop consumes one derived RNG stream per start
// index, so the result is identical for identical (landscape, options).
//
// Errors: ErrNilLandscape, ErrOptionViolation.
func Find(l *landscape.Landscape, opts ...Option) ([]FixedPoint, error) {
	if l == nil {
		return nil, ErrNilLandscape
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dims := l.Dims()
	var (
		found     []FixedPoint
		s, r      int
		best, gm  float64
		bestPoint = make([]float64, dims)
		candidate = make([]float64, dims)
	)
	for s = 0; s < o.Starts; s++ {
		rng := rngFromSeed(deriveSeed(o.Seed, uint64(s)))
		start := uniformPoint(rng, dims)

		best = math.Inf(1)
		for r = 0; r < restartsPerStart && best >= o.Tolerance; r++ {
			dir := randomUnit(rng, dims)
			t := goldenMin(func(t float64) float64 {
				along(candidate, start, dir, t)

				return gradientMagnitude(l, candidate)
			}, -lineBracket, lineBracket)

			along(candidate, start, dir, t)
			gm = gradientMagnitude(l, candidate)
			if gm < best {
				best = gm
				copy(bestPoint, candidate)
			}
		}
		if best >= o.Tolerance {
			continue // unconverged start: recovered locally, never surfaced
		}

		fp, ok := classify(l, bestPoint)
		if !ok {
			continue // eigen decomposition failed: discard like non-convergence
		}
		found = append(found, fp)
	}

	return found, nil
}

// along writes dst = start + t·dir.
func along(dst, start, dir []float64, t float64) {
	for i := range dst {
		dst[i] = start[i] + t*dir[i]
	}
}

// gradientMagnitude returns ‖ignorance gradient‖₂ at p. The point length is
// guaranteed by the callers, so the landscape error path is unreachable.
func gradientMagnitude(l *landscape.Landscape, p []float64) float64 {
	grad, _ := l.IgnoranceGradient(p)

	return floats.Norm(grad, 2)
}

// goldenMin runs a fixed-iteration golden-section minimization of f on [lo,hi]
// and returns the midpoint of the final bracket. Deterministic by construction:
// a fixed probe order and a fixed iteration count.
func goldenMin(f func(float64) float64, lo, hi float64) float64 {
	a, b := lo, hi
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)

	for i := 0; i < lineSearchIters; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}

	return (a + b) / 2
}

// classify builds the FixedPoint record for an accepted position: Jacobian
// eigenvalues, stability class by real-part signs, and the local potential.
// Returns ok=false when the eigen decomposition does not converge; callers
// treat that like any other discarded start.
func classify(l *landscape.Landscape, position []float64) (FixedPoint, bool) {
	jac, _ := l.Jacobian(position) // length guaranteed by Find

	var eig mat.Eigen
	if ok := eig.Factorize(jac, mat.EigenNone); !ok {
		return FixedPoint{}, false
	}
	values := eig.Values(nil)

	allNeg, allPos := true, true
	stability := math.Inf(-1)
	for _, v := range values {
		re := real(v)
		if re >= 0 {
			allNeg = false
		}
		if re <= 0 {
			allPos = false
		}
		if re > stability {
			stability = re
		}
	}

	class := Saddle
	switch {
	case allNeg:
		class = Sink
	case allPos:
		class = Source
	}

	potential, _ := l.Potential(position)
	pos := make([]float64, len(position))
	copy(pos, position)

	return FixedPoint{
		Position:           pos,
		Type:               class,
		Eigenvalues:        values,
		Stability:          stability,
		KnowledgePotential: potential,
	}, true
}
