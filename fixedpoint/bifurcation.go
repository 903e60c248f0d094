package fixedpoint

import (
	"github.com/katalvlaran/epistemica/landscape"
)

// Sweep evaluates the fixed-point search across a linearly spaced parameter
// range and reports every structural transition of the landscape.
//
// The parameter is applied by scaling all center strengths
// (landscape.Scaled), so from/to are strength multipliers. For each of the
// steps samples, Find runs with an independent derived RNG stream; a
// Bifurcation is emitted whenever the fixed-point count differs between
// consecutive samples: SaddleNode when the count increases, Collision when it
// decreases.
//
// The sweep is independent of the discovery loop and is intended for
// diagnostics. An empty result means the fixed-point count was stable across
// the whole range — a valid outcome.
//
// Errors: ErrNilLandscape, ErrBadSweep, ErrOptionViolation.
// Complexity: steps × Find.
func Sweep(l *landscape.Landscape, from, to float64, steps int, opts ...Option) ([]Bifurcation, error) {
	if l == nil {
		return nil, ErrNilLandscape
	}
	if steps < 2 {
		return nil, ErrBadSweep
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		bifurcations []Bifurcation
		param        float64
		count        int
		prev         = -1 // no previous sample yet
	)
	for i := 0; i < steps; i++ {
		param = from + (to-from)*float64(i)/float64(steps-1)

		points, err := Find(
			l.Scaled(param),
			WithStarts(o.Starts),
			WithTolerance(o.Tolerance),
			WithSeed(deriveSeed(o.Seed, uint64(i))),
		)
		if err != nil {
			return nil, err
		}
		count = len(points)

		if prev >= 0 && count != prev {
			kind := Collision
			if count > prev {
				kind = SaddleNode
			}
			bifurcations = append(bifurcations, Bifurcation{
				Parameter:         param,
				Kind:              kind,
				FixedPointsBefore: prev,
				FixedPointsAfter:  count,
			})
		}
		prev = count
	}

	return bifurcations, nil
}
