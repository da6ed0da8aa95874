package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/optim"
)

// defaultSurfaceSeed is the fixed seed used when callers pass seed==0,
// keeping default constructions reproducible.
const defaultSurfaceSeed int64 = 1

// surfaceSpan bounds both well centers and random initialization.
const surfaceSpan = 4.0

// Surface is a deterministic analytic energy landscape: a quadratic
// confinement term minus a mixture of Gaussian wells,
//
//	E(x) = λ/2·|x|² − Σᵢ dᵢ·exp(−|x−cᵢ|² / (2wᵢ²))
//
// which yields one local minimum near each well center. The gradient is
// analytic, so Surface exercises every Model capability without any
// training data. All randomness (well placement, InitialiseRandomly) flows
// from a single seeded source: same seed ⇒ identical landscape and
// identical initializations, across runs and platforms.
type Surface struct {
	dim     int
	lambda  float64
	centers [][]float64
	depths  []float64
	widths  []float64

	param *optim.Param
	rng   *rand.Rand
	mode  string

	// diff is scratch for x−cᵢ, reused across evaluations.
	diff []float64
}

// NewSurface builds a landscape of the given dimension with `wells`
// Gaussian wells placed by the seeded source. seed==0 selects a fixed
// default seed; wells < 1 is clamped to 1.
func NewSurface(dim, wells int, seed int64) *Surface {
	if wells < 1 {
		wells = 1
	}
	if seed == 0 {
		seed = defaultSurfaceSeed
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Surface{
		dim:     dim,
		lambda:  0.1,
		centers: make([][]float64, wells),
		depths:  make([]float64, wells),
		widths:  make([]float64, wells),
		param:   optim.NewParam(dim),
		rng:     rng,
		mode:    "full",
		diff:    make([]float64, dim),
	}
	for i := 0; i < wells; i++ {
		c := make([]float64, dim)
		for j := range c {
			c[j] = (rng.Float64()*2 - 1) * surfaceSpan
		}
		s.centers[i] = c
		s.depths[i] = 1 + rng.Float64()   // depth in [1, 2)
		s.widths[i] = 0.5 + rng.Float64() // width in [0.5, 1.5)
	}

	return s
}

// Dim returns the coordinate dimension.
func (s *Surface) Dim() int { return s.dim }

// InitialiseRandomly draws fresh coordinates uniformly from the landscape
// span, consuming the Surface's own seeded source.
func (s *Surface) InitialiseRandomly() {
	for j := range s.param.Value {
		s.param.Value[j] = (s.rng.Float64()*2 - 1) * surfaceSpan
	}
}

// AdaptToConfig records the evaluation mode. Surface has no batched
// regime, so the mode only shows up in diagnostics.
func (s *Surface) AdaptToConfig(cfg config.Eval) { s.mode = cfg.Mode }

// Parameters exposes the single coordinate parameter.
func (s *Surface) Parameters() []*optim.Param { return []*optim.Param{s.param} }

// Apply evaluates the energy and, when gradient is true, overwrites the
// parameter gradient with the analytic ∇E.
func (s *Surface) Apply(gradient bool) float64 {
	x := s.param.Value

	// Confinement term and its gradient.
	energy := 0.5 * s.lambda * floats.Dot(x, x)
	if gradient {
		copy(s.param.Grad, x)
		floats.Scale(s.lambda, s.param.Grad)
	}

	// Gaussian wells.
	for i, c := range s.centers {
		copy(s.diff, x)
		floats.Sub(s.diff, c)
		w2 := s.widths[i] * s.widths[i]
		g := s.depths[i] * math.Exp(-floats.Dot(s.diff, s.diff)/(2*w2))
		energy -= g
		if gradient {
			// d/dx of −dᵢ·exp(...) is +g·(x−cᵢ)/wᵢ².
			floats.AddScaled(s.param.Grad, g/w2, s.diff)
		}
	}

	return energy
}

// Coords returns an independent copy of the coordinate vector.
func (s *Surface) Coords() []float64 {
	out := make([]float64, s.dim)
	copy(out, s.param.Value)

	return out
}

// SetCoords overwrites the coordinate vector.
func (s *Surface) SetCoords(coords []float64) error {
	if len(coords) != s.dim {
		return ErrDimensionMismatch
	}
	copy(s.param.Value, coords)

	return nil
}

// Analyse reports the current energy under the conventional key.
func (s *Surface) Analyse() map[string]float64 {
	return map[string]float64{"train_loss": s.Apply(false)}
}
