package optim

import "gonum.org/v1/gonum/floats"

// sgd implements stochastic gradient descent with optional momentum and
// weight decay.
//
// Update rule per parameter p:
//
//	g = p.Grad + weight_decay·p.Value
//	v = momentum·v + g
//	p.Value -= lr·v
//
// Arguments (all optional):
//
//	"lr"           - learning rate, default 0.01
//	"momentum"     - velocity retention factor, default 0
//	"weight_decay" - L2 coefficient, default 0
type sgd struct {
	params []*Param
	lr     float64
	mom    float64
	decay  float64

	// velocity[i] shadows params[i]; allocated once at construction.
	velocity [][]float64
	// scratch holds the effective gradient of the current step.
	scratch []float64
}

func newSGD(params []*Param, args map[string]float64) Optimizer {
	maxDim := 0
	velocity := make([][]float64, len(params))
	for i, p := range params {
		velocity[i] = make([]float64, len(p.Value))
		if len(p.Value) > maxDim {
			maxDim = len(p.Value)
		}
	}

	return &sgd{
		params:   params,
		lr:       arg(args, "lr", 0.01),
		mom:      arg(args, "momentum", 0),
		decay:    arg(args, "weight_decay", 0),
		velocity: velocity,
		scratch:  make([]float64, maxDim),
	}
}

// ZeroGrad clears every parameter gradient.
func (s *sgd) ZeroGrad() { zeroGrad(s.params) }

// Step applies one SGD update to every parameter.
func (s *sgd) Step() {
	for i, p := range s.params {
		g := s.scratch[:len(p.Value)]
		copy(g, p.Grad)
		if s.decay != 0 {
			floats.AddScaled(g, s.decay, p.Value)
		}

		v := s.velocity[i]
		floats.Scale(s.mom, v)
		floats.Add(v, g)

		floats.AddScaled(p.Value, -s.lr, v)
	}
}
