package optim

import "errors"

// ErrUnknownAlgorithm indicates the requested algorithm name is not
// present in the registry. This is a fatal configuration error.
var ErrUnknownAlgorithm = errors.New("optim: unknown algorithm")

// Param is one independently updated parameter vector. A model exposes its
// parameters as a slice of Param; Value is updated in place by Step and
// Grad is filled by the model's Apply and consumed by Step.
//
// Value and Grad must have equal length and the model must keep both slices
// alive (not reallocate them) for the optimizer's lifetime: the optimizer
// aliases them rather than copying.
type Param struct {
	// Value is the current parameter vector, updated in place.
	Value []float64

	// Grad is the gradient of the loss w.r.t. Value, overwritten by the
	// model on every evaluation.
	Grad []float64
}

// Optimizer is one run of a gradient algorithm over a fixed parameter set.
//
// ZeroGrad clears every parameter's gradient; Step consumes the current
// gradients and updates the values. Neither allocates after construction.
type Optimizer interface {
	ZeroGrad()
	Step()
}

// NewParam allocates a Param of dimension dim with zeroed value and
// gradient.
func NewParam(dim int) *Param {
	return &Param{
		Value: make([]float64, dim),
		Grad:  make([]float64, dim),
	}
}

// zeroGrad clears the gradients of every parameter; shared by all
// registered algorithms.
func zeroGrad(params []*Param) {
	for _, p := range params {
		for i := range p.Grad {
			p.Grad[i] = 0
		}
	}
}

// arg reads a named argument with a default for absent keys. Present keys
// win even when zero, so callers can explicitly disable e.g. momentum.
func arg(args map[string]float64, key string, def float64) float64 {
	if v, ok := args[key]; ok {
		return v
	}

	return def
}
