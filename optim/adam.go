package optim

import "math"

// adam implements the Adam algorithm (Kingma & Ba 2015) with bias-corrected
// first and second moment estimates.
//
// Arguments (all optional):
//
//	"lr"    - learning rate, default 0.001
//	"beta1" - first-moment decay, default 0.9
//	"beta2" - second-moment decay, default 0.999
//	"eps"   - denominator fuzz, default 1e-8
type adam struct {
	params []*Param
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64

	// t counts completed steps; bias correction depends on it.
	t int
	// m and v are the first/second moment accumulators per parameter.
	m [][]float64
	v [][]float64
}

func newAdam(params []*Param, args map[string]float64) Optimizer {
	m := make([][]float64, len(params))
	v := make([][]float64, len(params))
	for i, p := range params {
		m[i] = make([]float64, len(p.Value))
		v[i] = make([]float64, len(p.Value))
	}

	return &adam{
		params: params,
		lr:     arg(args, "lr", 0.001),
		beta1:  arg(args, "beta1", 0.9),
		beta2:  arg(args, "beta2", 0.999),
		eps:    arg(args, "eps", 1e-8),
		m:      m,
		v:      v,
	}
}

// ZeroGrad clears every parameter gradient.
func (a *adam) ZeroGrad() { zeroGrad(a.params) }

// Step applies one Adam update to every parameter.
func (a *adam) Step() {
	a.t++
	// Bias corrections for the moment estimates at step t.
	c1 := 1 - math.Pow(a.beta1, float64(a.t))
	c2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, p := range a.params {
		m, v := a.m[i], a.v[i]
		for j, g := range p.Grad {
			m[j] = a.beta1*m[j] + (1-a.beta1)*g
			v[j] = a.beta2*v[j] + (1-a.beta2)*g*g

			mHat := m[j] / c1
			vHat := v[j] / c2
			p.Value[j] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}
