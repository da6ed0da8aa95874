package neb

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/optim"
)

// PathModel couples a wrapped model to a discretized path and exposes the
// interior images as optimizer parameters.
//
// Per evaluation, each image's energy is measured by moving the wrapped
// model onto it. With gradients requested, every interior image receives
// the nudged gradient: the raw gradient minus its component along the path
// tangent, plus a spring term pulling the image spacing toward the target
// distances. Endpoints are pinned and never appear in Parameters.
type PathModel struct {
	wrapped model.Model
	spring  float64

	// images are owned copies; params[i-1].Value aliases images[i] for
	// interior i so the optimizer updates the path directly.
	images   [][]float64
	dists    []float64
	params   []*optim.Param
	energies []float64

	// rawGrad[i] stores ∇E at image i before nudging; tangent is scratch.
	rawGrad [][]float64
	tangent []float64
}

// NewPathModel builds a path model over copies of path. The wrapped
// model's coordinate dimension must match the images'.
func NewPathModel(m model.Model, path [][]float64, dists []float64, spring float64) (*PathModel, error) {
	if err := validatePath(path, dists); err != nil {
		return nil, err
	}
	dim := len(path[0])
	if got := len(m.Coords()); got != dim {
		return nil, fmt.Errorf("%w: model has dim %d, path has %d", ErrDimensionMismatch, got, dim)
	}

	n := len(path)
	pm := &PathModel{
		wrapped:  m,
		spring:   spring,
		images:   make([][]float64, n),
		dists:    clone(dists),
		params:   make([]*optim.Param, 0, n-2),
		energies: make([]float64, n),
		rawGrad:  make([][]float64, n),
		tangent:  make([]float64, dim),
	}
	for i := range path {
		pm.images[i] = clone(path[i])
		pm.rawGrad[i] = make([]float64, dim)
	}
	for i := 1; i < n-1; i++ {
		pm.params = append(pm.params, &optim.Param{
			Value: pm.images[i],
			Grad:  make([]float64, dim),
		})
	}

	return pm, nil
}

// Parameters exposes one parameter per interior image.
func (pm *PathModel) Parameters() []*optim.Param { return pm.params }

// Apply evaluates every image and, when gradient is true, overwrites the
// interior parameters' gradients with the nudged band gradient. Returns
// the peak image energy, the current saddle estimate.
//
// Complexity: O(images · cost(wrapped.Apply)).
func (pm *PathModel) Apply(gradient bool) float64 {
	n := len(pm.images)
	dim := len(pm.tangent)

	for i, image := range pm.images {
		// Endpoints are pinned; their gradient is never consumed.
		needGrad := gradient && i > 0 && i < n-1
		_ = pm.wrapped.SetCoords(image) // dimension checked at construction
		pm.energies[i] = pm.wrapped.Apply(needGrad)
		if needGrad {
			gatherGrad(pm.wrapped, pm.rawGrad[i])
		}
	}

	if gradient {
		for i := 1; i < n-1; i++ {
			prev := mat.NewVecDense(dim, pm.images[i-1])
			cur := mat.NewVecDense(dim, pm.images[i])
			next := mat.NewVecDense(dim, pm.images[i+1])

			// Central tangent through the neighbors, unit length.
			copy(pm.tangent, pm.images[i+1])
			floats.Sub(pm.tangent, pm.images[i-1])
			if norm := floats.Norm(pm.tangent, 2); norm > 0 {
				floats.Scale(1/norm, pm.tangent)
			}

			dPrev := distance(cur, prev)
			dNext := distance(next, cur)

			grad := pm.params[i-1].Grad
			copy(grad, pm.rawGrad[i])

			// Remove the parallel component of the raw gradient.
			parallel := floats.Dot(grad, pm.tangent)
			floats.AddScaled(grad, -parallel, pm.tangent)

			// Spring term along the tangent: images drift until both
			// neighboring spacings match their targets.
			force := pm.spring * ((dNext - pm.dists[i]) - (dPrev - pm.dists[i-1]))
			floats.AddScaled(grad, -force, pm.tangent)
		}
	}

	return floats.Max(pm.energies)
}

// Analyse re-evaluates the path without gradients and reports its scalar
// diagnostics: the saddle estimate (peak image energy), the mean image
// energy and the total path length.
func (pm *PathModel) Analyse() map[string]float64 {
	pm.Apply(false)

	length := 0.0
	dim := len(pm.tangent)
	for i := 0; i+1 < len(pm.images); i++ {
		length += distance(
			mat.NewVecDense(dim, pm.images[i+1]),
			mat.NewVecDense(dim, pm.images[i]),
		)
	}

	return map[string]float64{
		"saddle_loss": floats.Max(pm.energies),
		"mean_loss":   stat.Mean(pm.energies, nil),
		"path_length": length,
	}
}

// PathCoords returns a detached deep copy of the current path, independent
// of the optimizer's aliased storage.
func (pm *PathModel) PathCoords() [][]float64 {
	out := make([][]float64, len(pm.images))
	for i, image := range pm.images {
		out[i] = clone(image)
	}

	return out
}

// ImageEnergies returns a copy of the energies from the last evaluation.
func (pm *PathModel) ImageEnergies() []float64 { return clone(pm.energies) }

// distance is the Euclidean distance between two vectors.
func distance(a, b *mat.VecDense) float64 {
	var d mat.VecDense
	d.SubVec(a, b)

	return mat.Norm(&d, 2)
}

// gatherGrad concatenates the wrapped model's parameter gradients into
// dst, the flat-coordinate gradient.
func gatherGrad(m model.Model, dst []float64) {
	at := 0
	for _, p := range m.Parameters() {
		copy(dst[at:], p.Grad)
		at += len(p.Grad)
	}
}
