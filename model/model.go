package model

import (
	"errors"

	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/optim"
)

// ErrDimensionMismatch indicates SetCoords received a vector whose length
// differs from the model's flattened parameter dimension.
var ErrDimensionMismatch = errors.New("model: coordinate dimension mismatch")

// Model is the capability set consumed by the minimum finder and the NEB
// path optimizer. Implementations own their parameter storage; the slices
// returned by Parameters stay aliased for the model's lifetime so an
// optimizer can update them in place.
//
// Implementations need not be safe for concurrent use; the mapping
// algorithms are strictly sequential.
type Model interface {
	// InitialiseRandomly resets the parameters to a random state drawn
	// from the model's own (seeded) source.
	InitialiseRandomly()

	// AdaptToConfig applies a named evaluation mode before a run.
	AdaptToConfig(cfg config.Eval)

	// Parameters exposes the mutable parameter set to an optimizer.
	Parameters() []*optim.Param

	// Apply evaluates the energy at the current coordinates and, when
	// gradient is true, fills every parameter's Grad. Returns the energy.
	Apply(gradient bool) float64

	// Coords returns an independent snapshot of the flattened coordinate
	// vector (the concatenation of all parameter values).
	Coords() []float64

	// SetCoords overwrites the flattened coordinates. The path optimizer
	// uses this to move the model between images.
	SetCoords(coords []float64) error

	// Analyse returns scalar diagnostics of the current state. The
	// minimum finder merges these into the stored node attributes.
	Analyse() map[string]float64
}
