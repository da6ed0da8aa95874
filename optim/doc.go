// Package optim provides the gradient-descent algorithms the minimum finder
// and the NEB path optimizer step with, constructed by name from a fixed
// registry.
//
// Why a registry: callers configure the algorithm as a string
// (config.Optim.Algorithm), and an unknown name must fail loudly at
// construction instead of being discovered mid-run. New looks the name up,
// builds a fresh instance bound to the given parameters and returns it;
// there is no reflective dispatch and no fallback.
//
// Statefulness: algorithms like SGD-with-momentum and Adam accumulate
// internal state across steps. That state lives inside the instance New
// returns and dies with it; every optimization run constructs its own
// instance, so no accumulator ever leaks between runs. Reproducibility of
// the surrounding algorithms depends on this.
//
// An optimizer over an empty parameter set is valid and steps as a no-op;
// a fully degenerate path (endpoints only) relaxes nothing.
//
// Errors:
//
//	ErrUnknownAlgorithm - the requested name is not registered.
package optim
