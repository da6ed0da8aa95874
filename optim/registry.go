package optim

import (
	"fmt"
	"sort"
)

// constructor builds one algorithm instance bound to params.
type constructor func(params []*Param, args map[string]float64) Optimizer

// registry maps algorithm names to constructors. Populated at package init;
// read-only afterwards.
var registry = map[string]constructor{
	"sgd":  newSGD,
	"adam": newAdam,
}

// New constructs a fresh optimizer instance by registry name.
//
// Every call returns an independent instance: internal state (momentum
// buffers, moment estimates, step counters) starts at zero and is never
// shared. Unknown names return ErrUnknownAlgorithm wrapped with the name
// and the list of registered algorithms.
//
// Complexity: O(P·D) allocation for P params of dimension D.
func New(name string, params []*Param, args map[string]float64) (Optimizer, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownAlgorithm, name, Algorithms())
	}

	return build(params, args), nil
}

// Algorithms returns the registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
