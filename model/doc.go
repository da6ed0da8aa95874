// Package model declares the capability set the landscape-mapping
// algorithms require from the system under study, and ships Surface, a
// deterministic analytic landscape used by the CLI, examples and tests.
//
// The core never defines what "energy" means: it only needs a collaborator
// that can randomize itself, adapt to a named evaluation mode, expose its
// parameters to an optimizer, evaluate energy (optionally with gradients),
// snapshot and restore a flat coordinate vector, and report scalar
// diagnostics. Anything satisfying Model can be mapped.
package model
