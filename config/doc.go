// Package config defines the immutable hyperparameter sets consumed by the
// minimum finder, the NEB path optimizer, the cycle manager and the
// exploration loop, together with YAML loading and validation.
//
// Configuration values are supplied per call and never mutated by the
// algorithms. Validate applies documented defaults and reports the first
// offending field wrapped around ErrInvalidConfig, so callers can rely on a
// validated config being fully populated.
//
// Structure mirrors the call hierarchy:
//
//	Exploration
//	└── AutoNEB           (one cycle-manager invocation)
//	    └── []NEB         (one entry per refinement cycle)
//	        └── Optim     (one optimizer run)
//	            └── Eval  (evaluation mode the model adapts to)
//
// Errors:
//
//	ErrInvalidConfig - a field failed validation; the wrap names the field.
package config
