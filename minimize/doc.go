// Package minimize locates single landscape minima by unconstrained
// gradient descent: the entry points of every exploration.
//
// FindMinimum is deterministic for a fixed model seed: the optimizer is
// constructed fresh per call (no accumulator state survives between
// minima) and the model's own seeded source drives the random restart.
package minimize
