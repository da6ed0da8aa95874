// Package autoneb maps the connectivity of multi-minima energy landscapes.
//
// The module discovers landscape minima, connects pairs of them with
// progressively refined Nudged-Elastic-Band (NEB) paths, records every
// refinement round as a resumable multigraph edge, and reduces the result
// to the best simple connectivity graph.
//
// This root package is the cycle manager — the algorithm the module is
// named after: it drives repeated NEB rounds for one minima pair, resuming
// from whatever cycles the landscape graph already holds, and persists one
// cycle-indexed multi-edge per round. Asking it to produce zero new cycles
// (a pair already at the configured cycle count) is a caller bug and fails
// with ErrCycleBudget.
//
// The surrounding machinery lives in focused subpackages:
//
//	landscape/ — the discovery multigraph: Minimum nodes, Cycle
//	             multi-edges, reduction to a simple graph, persistence
//	             with structural validation
//	minimize/  — minimum finder (unconstrained gradient descent)
//	neb/       — one NEB round: fill strategies + nudged path relaxation
//	suggest/   — pluggable engines proposing the next pair to refine
//	explore/   — the exploration loop driving suggest → autoneb until
//	             the engines are exhausted
//	optim/     — name-registered gradient algorithms (SGD, Adam)
//	model/     — the capability set required from the system under study,
//	             plus a deterministic analytic test landscape
//	config/    — YAML-loadable hyperparameter sets with validation
//	cmd/       — the autoneb CLI (explore, reduce)
//
// A typical run: find N minima with minimize.FindMinimum, add them to a
// landscape.Graph, let explore.Run refine pairs until every suggestion
// engine abstains, then landscape.ToSimpleGraph picks the best cycle per
// pair.
package autoneb
