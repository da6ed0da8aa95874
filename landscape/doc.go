// Package landscape defines the discovery multigraph at the heart of the
// mapper: Minimum nodes (located landscape low points) connected by Cycle
// multi-edges (NEB refinement rounds), keyed per unordered pair by a
// contiguous cycle index.
//
// Invariants, enforced at insertion time and therefore holding for every
// reachable Graph:
//
//   - For every pair with at least one cycle, the cycle indices form the
//     contiguous run 1..k: resumption always continues from k+1.
//   - Every cycle carries exactly len(PathCoords)-1 target distances.
//   - Resolution never decreases: cycle i+1 has at least as many images
//     as cycle i.
//   - Every image has the minima's coordinate dimension.
//
// Nodes and cycles are immutable once inserted; callers must not mutate
// the stored slices afterwards.
//
// Concurrency: Graph takes no locks. It has a single logical writer (the
// exploration loop / cycle manager); concurrent readers of a quiescent
// graph are safe, concurrent writes are not supported and must be
// serialized externally if ever introduced.
//
// The package also provides reduction to a simple best-edge-per-pair graph
// (reduce.go) and persistence with structural validation (persist.go).
//
// Errors:
//
//	ErrMinimumNotFound   - referenced node does not exist.
//	ErrDuplicateMinimum  - node ID inserted twice.
//	ErrSelfPair          - both endpoints are the same minimum.
//	ErrCycleGap          - inserted cycle index would break contiguity.
//	ErrResolutionShrunk  - inserted cycle has fewer images than its predecessor.
//	ErrDistanceLength    - target-distance length != image count − 1.
//	ErrDimensionMismatch - image dimension differs from the minima's.
//	ErrMissingWeight     - reduction found a cycle without the weight key.
//	ErrNotMultiGraph     - persisted blob does not hold a landscape multigraph.
package landscape
