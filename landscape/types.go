package landscape

import "errors"

// Sentinel errors for graph mutation, reduction and persistence.
var (
	// ErrMinimumNotFound indicates an operation referenced a non-existent
	// minimum ID.
	ErrMinimumNotFound = errors.New("landscape: minimum not found")

	// ErrDuplicateMinimum indicates an insert reused an existing node ID.
	ErrDuplicateMinimum = errors.New("landscape: duplicate minimum")

	// ErrSelfPair indicates a cycle was keyed by a pair of equal IDs.
	ErrSelfPair = errors.New("landscape: pair endpoints must differ")

	// ErrEmptyPath indicates a cycle with fewer than two images.
	ErrEmptyPath = errors.New("landscape: path needs at least two images")

	// ErrCycleGap indicates an inserted cycle index would leave a gap in
	// the pair's 1..k run.
	ErrCycleGap = errors.New("landscape: non-contiguous cycle index")

	// ErrResolutionShrunk indicates a cycle with fewer images than the
	// pair's previous cycle; resolution must never decrease.
	ErrResolutionShrunk = errors.New("landscape: path resolution decreased")

	// ErrDistanceLength indicates len(TargetDistances) != len(PathCoords)-1.
	ErrDistanceLength = errors.New("landscape: target-distance length mismatch")

	// ErrDimensionMismatch indicates an image whose dimension differs from
	// the endpoints' coordinate dimension.
	ErrDimensionMismatch = errors.New("landscape: coordinate dimension mismatch")

	// ErrMissingWeight indicates reduction met a cycle lacking the
	// requested weight key.
	ErrMissingWeight = errors.New("landscape: cycle lacks weight key")

	// ErrNotMultiGraph indicates a persisted blob whose payload is not a
	// landscape multigraph. Loading never coerces.
	ErrNotMultiGraph = errors.New("landscape: not a landscape multigraph")
)

// Minimum is a located landscape low point: a graph node. Immutable once
// added to a Graph.
type Minimum struct {
	// ID uniquely identifies this minimum within its Graph.
	ID int

	// Coords is the flattened coordinate vector of the minimum.
	Coords []float64

	// Analysis holds scalar diagnostics reported by the model at this
	// point (e.g. "train_loss").
	Analysis map[string]float64
}

// Cycle is one NEB refinement round between a pair of minima: a multigraph
// edge. Immutable once inserted.
type Cycle struct {
	// PathCoords is the ordered image sequence, one coordinate vector per
	// image, endpoints included.
	PathCoords [][]float64

	// TargetDistances holds the desired spacing between consecutive
	// images; always len(PathCoords)-1 entries.
	TargetDistances []float64

	// ImageEnergies optionally records the per-image energy at the end of
	// the round; the "highest" fill strategy reads it. May be nil.
	ImageEnergies []float64

	// Analysis holds the round's scalar diagnostics, including whatever
	// key callers use as the cycle weight (e.g. "saddle_loss").
	Analysis map[string]float64
}

// Pair is a normalized unordered pair of minimum IDs: A < B always.
type Pair struct {
	A, B int
}

// NewPair normalizes (m1, m2) into a Pair. Equal endpoints are the
// caller's error and are caught by AddCycle, not here.
func NewPair(m1, m2 int) Pair {
	if m2 < m1 {
		m1, m2 = m2, m1
	}

	return Pair{A: m1, B: m2}
}

// Graph is the landscape discovery multigraph. See the package
// documentation for invariants and the single-writer concurrency model.
type Graph struct {
	// minima maps node ID to node.
	minima map[int]*Minimum

	// cycles maps each connected pair to its cycle records, keyed by
	// cycle index 1..k.
	cycles map[Pair]map[int]*Cycle

	// nextID is the smallest never-assigned node ID; IDs start at 1.
	nextID int
}

// NewGraph creates an empty landscape graph.
func NewGraph() *Graph {
	return &Graph{
		minima: make(map[int]*Minimum),
		cycles: make(map[Pair]map[int]*Cycle),
		nextID: 1,
	}
}
