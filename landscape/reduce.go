package landscape

import "fmt"

// SimpleEdge is the reduction of one pair's cycles: the sibling with the
// minimum weight, annotated with the winning cycle index.
type SimpleEdge struct {
	// Pair identifies the endpoints.
	Pair Pair

	// CycleIdx is the index of the selected cycle, for traceability.
	CycleIdx int

	// Weight is the selected cycle's value under the reduction key.
	Weight float64

	// Cycle points at the selected cycle record (shared, not copied; the
	// record is immutable by graph contract).
	Cycle *Cycle
}

// SimpleGraph is the reduction output: the multigraph's nodes plus exactly
// one best edge per connected pair.
type SimpleGraph struct {
	// Minima maps node ID to node, copied by reference from the
	// multigraph (nodes are immutable).
	Minima map[int]*Minimum

	// Edges maps each connected pair to its selected edge.
	Edges map[Pair]SimpleEdge
}

// ToSimpleGraph collapses the multigraph: per pair, the cycle with the
// minimum value under weightKey wins. Comparison is strict (<), so on
// exact ties the first minimal cycle in iteration order is kept —
// iteration runs in ascending cycle index, which by the contiguity
// invariant equals insertion order. A cycle lacking weightKey fails the
// reduction with ErrMissingWeight naming the pair and index.
//
// Complexity: O(V + ΣP k).
func ToSimpleGraph(g *Graph, weightKey string) (*SimpleGraph, error) {
	simple := &SimpleGraph{
		Minima: make(map[int]*Minimum, len(g.minima)),
		Edges:  make(map[Pair]SimpleEdge, len(g.cycles)),
	}
	for id, m := range g.minima {
		simple.Minima[id] = m
	}

	for pair, stored := range g.cycles {
		best := SimpleEdge{Pair: pair}
		for idx := 1; idx <= len(stored); idx++ {
			c := stored[idx]
			w, ok := c.Analysis[weightKey]
			if !ok {
				return nil, fmt.Errorf("%w: pair (%d,%d) cycle %d lacks %q",
					ErrMissingWeight, pair.A, pair.B, idx, weightKey)
			}
			if best.Cycle == nil || w < best.Weight {
				best = SimpleEdge{Pair: pair, CycleIdx: idx, Weight: w, Cycle: c}
			}
		}
		simple.Edges[pair] = best
	}

	return simple, nil
}
