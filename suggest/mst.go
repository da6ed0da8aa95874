package suggest

import (
	"sort"

	"github.com/katalvlaran/autoneb/landscape"
)

// MST proposes the connection most worth refining: among the edges of the
// minimum spanning tree of the reduced landscape — the backbone every
// between-minima route runs through — the one with the worst saddle
// relative to its endpoints, as long as its pair has refinement budget
// left.
//
// The uncertainty score of an edge is its best-cycle weight minus the
// higher of the two endpoint values when both minima carry the value key
// (a barrier far above its endpoints is the least trustworthy estimate),
// and the raw weight otherwise.
type MST struct {
	// maxRefinements caps how many cycles a pair may accumulate before
	// the engine stops proposing it.
	maxRefinements int
}

// NewMST builds the engine. maxRefinements < 1 is clamped to 1.
func NewMST(maxRefinements int) *MST {
	if maxRefinements < 1 {
		maxRefinements = 1
	}

	return &MST{maxRefinements: maxRefinements}
}

// Suggest reduces the multigraph by weightKey, computes the MST of the
// reduction via Kruskal and proposes the qualifying MST edge with the
// highest uncertainty score. Abstains when the graph has no edges, when
// reduction fails (a cycle lacking the weight key cannot be ranked) or
// when every MST edge has exhausted its refinement budget. Deterministic:
// ties resolve to the smaller pair.
//
// Complexity: O(E log E) over the reduced edges.
func (e *MST) Suggest(g *landscape.Graph, valueKey, weightKey string) (int, int, bool) {
	simple, err := landscape.ToSimpleGraph(g, weightKey)
	if err != nil || len(simple.Edges) == 0 {
		return 0, 0, false
	}

	tree := kruskal(simple)

	best := landscape.Pair{}
	bestScore := 0.0
	found := false
	for _, edge := range tree {
		if g.MaxCycleIndex(edge.Pair.A, edge.Pair.B) >= e.maxRefinements {
			continue
		}
		score := e.score(simple, edge, valueKey)
		if !found || score > bestScore {
			best, bestScore, found = edge.Pair, score, true
		}
	}
	if !found {
		return 0, 0, false
	}

	return best.A, best.B, true
}

// score computes the edge's uncertainty: saddle weight minus the higher
// endpoint value when both endpoints carry valueKey, raw weight otherwise.
func (e *MST) score(simple *landscape.SimpleGraph, edge landscape.SimpleEdge, valueKey string) float64 {
	a, okA := simple.Minima[edge.Pair.A].Analysis[valueKey]
	b, okB := simple.Minima[edge.Pair.B].Analysis[valueKey]
	if !okA || !okB {
		return edge.Weight
	}
	floor := a
	if b > floor {
		floor = b
	}

	return edge.Weight - floor
}

// kruskal computes the MST of the reduced graph with a union-find (path
// compression + union by rank). Edges are sorted by ascending weight with
// a stable sort, ties keeping the deterministic pair order, so the tree is
// reproducible for a given reduction.
func kruskal(simple *landscape.SimpleGraph) []landscape.SimpleEdge {
	edges := make([]landscape.SimpleEdge, 0, len(simple.Edges))
	for _, edge := range simple.Edges {
		edges = append(edges, edge)
	}
	// Fix iteration order before the weight sort so equal weights break
	// ties identically across runs.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Pair.A != edges[j].Pair.A {
			return edges[i].Pair.A < edges[j].Pair.A
		}

		return edges[i].Pair.B < edges[j].Pair.B
	})
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make(map[int]int, len(simple.Minima))
	rank := make(map[int]int, len(simple.Minima))
	for id := range simple.Minima {
		parent[id] = id
	}

	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	tree := make([]landscape.SimpleEdge, 0, len(simple.Minima))
	for _, edge := range edges {
		ru, rv := find(edge.Pair.A), find(edge.Pair.B)
		if ru == rv {
			continue
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}
		tree = append(tree, edge)
	}

	return tree
}
