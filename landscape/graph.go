package landscape

import (
	"fmt"
	"sort"
)

// AddMinimum inserts a minimum and returns its assigned node ID. IDs are
// assigned sequentially from 1; the graph owns the ID space.
//
// Complexity: O(1).
func (g *Graph) AddMinimum(coords []float64, analysis map[string]float64) int {
	id := g.nextID
	g.nextID++
	g.minima[id] = &Minimum{ID: id, Coords: coords, Analysis: analysis}

	return id
}

// addMinimumWithID restores a node under a fixed ID (persistence path).
func (g *Graph) addMinimumWithID(m *Minimum) error {
	if _, exists := g.minima[m.ID]; exists {
		return fmt.Errorf("%w: id %d", ErrDuplicateMinimum, m.ID)
	}
	g.minima[m.ID] = m
	if m.ID >= g.nextID {
		g.nextID = m.ID + 1
	}

	return nil
}

// Minimum returns the node with the given ID.
//
// Complexity: O(1).
func (g *Graph) Minimum(id int) (*Minimum, error) {
	m, ok := g.minima[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrMinimumNotFound, id)
	}

	return m, nil
}

// MinimumIDs returns all node IDs in ascending order.
//
// Complexity: O(V log V).
func (g *Graph) MinimumIDs() []int {
	ids := make([]int, 0, len(g.minima))
	for id := range g.minima {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Order returns the number of minima.
func (g *Graph) Order() int { return len(g.minima) }

// AddCycle inserts a cycle for the unordered pair (m1, m2) under the given
// cycle index, enforcing every structural invariant:
//
//   - both endpoints exist and differ;
//   - idx continues the pair's contiguous 1..k run (idx == k+1);
//   - at least two images, each of the endpoints' dimension;
//   - len(TargetDistances) == len(PathCoords)-1;
//   - image count >= the previous cycle's image count.
//
// The cycle is stored as given and must not be mutated afterwards.
//
// Complexity: O(images·dim) for the dimension scan.
func (g *Graph) AddCycle(m1, m2, idx int, c *Cycle) error {
	if m1 == m2 {
		return fmt.Errorf("%w: id %d", ErrSelfPair, m1)
	}
	a, err := g.Minimum(m1)
	if err != nil {
		return err
	}
	if _, err = g.Minimum(m2); err != nil {
		return err
	}

	if len(c.PathCoords) < 2 {
		return fmt.Errorf("%w: got %d images", ErrEmptyPath, len(c.PathCoords))
	}
	if len(c.TargetDistances) != len(c.PathCoords)-1 {
		return fmt.Errorf("%w: %d distances for %d images",
			ErrDistanceLength, len(c.TargetDistances), len(c.PathCoords))
	}
	dim := len(a.Coords)
	for i, image := range c.PathCoords {
		if len(image) != dim {
			return fmt.Errorf("%w: image %d has dim %d, want %d",
				ErrDimensionMismatch, i, len(image), dim)
		}
	}

	pair := NewPair(m1, m2)
	prev := len(g.cycles[pair]) // == max index, by contiguity
	if idx != prev+1 {
		return fmt.Errorf("%w: pair (%d,%d) has cycles 1..%d, got index %d",
			ErrCycleGap, pair.A, pair.B, prev, idx)
	}
	if prev > 0 && len(c.PathCoords) < len(g.cycles[pair][prev].PathCoords) {
		return fmt.Errorf("%w: pair (%d,%d) cycle %d has %d images, cycle %d has %d",
			ErrResolutionShrunk, pair.A, pair.B, prev,
			len(g.cycles[pair][prev].PathCoords), idx, len(c.PathCoords))
	}

	if g.cycles[pair] == nil {
		g.cycles[pair] = make(map[int]*Cycle)
	}
	g.cycles[pair][idx] = c

	return nil
}

// Cycle returns the cycle stored for (m1, m2) under the given index.
//
// Complexity: O(1).
func (g *Graph) Cycle(m1, m2, idx int) (*Cycle, error) {
	c, ok := g.cycles[NewPair(m1, m2)][idx]
	if !ok {
		return nil, fmt.Errorf("landscape: pair (%d,%d) has no cycle %d", m1, m2, idx)
	}

	return c, nil
}

// Cycles returns the pair's cycles in ascending index order (nil if the
// pair is unconnected).
//
// Complexity: O(k) for k cycles.
func (g *Graph) Cycles(m1, m2 int) []*Cycle {
	stored := g.cycles[NewPair(m1, m2)]
	if len(stored) == 0 {
		return nil
	}
	out := make([]*Cycle, len(stored))
	for idx := 1; idx <= len(stored); idx++ {
		out[idx-1] = stored[idx]
	}

	return out
}

// MaxCycleIndex returns the highest cycle index present for the pair, or 0
// if the pair is unconnected. Because indices are contiguous this equals
// the pair's cycle count.
//
// Complexity: O(1).
func (g *Graph) MaxCycleIndex(m1, m2 int) int {
	return len(g.cycles[NewPair(m1, m2)])
}

// Pairs returns every connected pair, sorted by (A, B) for deterministic
// iteration.
//
// Complexity: O(P log P).
func (g *Graph) Pairs() []Pair {
	pairs := make([]Pair, 0, len(g.cycles))
	for p := range g.cycles {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}

		return pairs[i].B < pairs[j].B
	})

	return pairs
}
