package landscape

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// graphSnapshot is the flat serialized form of a Graph. The runtime maps
// are rebuilt on load through the validating insert path, so a loaded
// graph satisfies the same invariants as one built live.
type graphSnapshot struct {
	Minima []Minimum
	Edges  []edgeRecord
}

// edgeRecord is one persisted cycle with its pair and index key.
type edgeRecord struct {
	M1, M2   int
	CycleIdx int
	Cycle    Cycle
}

func init() {
	// The envelope carries the payload as an interface value so that Load
	// can verify what the blob actually holds instead of coercing bytes
	// into the expected shape.
	gob.Register(&graphSnapshot{})
}

// Save writes the graph to w. The snapshot lists nodes by ascending ID and
// edges by ascending (pair, cycle index), so load-time validation replays
// insertions in their original order.
func Save(w io.Writer, g *Graph) error {
	snap := &graphSnapshot{
		Minima: make([]Minimum, 0, len(g.minima)),
		Edges:  make([]edgeRecord, 0),
	}
	for _, id := range g.MinimumIDs() {
		snap.Minima = append(snap.Minima, *g.minima[id])
	}
	for _, pair := range g.Pairs() {
		stored := g.cycles[pair]
		for idx := 1; idx <= len(stored); idx++ {
			snap.Edges = append(snap.Edges, edgeRecord{
				M1: pair.A, M2: pair.B, CycleIdx: idx, Cycle: *stored[idx],
			})
		}
	}

	var payload any = snap
	if err := gob.NewEncoder(w).Encode(&payload); err != nil {
		return fmt.Errorf("landscape: encode graph: %w", err)
	}

	return nil
}

// Load reads a persisted graph from r and validates its structure: the
// decoded payload must be a landscape multigraph snapshot, anything else
// fails with ErrNotMultiGraph naming the payload's actual type. The
// rebuilt graph passes through the normal insert path, so structural
// invariants (contiguity, distance lengths, monotone resolution) are
// re-checked on load.
func Load(r io.Reader) (*Graph, error) {
	var payload any
	if err := gob.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("landscape: decode graph: %w", err)
	}
	snap, ok := payload.(*graphSnapshot)
	if !ok {
		return nil, fmt.Errorf("%w: payload holds %T", ErrNotMultiGraph, payload)
	}

	return snap.restore()
}

// SaveFile persists the graph to path, truncating any existing file.
func SaveFile(path string, g *Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("landscape: create %s: %w", path, err)
	}
	if err = Save(f, g); err != nil {
		f.Close()

		return fmt.Errorf("landscape: %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("landscape: close %s: %w", path, err)
	}

	return nil
}

// LoadFile loads a persisted graph, wrapping failures (including the
// structural ErrNotMultiGraph) with the offending file name.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("landscape: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("landscape: %s: %w", path, err)
	}

	return g, nil
}

// restore rebuilds a runtime Graph from a snapshot via the validating
// insert path.
func (snap *graphSnapshot) restore() (*Graph, error) {
	g := NewGraph()
	for i := range snap.Minima {
		m := snap.Minima[i]
		if err := g.addMinimumWithID(&m); err != nil {
			return nil, err
		}
	}
	for i := range snap.Edges {
		rec := snap.Edges[i]
		c := rec.Cycle
		if err := g.AddCycle(rec.M1, rec.M2, rec.CycleIdx, &c); err != nil {
			return nil, err
		}
	}

	return g, nil
}
