package autoneb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/neb"
)

// ErrCycleBudget indicates the manager was invoked for a pair whose resume
// index already exceeds the configured cycle count: a precondition
// violation in the caller's resume state, not a recoverable condition.
var ErrCycleBudget = errors.New("autoneb: start cycle exceeds cycle count")

// seedDistance is the single target distance of a fresh 2-image seed path.
const seedDistance = 1.0

// Run refines the pair (m1, m2) up to cfg.CycleCount cycles, inserting one
// multi-edge per round. The graph is mutated in place; there is no result
// beyond the mutation.
//
// Resumption: with existing cycles 1..k the stored cycle k seeds the next
// round and refinement continues at index k+1. Without any, the seed is
// the 2-image path through the minima's coordinates with target distance 1
// and refinement starts at index 1.
func Run(m1, m2 int, g *landscape.Graph, m model.Model, cfg config.AutoNEB) error {
	prev, startCycleIdx, err := seed(m1, m2, g)
	if err != nil {
		return err
	}
	if startCycleIdx > cfg.CycleCount {
		return fmt.Errorf("%w: pair (%d,%d) resumes at cycle %d of %d",
			ErrCycleBudget, m1, m2, startCycleIdx, cfg.CycleCount)
	}

	// The per-cycle hyperparameters are selected once per invocation from
	// the resume index. Deliberately NOT re-indexed inside the loop: a
	// resumed run applies one configuration to all of its cycles. Fixed
	// behavior; do not "fix" without changing the recorded semantics.
	cycleCfg := cfg.Cycles[startCycleIdx-1]

	for cycleIdx := startCycleIdx; cycleIdx <= cfg.CycleCount; cycleIdx++ {
		next, err := neb.Round(prev, m, cycleCfg)
		if err != nil {
			return err
		}
		if err = g.AddCycle(m1, m2, cycleIdx, next); err != nil {
			return err
		}
		prev = next
	}

	return nil
}

// seed loads the resume state for the pair: the previous cycle and the
// next free cycle index.
func seed(m1, m2 int, g *landscape.Graph) (*landscape.Cycle, int, error) {
	if prevIdx := g.MaxCycleIndex(m1, m2); prevIdx > 0 {
		prev, err := g.Cycle(m1, m2, prevIdx)
		if err != nil {
			return nil, 0, err
		}

		return prev, prevIdx + 1, nil
	}

	a, err := g.Minimum(m1)
	if err != nil {
		return nil, 0, err
	}
	b, err := g.Minimum(m2)
	if err != nil {
		return nil, 0, err
	}

	prev := &landscape.Cycle{
		PathCoords:      [][]float64{cloneVec(a.Coords), cloneVec(b.Coords)},
		TargetDistances: []float64{seedDistance},
	}

	return prev, 1, nil
}

func cloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}
