package autoneb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autoneb"
	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/minimize"
	"github.com/katalvlaran/autoneb/model"
)

// newRunFixture discovers two minima on a deterministic surface and
// returns the graph, their IDs and the surface.
func newRunFixture(t *testing.T) (*landscape.Graph, int, int, *model.Surface) {
	t.Helper()
	surface := model.NewSurface(2, 4, 11)
	g := landscape.NewGraph()

	findCfg := config.Optim{Algorithm: "sgd", Args: map[string]float64{"lr": 0.05}, Steps: 50}
	require.NoError(t, findCfg.Validate())

	var ids []int
	for i := 0; i < 2; i++ {
		m, err := minimize.FindMinimum(surface, findCfg)
		require.NoError(t, err)
		ids = append(ids, g.AddMinimum(m.Coords, m.Analysis))
	}

	return g, ids[0], ids[1], surface
}

// runConfig builds a validated AutoNEB config with the given cycle count
// and per-cycle insertion count.
func runConfig(t *testing.T, cycles, insert int) config.AutoNEB {
	t.Helper()
	cfg := config.AutoNEB{
		CycleCount: cycles,
		Cycles: []config.NEB{{
			Optim: config.Optim{
				Algorithm: "sgd",
				Args:      map[string]float64{"lr": 0.01},
				Steps:     10,
			},
			InsertCount: insert,
		}},
	}
	require.NoError(t, cfg.Validate())

	return cfg
}

// TestRun_FreshPairBuildsContiguousCycles is the end-to-end scenario: two
// minima, no prior edges, cycle_count=2, insert_count=1. The manager must
// create edges keyed 1 then 2; edge 1 has strictly more images than the
// 2-image seed; edge 2 at least as many as edge 1; and every cycle carries
// exactly len(path)-1 target distances.
func TestRun_FreshPairBuildsContiguousCycles(t *testing.T) {
	g, a, b, surface := newRunFixture(t)

	require.NoError(t, autoneb.Run(a, b, g, surface, runConfig(t, 2, 1)))

	require.Equal(t, 2, g.MaxCycleIndex(a, b))
	cycles := g.Cycles(a, b)
	require.Len(t, cycles, 2)

	assert.Greater(t, len(cycles[0].PathCoords), 2, "cycle 1 finer than the seed")
	assert.GreaterOrEqual(t, len(cycles[1].PathCoords), len(cycles[0].PathCoords),
		"resolution never decreases")
	for i, c := range cycles {
		assert.Len(t, c.TargetDistances, len(c.PathCoords)-1, "cycle %d", i+1)
		assert.Contains(t, c.Analysis, "saddle_loss")
	}
}

// TestRun_ResumesFromStoredCycle verifies resumption: a second invocation
// continues at max+1 and seeds from the stored path instead of the
// 2-image degenerate one.
func TestRun_ResumesFromStoredCycle(t *testing.T) {
	g, a, b, surface := newRunFixture(t)

	require.NoError(t, autoneb.Run(a, b, g, surface, runConfig(t, 1, 2)))
	require.Equal(t, 1, g.MaxCycleIndex(a, b))
	firstImages := len(g.Cycles(a, b)[0].PathCoords)

	require.NoError(t, autoneb.Run(a, b, g, surface, runConfig(t, 3, 2)))

	assert.Equal(t, 3, g.MaxCycleIndex(a, b))
	cycles := g.Cycles(a, b)
	assert.Equal(t, firstImages+2, len(cycles[1].PathCoords),
		"cycle 2 grew from the stored cycle 1")
	assert.Equal(t, firstImages+4, len(cycles[2].PathCoords))
}

// TestRun_CycleBudgetViolation verifies the precondition: invoking the
// manager for a pair already at the configured cycle count is a fatal
// caller error.
func TestRun_CycleBudgetViolation(t *testing.T) {
	g, a, b, surface := newRunFixture(t)

	cfg := runConfig(t, 2, 1)
	require.NoError(t, autoneb.Run(a, b, g, surface, cfg))

	err := autoneb.Run(a, b, g, surface, cfg)
	assert.ErrorIs(t, err, autoneb.ErrCycleBudget)
	assert.Equal(t, 2, g.MaxCycleIndex(a, b), "graph unchanged by the rejected call")
}

// TestRun_UnknownMinimumFails verifies referencing absent nodes fails
// before any optimization work.
func TestRun_UnknownMinimumFails(t *testing.T) {
	g, a, _, surface := newRunFixture(t)

	err := autoneb.Run(a, 99, g, surface, runConfig(t, 1, 1))
	assert.ErrorIs(t, err, landscape.ErrMinimumNotFound)
}

// TestRun_HyperparametersFixedAtResumeIndex documents the preserved
// selection behavior: the per-cycle config is chosen once per invocation
// from the resume index, not re-selected per loop iteration. A resumed
// run starting at cycle 2 therefore applies Cycles[1] to every cycle it
// produces — observable through the insertion counts.
func TestRun_HyperparametersFixedAtResumeIndex(t *testing.T) {
	g, a, b, surface := newRunFixture(t)

	// Cycle 1 inserts nothing.
	require.NoError(t, autoneb.Run(a, b, g, surface, config.AutoNEB{
		CycleCount: 1,
		Cycles:     []config.NEB{fixtureNEB(t, 0)},
	}))
	seedImages := len(g.Cycles(a, b)[0].PathCoords)
	require.Equal(t, 2, seedImages)

	// Resume to 3 cycles with per-cycle inserts [0, 3, 1]: the manager
	// picks Cycles[startCycleIdx-1] == Cycles[1] (insert 3) and applies
	// it to BOTH remaining cycles.
	cfg := config.AutoNEB{
		CycleCount: 3,
		Cycles:     []config.NEB{fixtureNEB(t, 0), fixtureNEB(t, 3), fixtureNEB(t, 1)},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, autoneb.Run(a, b, g, surface, cfg))

	cycles := g.Cycles(a, b)
	assert.Equal(t, seedImages+3, len(cycles[1].PathCoords), "cycle 2 used insert=3")
	assert.Equal(t, seedImages+6, len(cycles[2].PathCoords),
		"cycle 3 also used insert=3, not its own entry")
}

// fixtureNEB builds one validated per-cycle config with the given
// insertion count.
func fixtureNEB(t *testing.T, insert int) config.NEB {
	t.Helper()
	cfg := config.NEB{
		Optim: config.Optim{
			Algorithm: "sgd",
			Args:      map[string]float64{"lr": 0.01},
			Steps:     5,
		},
		InsertCount: insert,
	}
	require.NoError(t, cfg.Validate())

	return cfg
}
