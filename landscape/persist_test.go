package landscape_test

import (
	"bytes"
	"encoding/gob"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autoneb/landscape"
)

// notAGraph is a registered gob type that is decidedly not a landscape
// multigraph; Load must reject it rather than coerce.
type notAGraph struct {
	Payload string
}

func init() { gob.Register(&notAGraph{}) }

// richGraph builds a graph with 3 minima, one multi-edge pair (2 cycles,
// full attributes) and one single-cycle pair.
func richGraph(t *testing.T) *landscape.Graph {
	t.Helper()
	g := landscape.NewGraph()
	a := g.AddMinimum([]float64{0, 0}, map[string]float64{"train_loss": -1.5})
	b := g.AddMinimum([]float64{2, 2}, map[string]float64{"train_loss": -2.25})
	c := g.AddMinimum([]float64{4, 0}, map[string]float64{"train_loss": -0.5})

	first := cycleOf(2, 3.5)
	first.ImageEnergies = []float64{-1.5, -2.25}
	first.Analysis["path_length"] = 2.83
	require.NoError(t, g.AddCycle(a, b, 1, first))
	require.NoError(t, g.AddCycle(a, b, 2, cycleOf(4, 2.5)))
	require.NoError(t, g.AddCycle(b, c, 1, cycleOf(3, 6.0)))

	return g
}

// TestSaveLoad_RoundTripPreservesEverything verifies a save/load cycle
// reproduces all node and edge attributes exactly.
func TestSaveLoad_RoundTripPreservesEverything(t *testing.T) {
	g := richGraph(t)

	var buf bytes.Buffer
	require.NoError(t, landscape.Save(&buf, g))

	loaded, err := landscape.Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.MinimumIDs(), loaded.MinimumIDs())
	for _, id := range g.MinimumIDs() {
		want, _ := g.Minimum(id)
		got, err := loaded.Minimum(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "minimum %d survives verbatim", id)
	}

	assert.Equal(t, g.Pairs(), loaded.Pairs())
	for _, pair := range g.Pairs() {
		require.Equal(t, g.MaxCycleIndex(pair.A, pair.B), loaded.MaxCycleIndex(pair.A, pair.B))
		assert.Equal(t, g.Cycles(pair.A, pair.B), loaded.Cycles(pair.A, pair.B),
			"pair (%d,%d) cycles survive verbatim", pair.A, pair.B)
	}
}

// TestLoad_RejectsNonMultigraph verifies structural validation: a blob
// holding anything but a landscape multigraph fails with ErrNotMultiGraph
// and is never coerced.
func TestLoad_RejectsNonMultigraph(t *testing.T) {
	var buf bytes.Buffer
	var payload any = &notAGraph{Payload: "imposter"}
	require.NoError(t, gob.NewEncoder(&buf).Encode(&payload))

	_, err := landscape.Load(&buf)
	assert.ErrorIs(t, err, landscape.ErrNotMultiGraph)
}

// TestLoad_RejectsGarbage verifies undecodable bytes fail loudly.
func TestLoad_RejectsGarbage(t *testing.T) {
	_, err := landscape.Load(bytes.NewReader([]byte("not gob at all")))
	assert.Error(t, err)
}

// TestLoadFile_NamesOffendingSource verifies file-level failures carry the
// source path, including the structural-validation case.
func TestLoadFile_NamesOffendingSource(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "good.bin")
	require.NoError(t, landscape.SaveFile(path, richGraph(t)))
	loaded, err := landscape.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Order())

	_, err = landscape.LoadFile(filepath.Join(dir, "absent.bin"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "absent.bin")
}
