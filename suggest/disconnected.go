package suggest

import (
	"math/rand"

	"github.com/katalvlaran/autoneb/landscape"
)

// defaultSuggestSeed is the fixed seed used when callers pass seed==0,
// keeping default constructions reproducible.
const defaultSuggestSeed int64 = 1

// Disconnected proposes pairs across connected components until the graph
// is one component. All sampling flows from a single seeded source: the
// same seed against the same graph history yields the same proposals.
type Disconnected struct {
	rng *rand.Rand
}

// NewDisconnected builds the engine with its own deterministic stream.
// seed==0 selects the fixed default seed.
func NewDisconnected(seed int64) *Disconnected {
	if seed == 0 {
		seed = defaultSuggestSeed
	}

	return &Disconnected{rng: rand.New(rand.NewSource(seed))}
}

// Suggest samples two distinct components uniformly, then one minimum from
// each. Abstains when the graph has fewer than two components (connected,
// or fewer than two minima). The keys are unused: connectivity alone
// decides.
func (d *Disconnected) Suggest(g *landscape.Graph, _, _ string) (int, int, bool) {
	comps := g.Components()
	if len(comps) < 2 {
		return 0, 0, false
	}

	i := d.rng.Intn(len(comps))
	j := d.rng.Intn(len(comps) - 1)
	if j >= i {
		j++
	}

	m1 := comps[i][d.rng.Intn(len(comps[i]))]
	m2 := comps[j][d.rng.Intn(len(comps[j]))]

	return m1, m2, true
}
