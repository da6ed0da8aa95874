package explore

import (
	"github.com/katalvlaran/autoneb"
	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/suggest"
)

// Run explores the landscape until the suggestion engine abstains.
//
// Each iteration asks eng for a pair under the configured value/weight
// keys, refines the pair through the cycle manager (mutating g in place)
// and reports one unit of progress to obs. A nil obs degrades to the
// no-op observer. The loop is unbounded by design — termination comes
// from engine exhaustion, never from an iteration cap — and the first
// cycle-manager error aborts the run.
func Run(g *landscape.Graph, m model.Model, cfg config.Exploration, eng suggest.Engine, obs Observer) error {
	if obs == nil {
		obs = NopObserver{}
	}

	for {
		m1, m2, ok := eng.Suggest(g, cfg.ValueKey, cfg.WeightKey)
		if !ok {
			return nil
		}
		if err := autoneb.Run(m1, m2, g, m, cfg.AutoNEB); err != nil {
			return err
		}
		obs.Tick(m1, m2)
	}
}
