package minimize

import (
	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/optim"
)

// FindMinimum runs one unconstrained descent and returns the located
// minimum (without an ID; the graph assigns IDs on insert).
//
// Steps:
//  1. Construct a fresh optimizer by registry name over the model's
//     parameters; an unknown algorithm is fatal (optim.ErrUnknownAlgorithm).
//  2. Reinitialize the model randomly and adapt it to the configured
//     evaluation mode.
//  3. Run cfg.Steps gradient steps.
//  4. Snapshot the coordinates and merge the model's self-reported
//     diagnostics.
//
// Complexity: O(cfg.Steps · cost(m.Apply)).
func FindMinimum(m model.Model, cfg config.Optim) (landscape.Minimum, error) {
	opt, err := optim.New(cfg.Algorithm, m.Parameters(), cfg.Args)
	if err != nil {
		return landscape.Minimum{}, err
	}

	m.InitialiseRandomly()
	m.AdaptToConfig(cfg.Eval)

	for step := 0; step < cfg.Steps; step++ {
		opt.ZeroGrad()
		m.Apply(true)
		opt.Step()
	}

	return landscape.Minimum{
		Coords:   m.Coords(),
		Analysis: m.Analyse(),
	}, nil
}
