package neb

import (
	"github.com/katalvlaran/autoneb/config"
	"github.com/katalvlaran/autoneb/landscape"
	"github.com/katalvlaran/autoneb/model"
	"github.com/katalvlaran/autoneb/optim"
)

// Round runs one NEB refinement round and returns the resulting cycle.
//
// Steps:
//  1. The configured fill strategy grows the previous path by
//     cfg.InsertCount images.
//  2. A PathModel couples the wrapped model to the new path.
//  3. A freshly constructed optimizer (by registry name; unknown names are
//     fatal, no retry) relaxes the interior images for cfg.Optim.Steps
//     gradient steps.
//  4. The result is detached: path copy, unchanged target distances, the
//     path model's analysis and per-image energies.
//
// prev may be a stored cycle (resumption) or a synthetic 2-image seed; it
// is never mutated.
func Round(prev *landscape.Cycle, m model.Model, cfg config.NEB) (*landscape.Cycle, error) {
	fill, err := FillByName(cfg.Fill)
	if err != nil {
		return nil, err
	}
	path, dists, err := fill.Fill(prev.PathCoords, cfg.InsertCount, prev.TargetDistances, prev)
	if err != nil {
		return nil, err
	}

	pm, err := NewPathModel(m, path, dists, cfg.SpringConstant)
	if err != nil {
		return nil, err
	}
	opt, err := optim.New(cfg.Optim.Algorithm, pm.Parameters(), cfg.Optim.Args)
	if err != nil {
		return nil, err
	}

	for step := 0; step < cfg.Optim.Steps; step++ {
		// No zero-grad: Apply overwrites every parameter gradient wholesale.
		pm.Apply(true)
		opt.Step()
	}

	return &landscape.Cycle{
		PathCoords:      pm.PathCoords(),
		TargetDistances: dists,
		ImageEnergies:   pm.ImageEnergies(),
		Analysis:        pm.Analyse(),
	}, nil
}
