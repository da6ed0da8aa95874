package config

import "fmt"

// Default values applied by Validate. Exported where callers may want to
// display or reuse them; internal otherwise.
const (
	// DefaultAlgorithm is the optimizer used when none is named.
	DefaultAlgorithm = "sgd"

	// DefaultFill is the fill strategy used when none is named.
	DefaultFill = "equal"

	// DefaultValueKey ranks minima when no node key is configured.
	DefaultValueKey = "train_loss"

	// DefaultWeightKey ranks cycles when no edge key is configured.
	DefaultWeightKey = "saddle_loss"

	defaultEvalMode       = "full"
	defaultSpringConstant = 1.0
)

// Validate applies defaults and checks the evaluation config.
func (e *Eval) Validate() error {
	if e.Mode == "" {
		e.Mode = defaultEvalMode
	}
	if e.BatchSize < 0 {
		return fmt.Errorf("%w: eval.batch_size must be >= 0, got %d", ErrInvalidConfig, e.BatchSize)
	}

	return nil
}

// Validate applies defaults and checks the optimizer config.
// Steps has no default: a zero step count is always a caller mistake.
func (o *Optim) Validate() error {
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	if o.Args == nil {
		o.Args = map[string]float64{}
	}
	if o.Steps <= 0 {
		return fmt.Errorf("%w: optim.steps must be > 0, got %d", ErrInvalidConfig, o.Steps)
	}

	return o.Eval.Validate()
}

// Validate applies defaults and checks one per-cycle NEB config.
func (n *NEB) Validate() error {
	if n.Fill == "" {
		n.Fill = DefaultFill
	}
	if n.InsertCount < 0 {
		return fmt.Errorf("%w: neb.insert_count must be >= 0, got %d", ErrInvalidConfig, n.InsertCount)
	}
	if n.SpringConstant == 0 {
		n.SpringConstant = defaultSpringConstant
	}
	if n.SpringConstant < 0 {
		return fmt.Errorf("%w: neb.spring_constant must be > 0, got %g", ErrInvalidConfig, n.SpringConstant)
	}

	return n.Optim.Validate()
}

// Validate checks the cycle-manager config and pads Cycles by repeating the
// last entry until one NEB config exists per cycle. A list longer than
// CycleCount is rejected rather than silently truncated.
func (a *AutoNEB) Validate() error {
	if a.CycleCount < 1 {
		return fmt.Errorf("%w: auto_neb.cycle_count must be >= 1, got %d", ErrInvalidConfig, a.CycleCount)
	}
	if len(a.Cycles) == 0 {
		return fmt.Errorf("%w: auto_neb.cycles must not be empty", ErrInvalidConfig)
	}
	if len(a.Cycles) > a.CycleCount {
		return fmt.Errorf("%w: auto_neb.cycles has %d entries for cycle_count %d", ErrInvalidConfig, len(a.Cycles), a.CycleCount)
	}
	for i := range a.Cycles {
		if err := a.Cycles[i].Validate(); err != nil {
			return fmt.Errorf("auto_neb.cycles[%d]: %w", i, err)
		}
	}
	// Pad by repetition so Cycles can be indexed by any cycle number.
	for len(a.Cycles) < a.CycleCount {
		a.Cycles = append(a.Cycles, a.Cycles[len(a.Cycles)-1])
	}

	return nil
}

// Validate applies defaults and checks the exploration config, cascading
// into the engine list and the per-pair AutoNEB config.
func (x *Exploration) Validate() error {
	if x.ValueKey == "" {
		x.ValueKey = DefaultValueKey
	}
	if x.WeightKey == "" {
		x.WeightKey = DefaultWeightKey
	}
	if err := x.AutoNEB.Validate(); err != nil {
		return err
	}
	if len(x.Engines) == 0 {
		x.Engines = []Engine{{Kind: "disconnected"}, {Kind: "mst"}}
	}
	for i := range x.Engines {
		e := &x.Engines[i]
		if e.Kind == "" {
			return fmt.Errorf("%w: engines[%d].kind must not be empty", ErrInvalidConfig, i)
		}
		if e.MaxRefinements < 0 {
			return fmt.Errorf("%w: engines[%d].max_refinements must be >= 0", ErrInvalidConfig, i)
		}
		if e.MaxRefinements == 0 {
			e.MaxRefinements = x.AutoNEB.CycleCount
		}
	}

	return nil
}
