package config

import "errors"

// ErrInvalidConfig indicates a configuration field failed validation.
// All validation errors wrap this sentinel and name the offending field.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Eval names the evaluation mode a model adapts to before an optimization
// run (for example "full" vs. a mini-batch mode with a given batch size).
// The interpretation of Mode is the model's concern; the core only carries
// the value through.
type Eval struct {
	// Mode is the named evaluation regime. Defaults to "full".
	Mode string `yaml:"mode"`

	// BatchSize is the number of samples per evaluation for batched modes.
	// Zero means the model's native default.
	BatchSize int `yaml:"batch_size"`
}

// Optim configures one optimizer run: which registered algorithm to
// construct, its numeric arguments, the fixed step count and the
// evaluation mode applied beforehand.
//
// A fresh optimizer instance is constructed from this config for every
// run; optimizer state never persists across calls.
type Optim struct {
	// Algorithm is the registry name of the gradient algorithm,
	// e.g. "sgd" or "adam". Defaults to "sgd".
	Algorithm string `yaml:"algorithm"`

	// Args holds the algorithm's numeric arguments (learning rate,
	// momentum, betas, ...). Unknown keys are ignored by the algorithm.
	Args map[string]float64 `yaml:"args"`

	// Steps is the fixed number of gradient steps. Must be positive.
	Steps int `yaml:"steps"`

	// Eval is the evaluation mode applied to the model before stepping.
	Eval Eval `yaml:"eval"`
}

// NEB configures a single path-refinement round: how the previous path is
// filled to a finer resolution and how the refined path is relaxed.
type NEB struct {
	// Optim configures the relaxation run over the path model.
	Optim Optim `yaml:"optim"`

	// Fill names the fill strategy ("equal" or "highest").
	// Defaults to "equal".
	Fill string `yaml:"fill"`

	// InsertCount is the number of images inserted by the fill strategy.
	// Must be non-negative; zero keeps the previous resolution.
	InsertCount int `yaml:"insert_count"`

	// SpringConstant couples consecutive images to their target distance
	// during relaxation. Defaults to 1.
	SpringConstant float64 `yaml:"spring_constant"`
}

// AutoNEB configures one cycle-manager invocation for a minima pair.
type AutoNEB struct {
	// CycleCount is the total number of refinement cycles a pair should
	// reach, counting cycles persisted by earlier invocations.
	// Must be at least 1.
	CycleCount int `yaml:"cycle_count"`

	// Cycles holds per-cycle NEB settings, indexed by cycle number.
	// Validate pads a shorter list by repeating the last entry until
	// len(Cycles) == CycleCount.
	Cycles []NEB `yaml:"cycles"`
}

// Engine selects and parameterizes one suggestion engine in the chain.
type Engine struct {
	// Kind names the engine: "disconnected" or "mst".
	Kind string `yaml:"kind"`

	// Seed drives the engine's sampling where the engine samples
	// (the "disconnected" engine). Zero selects a fixed default seed.
	Seed int64 `yaml:"seed"`

	// MaxRefinements caps how many cycles a pair may accumulate before
	// the engine stops proposing it (the "mst" engine). Zero defaults
	// to the exploration's AutoNEB.CycleCount.
	MaxRefinements int `yaml:"max_refinements"`
}

// Exploration configures the landscape-exploration loop.
type Exploration struct {
	// ValueKey is the node-analysis key holding a minimum's value
	// (typically its loss). Defaults to "train_loss".
	ValueKey string `yaml:"value_key"`

	// WeightKey is the cycle-analysis key used to rank cycles for
	// suggestion and reduction (typically the saddle estimate).
	// Defaults to "saddle_loss".
	WeightKey string `yaml:"weight_key"`

	// Engines is the ordered suggestion-engine chain. The first engine
	// that proposes a pair wins; exhaustion of all engines ends the
	// exploration. Defaults to ["disconnected", "mst"].
	Engines []Engine `yaml:"engines"`

	// AutoNEB is applied to every suggested pair.
	AutoNEB AutoNEB `yaml:"auto_neb"`
}
