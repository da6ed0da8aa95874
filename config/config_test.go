package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autoneb/config"
)

// validNEB is the minimal per-cycle config that validates.
func validNEB() config.NEB {
	return config.NEB{Optim: config.Optim{Steps: 10}}
}

// TestLoad_FullDocument verifies a complete YAML document round-trips with
// every field where it was written.
func TestLoad_FullDocument(t *testing.T) {
	doc := []byte(`
value_key: eval_loss
weight_key: barrier
engines:
  - kind: disconnected
    seed: 7
  - kind: mst
    max_refinements: 3
auto_neb:
  cycle_count: 2
  cycles:
    - fill: highest
      insert_count: 4
      spring_constant: 0.5
      optim:
        algorithm: adam
        steps: 100
        args:
          lr: 0.001
        eval:
          mode: batch
          batch_size: 32
`)

	cfg, err := config.Load(doc)
	require.NoError(t, err)

	assert.Equal(t, "eval_loss", cfg.ValueKey)
	assert.Equal(t, "barrier", cfg.WeightKey)
	require.Len(t, cfg.Engines, 2)
	assert.Equal(t, int64(7), cfg.Engines[0].Seed)
	assert.Equal(t, 3, cfg.Engines[1].MaxRefinements)

	require.Len(t, cfg.AutoNEB.Cycles, 2, "padded to cycle_count")
	first := cfg.AutoNEB.Cycles[0]
	assert.Equal(t, "highest", first.Fill)
	assert.Equal(t, 4, first.InsertCount)
	assert.Equal(t, 0.5, first.SpringConstant)
	assert.Equal(t, "adam", first.Optim.Algorithm)
	assert.Equal(t, 100, first.Optim.Steps)
	assert.Equal(t, 0.001, first.Optim.Args["lr"])
	assert.Equal(t, "batch", first.Optim.Eval.Mode)
	assert.Equal(t, 32, first.Optim.Eval.BatchSize)
}

// TestLoad_AppliesDefaults verifies the minimal document comes back fully
// defaulted: keys, engine chain, fill, algorithm, spring constant, eval mode.
func TestLoad_AppliesDefaults(t *testing.T) {
	doc := []byte(`
auto_neb:
  cycle_count: 1
  cycles:
    - optim:
        steps: 5
`)

	cfg, err := config.Load(doc)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultValueKey, cfg.ValueKey)
	assert.Equal(t, config.DefaultWeightKey, cfg.WeightKey)

	require.Len(t, cfg.Engines, 2)
	assert.Equal(t, "disconnected", cfg.Engines[0].Kind)
	assert.Equal(t, "mst", cfg.Engines[1].Kind)
	assert.Equal(t, 1, cfg.Engines[1].MaxRefinements, "zero defaults to cycle_count")

	c := cfg.AutoNEB.Cycles[0]
	assert.Equal(t, config.DefaultFill, c.Fill)
	assert.Equal(t, 1.0, c.SpringConstant)
	assert.Equal(t, config.DefaultAlgorithm, c.Optim.Algorithm)
	assert.NotNil(t, c.Optim.Args)
	assert.Equal(t, "full", c.Optim.Eval.Mode)
}

// TestLoad_UnknownFieldRejected verifies typos fail instead of silently
// becoming defaults.
func TestLoad_UnknownFieldRejected(t *testing.T) {
	doc := []byte(`
auto_neb:
  cycle_cuont: 1
`)

	_, err := config.Load(doc)

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestLoad_EmptyDocument verifies an empty file is a validation error, not
// a decode error: nothing supplies the mandatory cycle config.
func TestLoad_EmptyDocument(t *testing.T) {
	_, err := config.Load(nil)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestAutoNEB_PadsByRepeatingLast verifies a short cycle list is padded by
// repeating its last entry.
func TestAutoNEB_PadsByRepeatingLast(t *testing.T) {
	first := validNEB()
	last := validNEB()
	last.InsertCount = 9
	cfg := config.AutoNEB{CycleCount: 4, Cycles: []config.NEB{first, last}}

	require.NoError(t, cfg.Validate())

	require.Len(t, cfg.Cycles, 4)
	assert.Equal(t, 9, cfg.Cycles[2].InsertCount)
	assert.Equal(t, 9, cfg.Cycles[3].InsertCount)
}

// TestAutoNEB_RejectsOverlongCycles verifies extra entries are an error
// rather than a silent truncation.
func TestAutoNEB_RejectsOverlongCycles(t *testing.T) {
	cfg := config.AutoNEB{CycleCount: 1, Cycles: []config.NEB{validNEB(), validNEB()}}

	err := cfg.Validate()

	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestValidate_FieldErrors exercises the per-field rejections and checks
// each error names its field.
func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		mention string
	}{
		{
			name: "zero steps",
			err: func() error {
				o := config.Optim{}

				return o.Validate()
			}(),
			mention: "optim.steps",
		},
		{
			name: "negative batch size",
			err: func() error {
				e := config.Eval{BatchSize: -1}

				return e.Validate()
			}(),
			mention: "eval.batch_size",
		},
		{
			name: "negative insert count",
			err: func() error {
				n := validNEB()
				n.InsertCount = -1

				return n.Validate()
			}(),
			mention: "neb.insert_count",
		},
		{
			name: "negative spring constant",
			err: func() error {
				n := validNEB()
				n.SpringConstant = -1

				return n.Validate()
			}(),
			mention: "neb.spring_constant",
		},
		{
			name: "zero cycle count",
			err: func() error {
				a := config.AutoNEB{Cycles: []config.NEB{validNEB()}}

				return a.Validate()
			}(),
			mention: "auto_neb.cycle_count",
		},
		{
			name: "empty cycles",
			err: func() error {
				a := config.AutoNEB{CycleCount: 1}

				return a.Validate()
			}(),
			mention: "auto_neb.cycles",
		},
		{
			name: "empty engine kind",
			err: func() error {
				x := config.Exploration{
					Engines: []config.Engine{{}},
					AutoNEB: config.AutoNEB{CycleCount: 1, Cycles: []config.NEB{validNEB()}},
				}

				return x.Validate()
			}(),
			mention: "engines[0].kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, config.ErrInvalidConfig)
			assert.Contains(t, tt.err.Error(), tt.mention)
		})
	}
}

// TestAutoNEB_NamesFailingCycle verifies nested cycle errors carry their
// index.
func TestAutoNEB_NamesFailingCycle(t *testing.T) {
	bad := validNEB()
	bad.Optim.Steps = 0
	cfg := config.AutoNEB{CycleCount: 2, Cycles: []config.NEB{validNEB(), bad}}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auto_neb.cycles[1]")
}

// TestLoadFile_MissingPath verifies the file loader names the path.
func TestLoadFile_MissingPath(t *testing.T) {
	_, err := config.LoadFile("does/not/exist.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does/not/exist.yaml")
}
