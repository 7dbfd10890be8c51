package tsp

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, 100, c.GA.PopulationSize)
	assert.Equal(t, 500, c.GA.Generations)
	assert.Equal(t, 1.0, c.GA.MutationRate)
	assert.NoError(t, c.Validate())
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
[GA]
population_size = 30
generations     = 0   ; run the initial population only
mutation_rate   = 0.25

[Run]
seed                = 99
checkpoint_interval = 10
checkpoint_prefix   = out/ckpt
trace               = true
`))
	require.NoError(t, err)
	assert.Equal(t, GAConfig{PopulationSize: 30, Generations: 0, MutationRate: 0.25}, c.GA)
	assert.Equal(t, RunConfig{Seed: 99, CheckpointInterval: 10, CheckpointPrefix: "out/ckpt", Trace: true}, c.Run)
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	c, err := ParseConfig([]byte("[GA]\npopulation_size = 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, c.GA.PopulationSize)
	assert.Equal(t, 500, c.GA.Generations)
	assert.Equal(t, 1.0, c.GA.MutationRate)
	assert.Equal(t, "tsp_checkpoint", c.Run.CheckpointPrefix)

	c, err = ParseConfig([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"zero population":     "[GA]\npopulation_size = 0\n",
		"negative generation": "[GA]\ngenerations = -1\n",
		"rate above one":      "[GA]\nmutation_rate = 1.5\n",
		"negative rate":       "[GA]\nmutation_rate = -0.1\n",
		"negative interval":   "[Run]\ncheckpoint_interval = -5\n",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(text))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestValidateNaNRate(t *testing.T) {
	c := DefaultConfig()
	c.GA.MutationRate = math.NaN()
	assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)

	var nilConfig *Config
	assert.ErrorIs(t, nilConfig.Validate(), ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ga-config")
	require.NoError(t, os.WriteFile(path, []byte("[GA]\ngenerations = 7\n"), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.GA.Generations)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestLoadExampleConfig(t *testing.T) {
	c, err := LoadConfig("../examples/fivecity/configs/fivecity-config")
	require.NoError(t, err)
	assert.Equal(t, GAConfig{PopulationSize: 100, Generations: 500, MutationRate: 1}, c.GA)
	assert.Equal(t, int64(42), c.Run.Seed)
}
