package tsp

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// TournamentSize is the number of individuals drawn for each tournament.
const TournamentSize = 5

// Config stores the configuration parameters for a solver run.
type Config struct {
	GA  GAConfig
	Run RunConfig
}

// GAConfig holds the parameters of the evolutionary loop itself.
type GAConfig struct {
	PopulationSize int     `ini:"population_size"` // routes per generation, > 0
	Generations    int     `ini:"generations"`     // evolutionary rounds, >= 0
	MutationRate   float64 `ini:"mutation_rate"`   // per-child swap probability, [0,1]
}

// RunConfig holds parameters that shape a run without changing the algorithm.
type RunConfig struct {
	Seed               int64  `ini:"seed"`                // 0 selects the fixed default seed
	CheckpointInterval int    `ini:"checkpoint_interval"` // 0 disables periodic checkpoints
	CheckpointPrefix   string `ini:"checkpoint_prefix"`
	Trace              bool   `ini:"trace"` // log every fitness evaluation
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		GA: GAConfig{
			PopulationSize: 100,
			Generations:    500,
			MutationRate:   1,
		},
		Run: RunConfig{
			CheckpointPrefix: "tsp_checkpoint",
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(filePath string) (*Config, error) {
	config, err := loadConfig(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// ParseConfig is LoadConfig for configuration text already in memory.
func ParseConfig(data []byte) (*Config, error) {
	return loadConfig(data)
}

func loadConfig(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true, // "a#b" stays a value, "a ;note" does not
	}, source)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()

	// Map sections onto the pre-filled defaults; absent keys are left alone,
	// so an explicit "generations = 0" is distinguishable from a missing key.
	if err := cfg.Section("GA").MapTo(&config.GA); err != nil {
		return nil, fmt.Errorf("failed to map [GA] section: %w", err)
	}
	if err := cfg.Section("Run").MapTo(&config.Run); err != nil {
		return nil, fmt.Errorf("failed to map [Run] section: %w", err)
	}

	config.Run.CheckpointPrefix = strings.TrimSpace(config.Run.CheckpointPrefix)
	if config.Run.CheckpointPrefix == "" {
		config.Run.CheckpointPrefix = DefaultConfig().Run.CheckpointPrefix
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every parameter range. Errors wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if c.GA.PopulationSize < 1 {
		return fmt.Errorf("%w: population_size must be positive (got %d)", ErrInvalidConfig, c.GA.PopulationSize)
	}
	if c.GA.Generations < 0 {
		return fmt.Errorf("%w: generations cannot be negative (got %d)", ErrInvalidConfig, c.GA.Generations)
	}
	// The negated form also rejects NaN.
	if !(c.GA.MutationRate >= 0 && c.GA.MutationRate <= 1) {
		return fmt.Errorf("%w: mutation_rate must be between 0 and 1 (got %v)", ErrInvalidConfig, c.GA.MutationRate)
	}
	if c.Run.CheckpointInterval < 0 {
		return fmt.Errorf("%w: checkpoint_interval cannot be negative (got %d)", ErrInvalidConfig, c.Run.CheckpointInterval)
	}
	return nil
}
