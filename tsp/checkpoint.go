package tsp

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/google/uuid"
)

// PopulationSaveData is the part of a Population written to a checkpoint.
// The config is not saved; it is reloaded from its INI file. The random
// state is saved so a resumed run continues the exact same stream.
type PopulationSaveData struct {
	RunID      uuid.UUID
	Generation int
	Cities     []string
	Routes     []Route
	RandState  []byte
}

// SaveCheckpoint saves the current state of the Population to a
// gzip-compressed gob file.
func (p *Population) SaveCheckpoint(filePath string) error {
	randState, err := p.source.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal random state: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	saveData := PopulationSaveData{
		RunID:      p.RunID,
		Generation: p.Generation,
		Cities:     p.Instance.Cities,
		Routes:     p.Routes,
		RandState:  randState,
	}
	if err := gob.NewEncoder(gzWriter).Encode(saveData); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint '%s': %w", filePath, err)
	}

	p.Logger.Printf("Checkpoint saved to %s", filePath)
	return nil
}

// LoadCheckpoint loads a Population state from a checkpoint file. The
// configuration is reloaded from configPath and inst must have the same
// cities, in the same order, as the checkpointed run.
func LoadCheckpoint(checkpointPath, configPath string, inst *Instance, opts ...Option) (*Population, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
	}
	return loadCheckpoint(checkpointPath, config, inst, opts...)
}

func loadCheckpoint(checkpointPath string, config *Config, inst *Instance, opts ...Option) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, fmt.Errorf("%w: instance is nil", ErrInvalidInput)
	}

	file, err := os.Open(checkpointPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", checkpointPath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	saveData := PopulationSaveData{}
	if err := gob.NewDecoder(gzReader).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	if !slices.Equal(saveData.Cities, inst.Cities) {
		return nil, fmt.Errorf("%w: checkpoint cities %v, instance cities %v", ErrCheckpointMismatch, saveData.Cities, inst.Cities)
	}
	if len(saveData.Routes) == 0 {
		return nil, fmt.Errorf("%w: checkpoint holds no routes", ErrCheckpointMismatch)
	}
	for i, r := range saveData.Routes {
		if err := r.Validate(inst.N()); err != nil {
			return nil, fmt.Errorf("checkpoint route %d: %w", i, err)
		}
	}

	source := new(rand.PCG)
	if err := source.UnmarshalBinary(saveData.RandState); err != nil {
		return nil, fmt.Errorf("failed to restore random state: %w", err)
	}

	p := newPopulation(config, inst, source, buildOptions(opts))
	p.RunID = saveData.RunID
	p.Generation = saveData.Generation
	p.setRoutes(saveData.Routes)

	p.Logger.Printf("Checkpoint loaded from %s (Generation %d)", checkpointPath, p.Generation)
	return p, nil
}
