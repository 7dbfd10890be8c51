package tsp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every configuration validation error.
	ErrInvalidConfig = errors.New("tsp: invalid config")

	// ErrInvalidInput is wrapped by every instance validation error
	// (no cities, duplicate labels, missing or bad distances).
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrCheckpointMismatch is returned when a checkpoint does not belong to
	// the instance it is being resumed against.
	ErrCheckpointMismatch = errors.New("tsp: checkpoint does not match instance")
)

// DegenerateInputWarning reports an instance with fewer than three non-start
// cities. Such runs still complete: crossover degenerates to copying the first
// parent. The warning is collected in Result.Warnings and never returned as
// the error of Solve.
type DegenerateInputWarning struct {
	NonStartCities int
}

func (w *DegenerateInputWarning) Error() string {
	return fmt.Sprintf("tsp: degenerate input: %d non-start cities (crossover needs at least 3), parents are copied unchanged", w.NonStartCities)
}
