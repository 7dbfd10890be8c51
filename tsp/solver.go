package tsp

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a run.
type Result struct {
	Route       []string // city labels, starting and ending at the start city
	Cost        float64
	Tour        Route // Route as city indices
	Generations int   // generations completed
	Evaluations int   // fitness evaluations performed by this process
	Duration    time.Duration
	RunID       uuid.UUID
	Warnings    []error
}

// Solve runs the genetic algorithm on inst for config.GA.Generations
// generations and returns the cheapest route of the final generation.
func Solve(config *Config, inst *Instance, opts ...Option) (Result, error) {
	start := time.Now()
	p, err := NewPopulation(config, inst, opts...)
	if err != nil {
		return Result{}, err
	}
	return p.solve(start)
}

// Solve runs the remaining generations up to Config.GA.Generations (all of
// them for a new population, the rest for one loaded from a checkpoint) and
// returns the cheapest route of the final generation.
func (p *Population) Solve() (Result, error) {
	return p.solve(time.Now())
}

func (p *Population) solve(start time.Time) (Result, error) {
	if remaining := p.Config.GA.Generations - p.Generation; remaining > 0 {
		if err := p.Run(remaining); err != nil {
			return Result{}, err
		}
	}

	tour, cost := p.Best()
	route := p.Instance.Labels(tour)
	p.Reporters.FoundSolution(p.Generation, route, cost)

	return Result{
		Route:       route,
		Cost:        cost,
		Tour:        tour,
		Generations: p.Generation,
		Evaluations: p.Evaluator.Evaluations(),
		Duration:    time.Since(start),
		RunID:       p.RunID,
		Warnings:    p.Warnings,
	}, nil
}
