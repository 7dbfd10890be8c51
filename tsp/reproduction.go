package tsp

import (
	"math/rand/v2"
)

// Reproduction handles the creation of new routes, either from scratch or
// through selection, crossover and mutation.
type Reproduction struct {
	Config *GAConfig
	rng    *rand.Rand
	mark   *marker
}

// NewReproduction creates a reproduction manager for instances of n cities.
// All randomness is drawn from rng.
func NewReproduction(config *GAConfig, n int, rng *rand.Rand) *Reproduction {
	return &Reproduction{
		Config: config,
		rng:    rng,
		mark:   newMarker(n),
	}
}

// CreateNewPopulation creates popSize random routes over n cities. Each
// interior is an unbiased Fisher–Yates shuffle of 1..n-1.
func (r *Reproduction) CreateNewPopulation(n, popSize int) []Route {
	routes := make([]Route, popSize)
	perm := make([]int, n-1)
	for i := range routes {
		for c := range perm {
			perm[c] = c + 1
		}
		shuffle(perm, r.rng)
		routes[i] = newRoute(perm)
	}
	return routes
}

// Reproduce builds the next generation of popSize routes from the current
// routes and their costs. Each slot gets two independent tournament winners
// (possibly the same route), one crossover child and one mutation attempt.
// The current routes are never modified.
func (r *Reproduction) Reproduce(routes []Route, costs []float64, popSize int) []Route {
	next := make([]Route, 0, popSize)
	for len(next) < popSize {
		parent1 := routes[tournamentSelect(costs, r.rng)]
		parent2 := routes[tournamentSelect(costs, r.rng)]

		child := orderCrossover(parent1, parent2, r.rng, r.mark)
		mutateSwap(child, r.Config.MutationRate, r.rng)

		next = append(next, child)
	}
	return next
}
