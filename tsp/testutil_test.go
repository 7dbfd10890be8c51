package tsp

import (
	"io"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var fiveCityTable = map[string]map[string]float64{
	"A": {"A": 0, "B": 2, "C": 9, "D": 10, "E": 15},
	"B": {"A": 2, "B": 0, "C": 6, "D": 4, "E": 7},
	"C": {"A": 9, "B": 6, "C": 0, "D": 8, "E": 3},
	"D": {"A": 10, "B": 4, "C": 8, "D": 0, "E": 5},
	"E": {"A": 15, "B": 7, "C": 3, "D": 5, "E": 0},
}

func fiveCity(t *testing.T) *Instance {
	t.Helper()
	inst, err := NewInstance([]string{"A", "B", "C", "D", "E"}, fiveCityTable)
	require.NoError(t, err)
	return inst
}

// gridInstance builds an asymmetric n-city instance with distinct weights.
func gridInstance(t *testing.T, n int) *Instance {
	t.Helper()
	cities := make([]string, n)
	m := make([][]float64, n)
	for i := range cities {
		cities[i] = string(rune('a' + i))
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = float64((i*7+j*13)%17 + 1)
			}
		}
	}
	inst, err := NewInstanceFromMatrix(cities, m)
	require.NoError(t, err)
	return inst
}

func quiet() Option {
	return WithLogger(log.New(io.Discard, "", 0))
}

func testConfig(popSize, generations int, rate float64, seed int64) *Config {
	c := DefaultConfig()
	c.GA.PopulationSize = popSize
	c.GA.Generations = generations
	c.GA.MutationRate = rate
	c.Run.Seed = seed
	return c
}

// bruteForce returns the optimal tour cost by enumerating every permutation.
func bruteForce(inst *Instance) float64 {
	n := inst.N()
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}
	e := NewEvaluator(inst, nil)
	best := math.Inf(1)
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			if c := e.Cost(newRoute(perm)); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)
	return best
}

func requireValid(t *testing.T, r Route, n int) {
	t.Helper()
	require.NoError(t, r.Validate(n), "route %v", r)
}
