package tsp

import "math/rand/v2"

// tournamentSelect draws TournamentSize indices uniformly with replacement
// and returns the one with the lowest cost. The first draw is the incumbent
// and is only replaced by a strictly cheaper candidate, so ties go to the
// earliest draw.
func tournamentSelect(costs []float64, rng *rand.Rand) int {
	best := rng.IntN(len(costs))
	for i := 1; i < TournamentSize; i++ {
		cand := rng.IntN(len(costs))
		if costs[cand] < costs[best] {
			best = cand
		}
	}
	return best
}

// marker is a reusable "already placed" set over city indices. Bumping the
// stamp clears it in O(1).
type marker struct {
	seen  []uint32
	stamp uint32
}

func newMarker(n int) *marker {
	return &marker{seen: make([]uint32, n)}
}

func (m *marker) reset() {
	m.stamp++
	if m.stamp == 0 { // wrapped
		clear(m.seen)
		m.stamp = 1
	}
}

func (m *marker) mark(c int) { m.seen[c] = m.stamp }
func (m *marker) marked(c int) bool { return m.seen[c] == m.stamp }

// minCrossoverCities is the fewest non-start cities for which the segment
// bounds of orderCrossover are drawn; below it the first parent is copied.
const minCrossoverCities = 3

// orderCrossover builds one child from two parents of equal length L.
// start is drawn from [1, L-2] and end from [start, L-2].
func orderCrossover(p1, p2 Route, rng *rand.Rand, m *marker) Route {
	l := len(p1)
	if l-2 < minCrossoverCities {
		return p1.Copy()
	}
	start := rng.IntN(l-2) + 1
	end := rng.IntN(l-1-start) + start
	return crossoverAt(p1, p2, start, end, m)
}

// crossoverAt is the deterministic part of orderCrossover: p1[start..end] is
// kept in place and the remaining interior slots are filled left to right
// with the unused cities of p2, in p2's order. The cursor into p2 never moves
// backwards.
func crossoverAt(p1, p2 Route, start, end int, m *marker) Route {
	l := len(p1)
	child := make(Route, l)
	child[0], child[l-1] = p1[0], p1[l-1]

	m.reset()
	m.mark(child[0])
	for i := start; i <= end; i++ {
		child[i] = p1[i]
		m.mark(p1[i])
	}

	cursor := 1
	for i := 1; i < l-1; i++ {
		if i >= start && i <= end {
			continue
		}
		for m.marked(p2[cursor]) {
			cursor++
		}
		child[i] = p2[cursor]
		m.mark(p2[cursor])
	}
	return child
}

// mutateSwap exchanges two interior positions of r in place with probability
// rate. i and j are drawn independently, so i == j leaves r unchanged.
// Routes with fewer than two interior positions are left alone and consume
// no random draws. It reports whether a swap was attempted.
func mutateSwap(r Route, rate float64, rng *rand.Rand) bool {
	interior := len(r) - 2
	if interior < 2 {
		return false
	}
	if rng.Float64() >= rate {
		return false
	}
	i := rng.IntN(interior) + 1
	j := rng.IntN(interior) + 1
	r[i], r[j] = r[j], r[i]
	return true
}
