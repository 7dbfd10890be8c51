package tsp

import "math/rand/v2"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewSource returns the deterministic PCG source for seed. Both PCG words are
// derived from the seed so nearby seeds give unrelated streams.
// A zero seed is replaced by defaultSeed.
func NewSource(seed int64) *rand.PCG {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.NewPCG(deriveSeed(seed, 0), deriveSeed(seed, 1))
}

// NewRand wraps NewSource(seed). The returned generator is not safe for
// concurrent use.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with the SplitMix64
// finalizer.
func deriveSeed(parent int64, stream uint64) uint64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// shuffle performs an in-place Fisher–Yates shuffle of a.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
