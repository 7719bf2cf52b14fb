package core

import "math/rand"

// Sampler provides uniform random samples for rendering algorithms.
// Can be swapped out for deterministic testing or different sampling patterns.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// Not safe for concurrent use; each path lane owns its own instance.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewPathSampler creates a sampler seeded from a (pixel, iteration, depth)
// context. The same context always yields the same sequence, and distinct
// contexts yield statistically independent sequences, so parallel lanes need
// no coordination to stay decorrelated.
func NewPathSampler(pixelIndex, iteration, depth int) *RandomSampler {
	seed := mixSeed(uint64(pixelIndex), uint64(iteration), uint64(depth))
	return &RandomSampler{random: rand.New(rand.NewSource(int64(seed)))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// mixSeed hashes the sample context into a seed using SplitMix64 finalizer
// rounds, so adjacent pixels, iterations and depths land on unrelated seeds.
func mixSeed(pixel, iteration, depth uint64) uint64 {
	h := pixel
	h = splitmix64(h + 0x9e3779b97f4a7c15*iteration)
	h = splitmix64(h + 0x9e3779b97f4a7c15*depth)
	return splitmix64(h)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
