// SPDX-License-Identifier: MIT

package lattice

import "math/rand"

// Option customizes a generator.
type Option func(*config)

type config struct {
	reps  [3]int
	a     float64
	sigma float64
	rng   *rand.Rand
	typ   int
}

const (
	defaultReps = 3
	defaultA    = 1.0
	defaultType = 1
)

func newConfig(opts []Option) config {
	c := config{reps: [3]int{defaultReps, defaultReps, defaultReps}, a: defaultA, typ: defaultType}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithRepetitions sets the number of unit cells along each axis.
func WithRepetitions(nx, ny, nz int) Option {
	return func(c *config) { c.reps = [3]int{nx, ny, nz} }
}

// WithLatticeConstant sets the cell edge. Panics if a <= 0.
func WithLatticeConstant(a float64) Option {
	if a <= 0 {
		panic("lattice: WithLatticeConstant(a<=0)")
	}
	return func(c *config) { c.a = a }
}

// WithNoise sets the gaussian displacement width. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("lattice: WithNoise(sigma<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithSeed creates a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithType sets the species of generated atoms.
func WithType(t int) Option {
	return func(c *config) { c.typ = t }
}
