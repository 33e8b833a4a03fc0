// SPDX-License-Identifier: MIT

package box

// Option customizes Box construction.
type Option func(*config)

type config struct {
	forceTriclinic bool
	eps            float64
}

const defaultEpsilon = 1e-12

func newConfig(opts []Option) config {
	c := config{eps: defaultEpsilon}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithTriclinic routes every displacement through fractional coordinates,
// even when the lattice is diagonal.
func WithTriclinic() Option {
	return func(c *config) { c.forceTriclinic = true }
}

// WithEpsilon sets the tolerance for off-diagonal detection and degeneracy.
// Panics if eps is negative.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("box: WithEpsilon(eps<0)")
	}
	return func(c *config) { c.eps = eps }
}
