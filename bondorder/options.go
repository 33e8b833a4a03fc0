// SPDX-License-Identifier: MIT

package bondorder

import "github.com/katalvlaran/atomlath/wigner"

// Options controls Compute and Average.
type Options struct {
	// ConditionFilter restricts sums to neighbors sharing the host's
	// Condition flag.
	ConditionFilter bool
	// ThreeJ evaluates Wigner 3j symbols for w_ℓ.
	ThreeJ wigner.Func
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions enables the condition filter and uses wigner.ThreeJ.
func DefaultOptions() Options {
	return Options{ConditionFilter: true, ThreeJ: wigner.ThreeJ}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithConditionFilter toggles the same-condition restriction.
func WithConditionFilter(on bool) Option {
	return func(o *Options) { o.ConditionFilter = on }
}

// WithWigner replaces the 3j evaluator. Panics on nil.
func WithWigner(fn wigner.Func) Option {
	if fn == nil {
		panic("bondorder: WithWigner(nil)")
	}
	return func(o *Options) { o.ThreeJ = fn }
}
