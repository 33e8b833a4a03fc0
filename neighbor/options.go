// SPDX-License-Identifier: MIT

package neighbor

import (
	"fmt"

	"github.com/katalvlaran/atomlath/voronoi"
)

// Method selects a neighbor strategy.
type Method int

const (
	MethodCutoff Method = iota
	MethodNumber
	MethodSANN
	MethodAdaptive
	MethodVoronoi
)

var methodNames = map[Method]string{
	MethodCutoff:   "cutoff",
	MethodNumber:   "number",
	MethodSANN:     "sann",
	MethodAdaptive: "adaptive",
	MethodVoronoi:  "voronoi",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a configuration string to a Method.
func ParseMethod(s string) (Method, bool) {
	for m, name := range methodNames {
		if name == s {
			return m, true
		}
	}
	return 0, false
}

// Filter restricts which species pairs may become neighbors. Staged
// strategies select on every species and apply it only when committing.
type Filter int

const (
	FilterNone      Filter = iota // any pair
	FilterSameType                // only equal types
	FilterCrossType               // only different types
)

func (f Filter) accept(ti, tj int) bool {
	switch f {
	case FilterSameType:
		return ti == tj
	case FilterCrossType:
		return ti != tj
	}
	return true
}

// Options carries every knob of every strategy.
type Options struct {
	Method      Method
	Cutoff      float64
	Cells       bool
	Filter      Filter
	Prefactor   float64
	Count       int
	Padding     float64
	NLimit      int
	Alpha       float64
	Tessellator voronoi.Tessellator
	Atoms       []int // host atoms; nil means all
}

// Option mutates Options.
type Option func(*Options)

// Defaults.
const (
	DefaultPrefactor = 1.2
	DefaultCount     = 12
	DefaultPadding   = 1.2
	DefaultNLimit    = 6
	DefaultAlpha     = 1.0
)

// DefaultOptions returns the documented defaults (cutoff method, no cutoff).
func DefaultOptions() Options {
	return Options{
		Method:    MethodCutoff,
		Prefactor: DefaultPrefactor,
		Count:     DefaultCount,
		Padding:   DefaultPadding,
		NLimit:    DefaultNLimit,
		Alpha:     DefaultAlpha,
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithMethod selects the strategy used by Build.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithCutoff sets the fixed radius of the cutoff strategy.
func WithCutoff(rc float64) Option { return func(o *Options) { o.Cutoff = rc } }

// WithCells switches pair search and staging to a periodic cell list.
func WithCells(on bool) Option { return func(o *Options) { o.Cells = on } }

// WithFilter sets the species filter.
func WithFilter(f Filter) Option { return func(o *Options) { o.Filter = f } }

// WithPrefactor scales the staging radius. Panics if p <= 0.
func WithPrefactor(p float64) Option {
	if p <= 0 {
		panic("neighbor: WithPrefactor(p<=0)")
	}
	return func(o *Options) { o.Prefactor = p }
}

// WithCount sets k for the by-number strategy. Panics if k < 1.
func WithCount(k int) Option {
	if k < 1 {
		panic("neighbor: WithCount(k<1)")
	}
	return func(o *Options) { o.Count = k }
}

// WithPadding sets the adaptive padding factor. Panics if p <= 0.
func WithPadding(p float64) Option {
	if p <= 0 {
		panic("neighbor: WithPadding(p<=0)")
	}
	return func(o *Options) { o.Padding = p }
}

// WithNLimit sets how many nearest distances define the adaptive mean.
// Panics if n < 1.
func WithNLimit(n int) Option {
	if n < 1 {
		panic("neighbor: WithNLimit(n<1)")
	}
	return func(o *Options) { o.NLimit = n }
}

// WithAlpha sets the Voronoi face-area exponent.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithTessellator plugs in the Voronoi collaborator. Panics on nil.
func WithTessellator(t voronoi.Tessellator) Option {
	if t == nil {
		panic("neighbor: WithTessellator(nil)")
	}
	return func(o *Options) { o.Tessellator = t }
}

// WithAtoms restricts host atoms to the given handles.
func WithAtoms(list []int) Option {
	return func(o *Options) { o.Atoms = append([]int(nil), list...) }
}
