// SPDX-License-Identifier: MIT

package cna

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/neighbor"
)

// ErrNoLatticeConstant is returned by MethodFixed without a lattice constant.
var ErrNoLatticeConstant = errors.New("cna: fixed cutoffs need a lattice constant")

// Method selects how shell cutoffs are chosen.
type Method int

const (
	// MethodAdaptive derives cutoffs from each atom's own shell distances.
	MethodAdaptive Method = iota
	// MethodFixed scales a global lattice constant.
	MethodFixed
)

// Shell cutoff factors.
const (
	stagingPrefactor = 3.0
	fcc12Factor      = 0.854  // between the fcc first (0.707a) and second (a) shells
	bcc14Factor      = 1.207  // between the bcc second (a) and third (1.414a) shells
	adaptiveFactor   = 1.207  // (1+√2)/2
	bccInnerScale    = 1.1547 // 2/√3 maps the 8 inner bcc distances onto the outer 6
)

// Options configures Classify.
type Options struct {
	Method          Method
	LatticeConstant float64
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects fixed or adaptive cutoffs.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithLatticeConstant sets a for MethodFixed. Panics if a <= 0.
func WithLatticeConstant(a float64) Option {
	if a <= 0 {
		panic("cna: WithLatticeConstant(a<=0)")
	}
	return func(o *Options) { o.LatticeConstant = a }
}

// Counts is the number of real atoms per label, indexed by Structure.
type Counts []int

// Classify labels every real atom as FCC, HCP, ICO, BCC or Unknown and
// returns the counts [unknown, fcc, hcp, bcc, ico].
//
// Stage 1: stage candidates with a wide radius.
// Stage 2: 12-atom shell against fcc/hcp/ico.
// Stage 3: 14-atom shell against bcc for the atoms left.
func Classify(sys *atoms.System, opts ...Option) (Counts, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	if o.Method == MethodFixed && o.LatticeConstant <= 0 {
		return nil, ErrNoLatticeConstant
	}
	if err := neighbor.Stage(sys, neighbor.WithPrefactor(stagingPrefactor)); err != nil {
		return nil, errors.Wrap(err, "cna: stage")
	}
	list := sys.Atoms()
	for i := range list {
		list[i].Structure = int(Unknown)
	}

	for i := 0; i < sys.RealCount(); i++ {
		staged := list[i].Staged
		if len(staged) < 12 {
			continue
		}
		rc := fcc12Factor * o.LatticeConstant
		if o.Method == MethodAdaptive {
			rc = adaptiveFactor * meanDistance(staged[:12])
		}
		list[i].Structure = int(match(Signatures(staged[:12], rc), templates12))
	}

	for i := 0; i < sys.RealCount(); i++ {
		staged := list[i].Staged
		if list[i].Structure != int(Unknown) || len(staged) < 14 {
			continue
		}
		rc := bcc14Factor * o.LatticeConstant
		if o.Method == MethodAdaptive {
			var inner, outer float64
			for k := 0; k < 8; k++ {
				inner += staged[k].Distance
			}
			for k := 8; k < 14; k++ {
				outer += staged[k].Distance
			}
			rc = adaptiveFactor * (bccInnerScale*inner + outer) / 14
		}
		list[i].Structure = int(match(Signatures(staged[:14], rc), templates14))
	}

	return count(sys, int(ICO)+1), nil
}

func meanDistance(ns []atoms.Neighbor) float64 {
	var s float64
	for _, n := range ns {
		s += n.Distance
	}
	return s / float64(len(ns))
}

func count(sys *atoms.System, size int) Counts {
	c := make(Counts, size)
	for i := 0; i < sys.RealCount(); i++ {
		if s := sys.At(i).Structure; s >= 0 && s < size {
			c[s]++
		}
	}
	return c
}
