// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
)

// Kind names a crystal structure.
type Kind string

const (
	SC      Kind = "sc"
	BCC     Kind = "bcc"
	FCC     Kind = "fcc"
	HCP     Kind = "hcp"
	Diamond Kind = "diamond"
)

// Kinds lists every supported structure.
func Kinds() []Kind { return []Kind{SC, BCC, FCC, HCP, Diamond} }

// cell is a unit cell: edge multipliers (in units of a) and a fractional basis.
type cell struct {
	edges [3]float64
	basis []r3.Vec
}

var cells = map[Kind]cell{
	SC:  {edges: [3]float64{1, 1, 1}, basis: []r3.Vec{{}}},
	BCC: {edges: [3]float64{1, 1, 1}, basis: []r3.Vec{{}, {X: .5, Y: .5, Z: .5}}},
	FCC: {edges: [3]float64{1, 1, 1}, basis: []r3.Vec{
		{}, {X: .5, Y: .5}, {X: .5, Z: .5}, {Y: .5, Z: .5},
	}},
	// orthohexagonal setting, a is the in-plane nearest-neighbor distance
	HCP: {edges: [3]float64{1, math.Sqrt(3), math.Sqrt(8.0 / 3.0)}, basis: []r3.Vec{
		{}, {X: .5, Y: .5}, {Y: 1.0 / 3.0, Z: .5}, {X: .5, Y: 5.0 / 6.0, Z: .5},
	}},
	Diamond: {edges: [3]float64{1, 1, 1}, basis: []r3.Vec{
		{}, {X: .5, Y: .5}, {X: .5, Z: .5}, {Y: .5, Z: .5},
		{X: .25, Y: .25, Z: .25}, {X: .75, Y: .75, Z: .25}, {X: .75, Y: .25, Z: .75}, {X: .25, Y: .75, Z: .75},
	}},
}

// Generate builds a periodic box filled with kind.
//
// Stage 1: validate sizes and RNG policy.
// Stage 2: build the box from edges × repetitions.
// Stage 3: place basis atoms cell by cell, ids from 1.
//
// Complexity: O(nx·ny·nz·|basis|).
func Generate(kind Kind, opts ...Option) (*box.Box, []atoms.Atom, error) {
	cfg := newConfig(opts)
	c, ok := cells[kind]
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
	for i, n := range cfg.reps {
		if n < 1 {
			return nil, nil, errors.Wrapf(ErrBadSize, "repetitions[%d]=%d", i, n)
		}
	}
	if cfg.sigma > 0 && cfg.rng == nil {
		return nil, nil, errors.Wrapf(ErrNeedRandSource, "noise %g", cfg.sigma)
	}

	var edge [3]float64
	for i := range edge {
		edge[i] = c.edges[i] * cfg.a
	}
	b, err := box.Orthogonal(edge[0]*float64(cfg.reps[0]), edge[1]*float64(cfg.reps[1]), edge[2]*float64(cfg.reps[2]))
	if err != nil {
		return nil, nil, errors.Wrap(err, "lattice: box")
	}

	out := make([]atoms.Atom, 0, cfg.reps[0]*cfg.reps[1]*cfg.reps[2]*len(c.basis))
	for ix := 0; ix < cfg.reps[0]; ix++ {
		for iy := 0; iy < cfg.reps[1]; iy++ {
			for iz := 0; iz < cfg.reps[2]; iz++ {
				for _, f := range c.basis {
					p := r3.Vec{
						X: (float64(ix) + f.X) * edge[0],
						Y: (float64(iy) + f.Y) * edge[1],
						Z: (float64(iz) + f.Z) * edge[2],
					}
					if cfg.sigma > 0 {
						p.X += cfg.rng.NormFloat64() * cfg.sigma
						p.Y += cfg.rng.NormFloat64() * cfg.sigma
						p.Z += cfg.rng.NormFloat64() * cfg.sigma
						p = b.Remap(p)
					}
					out = append(out, atoms.Atom{ID: len(out) + 1, Position: p, Type: cfg.typ})
				}
			}
		}
	}
	return b, out, nil
}

// System is Generate followed by loading the result into a fresh arena.
func System(kind Kind, opts ...Option) (*atoms.System, error) {
	b, list, err := Generate(kind, opts...)
	if err != nil {
		return nil, err
	}
	s := atoms.NewSystem(atoms.WithBox(b))
	s.Set(list)
	return s, nil
}

// NearestNeighborDistance is the first-shell distance for kind at constant a.
func NearestNeighborDistance(kind Kind, a float64) float64 {
	switch kind {
	case BCC:
		return a * math.Sqrt(3) / 2
	case FCC:
		return a / math.Sqrt2
	case Diamond:
		return a * math.Sqrt(3) / 4
	}
	return a // SC and HCP
}
