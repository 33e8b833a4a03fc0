// SPDX-License-Identifier: MIT

// Package voronoi defines what the neighbor builder needs from a Voronoi
// tessellation. No tessellation is computed here; callers plug in an
// implementation (a voro++ binding, a precomputed file) through Tessellator.
package voronoi

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/box"
)

// Face is one facet of a cell, shared with the atom at Neighbor.
// A negative Neighbor denotes a wall and is ignored.
type Face struct {
	Neighbor  int
	Area      float64
	Perimeter float64
	Vertices  int
}

// Cell is the Voronoi cell of one atom.
type Cell struct {
	Faces    []Face
	Volume   float64
	Vertices []r3.Vec // relative to the owning atom
}

// Tessellator computes one Cell per position, in input order. Positions are
// already folded into the primary cell of b.
type Tessellator interface {
	Tessellate(b *box.Box, positions []r3.Vec) ([]Cell, error)
}

// TessellatorFunc adapts a function to Tessellator.
type TessellatorFunc func(b *box.Box, positions []r3.Vec) ([]Cell, error)

// Tessellate calls f.
func (f TessellatorFunc) Tessellate(b *box.Box, positions []r3.Vec) ([]Cell, error) {
	return f(b, positions)
}

// Fixed returns the same precomputed cells for every call, such as cells
// loaded from an external tessellation run.
type Fixed []Cell

// Tessellate returns the stored cells.
func (f Fixed) Tessellate(*box.Box, []r3.Vec) ([]Cell, error) { return f, nil }
