// SPDX-License-Identifier: MIT

package box

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an immutable periodic cell.
type Box struct {
	vectors   [3]r3.Vec  // lattice vectors a, b, c
	lengths   [3]float64 // |a|, |b|, |c|
	rot       mat3       // columns are the lattice vectors
	rotinv    mat3       // inverse of rot
	triclinic bool
	volume    float64
}

// New builds a Box from three lattice vectors given as rows.
//
// Stage 1: validate lengths and volume (ErrDegenerateBox).
// Stage 2: derive rot/rotinv via a pivoted inverse (ErrSingular).
// Stage 3: decide on the triclinic pipeline.
func New(vectors [3][3]float64, opts ...Option) (*Box, error) {
	cfg := newConfig(opts)
	b := &Box{}

	rows := mat3(vectors)
	for i := 0; i < 3; i++ {
		b.vectors[i] = r3.Vec{X: rows[i][0], Y: rows[i][1], Z: rows[i][2]}
		b.lengths[i] = r3.Norm(b.vectors[i])
		if b.lengths[i] <= cfg.eps {
			return nil, errors.Wrapf(ErrDegenerateBox, "vector %d has zero length", i)
		}
	}
	b.volume = math.Abs(rows.det())
	if b.volume <= cfg.eps {
		return nil, errors.Wrapf(ErrDegenerateBox, "volume %g", b.volume)
	}

	b.rot = rows.transpose()
	inv, err := b.rot.inverse()
	if err != nil {
		return nil, errors.Wrap(err, "box: invert lattice")
	}
	b.rotinv = inv

	b.triclinic = cfg.forceTriclinic
	for i := 0; i < 3 && !b.triclinic; i++ {
		for j := 0; j < 3; j++ {
			if i != j && math.Abs(rows[i][j]) > cfg.eps {
				b.triclinic = true
				break
			}
		}
	}
	return b, nil
}

// Orthogonal is a shorthand for a diagonal box with edges lx, ly, lz.
func Orthogonal(lx, ly, lz float64, opts ...Option) (*Box, error) {
	return New([3][3]float64{{lx, 0, 0}, {0, ly, 0}, {0, 0, lz}}, opts...)
}

// Vectors returns the lattice vectors.
func (b *Box) Vectors() [3]r3.Vec { return b.vectors }

// Lengths returns the edge lengths (row norms).
func (b *Box) Lengths() [3]float64 { return b.lengths }

// Triclinic reports whether displacements use the fractional pipeline.
func (b *Box) Triclinic() bool { return b.triclinic }

// Volume is |a · (b × c)|.
func (b *Box) Volume() float64 { return b.volume }

// Heights returns the perpendicular distance between each pair of opposite
// faces: |a_k · (a_i × a_j)| / |a_i × a_j|.
func (b *Box) Heights() [3]float64 {
	var h [3]float64
	for k := 0; k < 3; k++ {
		n := r3.Cross(b.vectors[(k+1)%3], b.vectors[(k+2)%3])
		h[k] = math.Abs(r3.Dot(b.vectors[k], n)) / r3.Norm(n)
	}
	return h
}

// ToFractional maps a cartesian point to lattice coordinates.
func (b *Box) ToFractional(p r3.Vec) r3.Vec { return b.rotinv.apply(p) }

// FromFractional maps lattice coordinates back to cartesian space.
func (b *Box) FromFractional(f r3.Vec) r3.Vec { return b.rot.apply(f) }

func (a mat3) apply(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0][0]*v.X + a[0][1]*v.Y + a[0][2]*v.Z,
		Y: a[1][0]*v.X + a[1][1]*v.Y + a[1][2]*v.Z,
		Z: a[2][0]*v.X + a[2][1]*v.Y + a[2][2]*v.Z,
	}
}
