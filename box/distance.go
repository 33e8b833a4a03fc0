// SPDX-License-Identifier: MIT

package box

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Displacement returns the minimum-image vector pointing from "from" to "to".
// Each axis is shifted by at most one period, so both points are expected to
// lie within one box length of each other.
// Complexity: O(1).
func (b *Box) Displacement(from, to r3.Vec) r3.Vec {
	d := r3.Sub(to, from)
	if !b.triclinic {
		d.X = wrap(d.X, b.lengths[0])
		d.Y = wrap(d.Y, b.lengths[1])
		d.Z = wrap(d.Z, b.lengths[2])
		return d
	}
	f := b.rotinv.apply(d)
	f.X = wrap(f.X, 1)
	f.Y = wrap(f.Y, 1)
	f.Z = wrap(f.Z, 1)
	return b.rot.apply(f)
}

// Distance returns the minimum-image displacement and its length.
func (b *Box) Distance(from, to r3.Vec) (r3.Vec, float64) {
	d := b.Displacement(from, to)
	return d, r3.Norm(d)
}

// Remap folds p into the primary cell: [0, L) per axis for orthogonal boxes,
// fractional [0, 1) per axis otherwise.
func (b *Box) Remap(p r3.Vec) r3.Vec {
	if !b.triclinic {
		return r3.Vec{
			X: fold(p.X, b.lengths[0]),
			Y: fold(p.Y, b.lengths[1]),
			Z: fold(p.Z, b.lengths[2]),
		}
	}
	f := b.rotinv.apply(p)
	f = r3.Vec{X: fold(f.X, 1), Y: fold(f.Y, 1), Z: fold(f.Z, 1)}
	return b.rot.apply(f)
}

func wrap(x, l float64) float64 {
	half := 0.5 * l
	switch {
	case x > half:
		return x - l
	case x < -half:
		return x + l
	}
	return x
}

func fold(x, l float64) float64 {
	x -= l * math.Floor(x/l)
	if x >= l { // rounding at the upper edge
		x = 0
	}
	return x
}
