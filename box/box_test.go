// SPDX-License-Identifier: MIT

package box_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/box"
)

const tol = 1e-12

func TestNew_Degenerate(t *testing.T) {
	_, err := box.New([3][3]float64{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}})
	require.ErrorIs(t, err, box.ErrDegenerateBox)

	// coplanar vectors
	_, err = box.New([3][3]float64{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	require.ErrorIs(t, err, box.ErrDegenerateBox)
}

func TestOrthogonal_Wrap(t *testing.T) {
	b, err := box.Orthogonal(10, 10, 10)
	require.NoError(t, err)
	assert.False(t, b.Triclinic())

	d, r := b.Distance(r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 9.5, Y: 0.5, Z: 0.5})
	assert.InDelta(t, 1.0, r, tol)
	assert.InDelta(t, -1.0, d.X, tol)

	// symmetry: d(i,j) = -d(j,i)
	d2, r2 := b.Distance(r3.Vec{X: 9.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5})
	assert.InDelta(t, r, r2, tol)
	assert.InDelta(t, -d.X, d2.X, tol)
}

func TestHalfLengthBoundary(t *testing.T) {
	b, err := box.Orthogonal(10, 10, 10)
	require.NoError(t, err)
	// exactly L/2 is not wrapped
	d := b.Displacement(r3.Vec{}, r3.Vec{X: 5})
	assert.InDelta(t, 5.0, d.X, tol)
}

func TestDiagonalTriclinicMatchesOrthogonal(t *testing.T) {
	ortho, err := box.Orthogonal(7, 8, 9)
	require.NoError(t, err)
	tri, err := box.Orthogonal(7, 8, 9, box.WithTriclinic())
	require.NoError(t, err)
	require.True(t, tri.Triclinic())

	pts := []r3.Vec{{X: 0.1, Y: 0.2, Z: 0.3}, {X: 6.9, Y: 7.5, Z: 8.8}, {X: 3.4, Y: 4.1, Z: 0.2}}
	for _, a := range pts {
		for _, c := range pts {
			d1 := ortho.Displacement(a, c)
			d2 := tri.Displacement(a, c)
			assert.InDelta(t, d1.X, d2.X, 1e-9)
			assert.InDelta(t, d1.Y, d2.Y, 1e-9)
			assert.InDelta(t, d1.Z, d2.Z, 1e-9)
		}
	}
}

func TestTriclinic_Shear(t *testing.T) {
	b, err := box.New([3][3]float64{{10, 0, 0}, {5, 10, 0}, {0, 0, 10}})
	require.NoError(t, err)
	assert.True(t, b.Triclinic())
	assert.InDelta(t, 1000.0, b.Volume(), 1e-9)

	h := b.Heights()
	assert.InDelta(t, 10.0, h[1], 1e-9)
	assert.InDelta(t, 10.0, h[2], 1e-9)
	assert.InDelta(t, 10/math.Sqrt(1.25), h[0], 1e-9)

	// a point one b-vector away is its own image
	p := r3.Vec{X: 1, Y: 1, Z: 1}
	q := r3.Add(p, r3.Vec{X: 5, Y: 10})
	_, r := b.Distance(p, q)
	assert.InDelta(t, 0.0, r, 1e-9)

	f := b.ToFractional(r3.Vec{X: 5, Y: 10})
	assert.InDelta(t, 0.0, f.X, 1e-12)
	assert.InDelta(t, 1.0, f.Y, 1e-12)
	back := b.FromFractional(f)
	assert.InDelta(t, 5.0, back.X, 1e-12)
}

func TestNew_PermutedLattice(t *testing.T) {
	for _, vectors := range [][3][3]float64{
		{{0, 5, 0}, {5, 0, 0}, {0, 0, 5}},
		{{0, 4, 1}, {5, 0, 0}, {0, 0, 5}},
	} {
		b, err := box.New(vectors)
		require.NoError(t, err, "%v", vectors)
		assert.InDelta(t, math.Abs(vectors[0][1]*vectors[1][0]*vectors[2][2]), b.Volume(), 1e-9)

		a := r3.Vec{X: vectors[0][0], Y: vectors[0][1], Z: vectors[0][2]}
		f := b.ToFractional(a)
		assert.InDelta(t, 1.0, f.X, 1e-12)
		assert.InDelta(t, 0.0, f.Y, 1e-12)
		assert.InDelta(t, 0.0, f.Z, 1e-12)

		p := r3.Vec{X: 1, Y: 1, Z: 1}
		_, r := b.Distance(p, r3.Add(p, a))
		assert.InDelta(t, 0.0, r, 1e-9)
	}
}

func TestRemap(t *testing.T) {
	b, err := box.Orthogonal(4, 4, 4)
	require.NoError(t, err)
	p := b.Remap(r3.Vec{X: -1, Y: 9, Z: 4})
	assert.InDelta(t, 3.0, p.X, tol)
	assert.InDelta(t, 1.0, p.Y, tol)
	assert.InDelta(t, 0.0, p.Z, tol)

	tri, err := box.New([3][3]float64{{4, 0, 0}, {2, 4, 0}, {0, 0, 4}})
	require.NoError(t, err)
	q := tri.Remap(r3.Vec{X: 2.5, Y: -1, Z: 1})
	f := tri.ToFractional(q)
	for _, c := range []float64{f.X, f.Y, f.Z} {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.Less(t, c, 1.0)
	}
	// remapping preserves the periodic identity of the point
	_, r := tri.Distance(q, r3.Vec{X: 2.5, Y: -1, Z: 1})
	assert.InDelta(t, 0.0, r, 1e-9)
}

func TestWithEpsilon_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { box.WithEpsilon(-1) })
}
