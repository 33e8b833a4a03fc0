// SPDX-License-Identifier: MIT

package bondorder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/bondorder"
	"github.com/katalvlaran/atomlath/box"
	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/neighbor"
	"github.com/katalvlaran/atomlath/voronoi"
)

func crystal(t *testing.T, kind lattice.Kind, rc float64, opts ...lattice.Option) *atoms.System {
	t.Helper()
	opts = append([]lattice.Option{lattice.WithRepetitions(4, 4, 4)}, opts...)
	s, err := lattice.System(kind, opts...)
	require.NoError(t, err)
	require.NoError(t, neighbor.BuildCutoff(s, rc))
	return s
}

func TestYlm(t *testing.T) {
	th, ph := 0.7, 1.3
	assert.InDelta(t, 1/math.Sqrt(4*math.Pi), real(bondorder.Ylm(0, 0, th, ph)), 1e-12)
	assert.InDelta(t, math.Sqrt(3/(4*math.Pi))*math.Cos(th), real(bondorder.Ylm(1, 0, th, ph)), 1e-12)

	y11 := bondorder.Ylm(1, 1, th, ph)
	amp := -math.Sqrt(3/(8*math.Pi)) * math.Sin(th)
	assert.InDelta(t, amp*math.Cos(ph), real(y11), 1e-12)
	assert.InDelta(t, amp*math.Sin(ph), imag(y11), 1e-12)

	// Y_1^-1 = -conj(Y_1^1)
	y1m1 := bondorder.Ylm(1, -1, th, ph)
	assert.InDelta(t, -real(y11), real(y1m1), 1e-12)
	assert.InDelta(t, imag(y11), imag(y1m1), 1e-12)

	// addition theorem: Σ_m |Y_ℓm|² = (2ℓ+1)/4π
	for _, l := range []int{2, 4, 6, 8, 12} {
		var s float64
		for m := -l; m <= l; m++ {
			y := bondorder.Ylm(l, m, th, ph)
			s += real(y)*real(y) + imag(y)*imag(y)
		}
		assert.InDelta(t, float64(2*l+1)/(4*math.Pi), s, 1e-10, "l=%d", l)
	}
}

func TestCompute_ReferenceCrystals(t *testing.T) {
	cases := []struct {
		name   string
		kind   lattice.Kind
		rc     float64
		q4, q6 float64
		w4, w6 float64
	}{
		{"fcc", lattice.FCC, 0.8, 0.19094, 0.57452, -0.159317, -0.013161},
		{"hcp", lattice.HCP, 1.1, 0.09722, 0.48476, 0.134097, -0.012442},
		{"bcc", lattice.BCC, 1.1, 0.03637, 0.51069, 0.159317, 0.013161},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := crystal(t, tc.kind, tc.rc)
			require.NoError(t, bondorder.Compute(s, []int{4, 6}))
			a := s.At(0)
			assert.InDelta(t, tc.q4, a.Q[4], 1e-4)
			assert.InDelta(t, tc.q6, a.Q[6], 1e-4)
			assert.InDelta(t, tc.w4, a.WN[4], 1e-4)
			assert.InDelta(t, tc.w6, a.WN[6], 1e-4)
		})
	}
}

// rotate applies a rotation about z by a, then about x by b.
func rotate(v r3.Vec, a, b float64) r3.Vec {
	x := v.X*math.Cos(a) - v.Y*math.Sin(a)
	y := v.X*math.Sin(a) + v.Y*math.Cos(a)
	return r3.Vec{X: x, Y: y*math.Cos(b) - v.Z*math.Sin(b), Z: y*math.Sin(b) + v.Z*math.Cos(b)}
}

func cluster(t *testing.T, dirs []r3.Vec) *atoms.System {
	t.Helper()
	b, err := box.Orthogonal(20, 20, 20)
	require.NoError(t, err)
	c := r3.Vec{X: 10, Y: 10, Z: 10}
	list := []atoms.Atom{{Position: c}}
	for _, d := range dirs {
		list = append(list, atoms.Atom{Position: r3.Add(c, d)})
	}
	s := atoms.NewSystem(atoms.WithBox(b))
	s.Set(list)
	for j := 1; j < s.Len(); j++ {
		d, r, err := s.Distance(0, j)
		require.NoError(t, err)
		require.NoError(t, s.AddNeighbor(0, j, d, r))
		require.NoError(t, s.AddNeighbor(j, 0, r3.Scale(-1, d), r))
	}
	return s
}

func TestCompute_RotationInvariance(t *testing.T) {
	dirs := []r3.Vec{{X: 1}, {Y: 1.1}, {X: 0.3, Y: -0.4, Z: 0.9}, {X: -0.8, Z: -0.5}, {Y: -1, Z: 0.2}}
	rot := make([]r3.Vec, len(dirs))
	for i, d := range dirs {
		rot[i] = rotate(d, 0.83, -1.9)
	}
	s1, s2 := cluster(t, dirs), cluster(t, rot)
	ls := []int{2, 4, 6, 8}
	require.NoError(t, bondorder.Compute(s1, ls))
	require.NoError(t, bondorder.Compute(s2, ls))
	for _, l := range ls {
		assert.InDelta(t, s1.At(0).Q[l], s2.At(0).Q[l], 1e-10, "q%d", l)
		assert.InDelta(t, s1.At(0).W[l], s2.At(0).W[l], 1e-10, "w%d", l)
	}
}

func TestCompute_AreaNormalizedMatchesUniform(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.NoError(t, bondorder.Compute(s, []int{6}))
	want := s.At(0).Q[6]

	// equal faces to the 12 nearest neighbors reproduce the same shell
	cells := make(voronoi.Fixed, s.Len())
	for i := range cells {
		for _, n := range s.At(i).Neighbors.Entries() {
			cells[i].Faces = append(cells[i].Faces, voronoi.Face{Neighbor: n.Index, Area: 0.5})
		}
		cells[i].Volume = 0.25
	}
	require.NoError(t, neighbor.BuildVoronoi(s, neighbor.WithTessellator(cells)))
	require.Equal(t, atoms.AreaNormalized, s.Normalization())
	require.NoError(t, bondorder.Compute(s, []int{6}))
	assert.InDelta(t, want, s.At(0).Q[6], 1e-12)
}

func TestCompute_NoNeighbors(t *testing.T) {
	b, err := box.Orthogonal(10, 10, 10)
	require.NoError(t, err)
	s := atoms.NewSystem(atoms.WithBox(b))
	s.Set([]atoms.Atom{{}, {Position: r3.Vec{X: 5, Y: 5, Z: 5}}})
	require.NoError(t, neighbor.BuildCutoff(s, 1))
	err = bondorder.Compute(s, []int{6})
	require.ErrorIs(t, err, bondorder.ErrNoNeighbors)

	require.ErrorIs(t, bondorder.Compute(s, []int{-1}), bondorder.ErrInvalidL)
}

func TestCompute_ConditionFilter(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	s.At(0).Condition = true
	// atom 0 differs from all its neighbors
	require.ErrorIs(t, bondorder.Compute(s, []int{6}), bondorder.ErrNoNeighbors)
	require.NoError(t, bondorder.Compute(s, []int{6}, bondorder.WithConditionFilter(false)))
	assert.InDelta(t, 0.57452, s.At(0).Q[6], 1e-4)
}

func TestAverage(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.ErrorIs(t, bondorder.Average(s, []int{6}), bondorder.ErrNotComputed)
	require.NoError(t, bondorder.Compute(s, []int{4, 6}))
	require.NoError(t, bondorder.Average(s, []int{4, 6}))
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, s.At(i).Q[6], s.At(i).AQ[6], 1e-10)
		assert.InDelta(t, s.At(i).WN[4], s.At(i).AWN[4], 1e-10)
	}

	noisy := crystal(t, lattice.FCC, 0.85, lattice.WithNoise(0.04), lattice.WithSeed(2))
	require.NoError(t, bondorder.Compute(noisy, []int{6}))
	require.NoError(t, bondorder.Average(noisy, []int{6}))
	var spreadQ, spreadA float64
	q, err := bondorder.QValues(noisy, 6, false)
	require.NoError(t, err)
	aq, err := bondorder.QValues(noisy, 6, true)
	require.NoError(t, err)
	mq, ma := mean(q), mean(aq)
	for i := range q {
		spreadQ += (q[i] - mq) * (q[i] - mq)
		spreadA += (aq[i] - ma) * (aq[i] - ma)
	}
	// averaging narrows the distribution
	assert.Less(t, spreadA, spreadQ)
}

func mean(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s / float64(len(x))
}

func TestValues(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.NoError(t, bondorder.Compute(s, []int{6}))
	q, err := bondorder.QValues(s, 6, false)
	require.NoError(t, err)
	assert.Len(t, q, s.RealCount())

	w, err := bondorder.WValues(s, 6, false, true)
	require.NoError(t, err)
	assert.InDelta(t, -0.013161, w[0], 1e-4)

	_, err = bondorder.QValues(s, 8, false)
	require.ErrorIs(t, err, bondorder.ErrNotComputed)
}

func TestDisorder(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.ErrorIs(t, bondorder.Disorder(s, 6), bondorder.ErrNotComputed)
	require.NoError(t, bondorder.Compute(s, []int{6}))
	require.NoError(t, bondorder.Disorder(s, 6))
	bondorder.AverageDisorder(s)
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, 0, s.At(i).Disorder, 1e-10)
		assert.InDelta(t, 0, s.At(i).AvgDisorder, 1e-10)
	}

	noisy := crystal(t, lattice.FCC, 0.85, lattice.WithNoise(0.05), lattice.WithSeed(4))
	require.NoError(t, bondorder.Compute(noisy, []int{6}))
	require.NoError(t, bondorder.Disorder(noisy, 6))
	assert.Greater(t, noisy.At(0).Disorder, 0.0)
}

func TestFindSolids(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.NoError(t, bondorder.Compute(s, []int{6}))

	n, err := bondorder.FindSolids(s, bondorder.DefaultSolidOptions())
	require.NoError(t, err)
	assert.Equal(t, s.RealCount(), n)
	a := s.At(0)
	assert.True(t, a.Solid)
	assert.True(t, a.Condition)
	assert.Equal(t, 12, a.FrenkelNumber)
	assert.InDelta(t, 1.0, a.AvgConnection, 1e-10)
	assert.Len(t, a.Connections, 12)

	frac := bondorder.DefaultSolidOptions()
	frac.Criterion = bondorder.CriterionFraction
	frac.MinConnections = 0.5
	n, err = bondorder.FindSolids(s, frac)
	require.NoError(t, err)
	assert.Equal(t, s.RealCount(), n)

	less := bondorder.DefaultSolidOptions()
	less.Compare = bondorder.CompareLess
	n, err = bondorder.FindSolids(s, less)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, s.At(0).Condition)

	// both tests flip: every connection is 1, below 1.5
	less.Threshold = 1.5
	less.AvgThreshold = 1.5
	n, err = bondorder.FindSolids(s, less)
	require.NoError(t, err)
	assert.Equal(t, s.RealCount(), n)
	assert.Equal(t, 12, s.At(0).FrenkelNumber)
	assert.True(t, s.At(0).Solid)
}

func TestCentrosymmetry(t *testing.T) {
	s := crystal(t, lattice.FCC, 0.8)
	require.ErrorIs(t, bondorder.Centrosymmetry(s, 11), bondorder.ErrOddNeighborCount)
	require.ErrorIs(t, bondorder.Centrosymmetry(s, 14), bondorder.ErrTooFewNeighbors)
	require.NoError(t, bondorder.Centrosymmetry(s, 12))
	for i := 0; i < s.Len(); i++ {
		assert.InDelta(t, 0, s.At(i).Centrosymmetry, 1e-20)
	}

	hcp := crystal(t, lattice.HCP, 1.1)
	require.NoError(t, bondorder.Centrosymmetry(hcp, 12))
	assert.Greater(t, hcp.At(0).Centrosymmetry, 0.1)
}

func TestEntropy(t *testing.T) {
	o := bondorder.DefaultEntropyOptions()
	o.Rho = 4
	o.RStop = 1.0

	build := func(noise float64) *atoms.System {
		opts := []lattice.Option{lattice.WithRepetitions(4, 4, 4)}
		if noise > 0 {
			opts = append(opts, lattice.WithNoise(noise), lattice.WithSeed(8))
		}
		s, err := lattice.System(lattice.FCC, opts...)
		require.NoError(t, err)
		require.NoError(t, neighbor.BuildByNumber(s, 12, neighbor.WithPrefactor(1.6)))
		return s
	}
	perfect, noisy := build(0), build(0.05)
	require.NoError(t, bondorder.Entropy(perfect, o))
	require.NoError(t, bondorder.Entropy(noisy, o))

	ep := perfect.Collect(func(a *atoms.Atom) float64 { return a.Entropy })
	en := noisy.Collect(func(a *atoms.Atom) float64 { return a.Entropy })
	assert.Less(t, mean(ep), mean(en))
	for _, v := range ep {
		assert.False(t, math.IsNaN(v))
		assert.InDelta(t, ep[0], v, 1e-9)
	}

	bondorder.AverageEntropy(perfect)
	assert.InDelta(t, ep[0], perfect.At(3).AvgEntropy, 1e-9)
	require.NoError(t, bondorder.AverageEntropySwitch(perfect, 1.0, 12, 6))
	assert.InDelta(t, ep[0], perfect.At(3).AvgEntropy, 1e-9)

	bad := o
	bad.RStart = 0
	require.ErrorIs(t, bondorder.Entropy(perfect, bad), bondorder.ErrBadEntropyRange)
	require.ErrorIs(t, bondorder.AverageEntropySwitch(perfect, 0, 12, 6), bondorder.ErrBadEntropyRange)
}
