// SPDX-License-Identifier: MIT

package neighbor_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/neighbor"
	"github.com/katalvlaran/atomlath/voronoi"
)

func fcc(t *testing.T, opts ...lattice.Option) *atoms.System {
	t.Helper()
	opts = append([]lattice.Option{lattice.WithRepetitions(4, 4, 4)}, opts...)
	s, err := lattice.System(lattice.FCC, opts...)
	require.NoError(t, err)
	return s
}

func sets(s *atoms.System) [][]int {
	out := make([][]int, s.Len())
	for i := range out {
		idx := s.At(i).Neighbors.Indices()
		sort.Ints(idx)
		out[i] = idx
	}
	return out
}

func TestBuildCutoff_FCCShell(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.BuildCutoff(s, 0.8))
	for i := 0; i < s.Len(); i++ {
		a := s.At(i)
		require.Equal(t, 12, a.Neighbors.Len(), "atom %d", i)
		assert.Equal(t, 0.8, a.Cutoff)
		for _, n := range a.Neighbors.Entries() {
			assert.InDelta(t, 1/math.Sqrt2, n.Distance, 1e-9)
			assert.True(t, s.At(n.Index).Neighbors.Contains(i), "symmetry %d-%d", i, n.Index)
		}
	}
}

func TestBuildCutoff_CellsMatchBrute(t *testing.T) {
	for _, rc := range []float64{0.8, 1.1, 1.5} {
		brute := fcc(t, lattice.WithNoise(0.03), lattice.WithSeed(3))
		cells := fcc(t, lattice.WithNoise(0.03), lattice.WithSeed(3))
		require.NoError(t, neighbor.BuildCutoff(brute, rc))
		require.NoError(t, neighbor.BuildCutoff(cells, rc, neighbor.WithCells(true)))
		assert.Equal(t, sets(brute), sets(cells), "rc=%g", rc)
	}
}

func TestBuildCutoff_DiagonalTriclinic(t *testing.T) {
	b, list, err := lattice.Generate(lattice.BCC, lattice.WithRepetitions(3, 3, 3), lattice.WithNoise(0.02), lattice.WithSeed(11))
	require.NoError(t, err)
	l := b.Lengths()
	tri, err := box.Orthogonal(l[0], l[1], l[2], box.WithTriclinic())
	require.NoError(t, err)

	s1 := atoms.NewSystem(atoms.WithBox(b))
	s1.Set(list)
	s2 := atoms.NewSystem(atoms.WithBox(tri))
	s2.Set(list)
	require.NoError(t, neighbor.BuildCutoff(s1, 1.1))
	require.NoError(t, neighbor.BuildCutoff(s2, 1.1, neighbor.WithCells(true)))
	assert.Equal(t, sets(s1), sets(s2))
}

func TestBuildCutoff_Errors(t *testing.T) {
	s := atoms.NewSystem()
	s.Set([]atoms.Atom{{}, {}})
	require.ErrorIs(t, neighbor.BuildCutoff(s, 1), atoms.ErrBoxUnset)

	s = fcc(t)
	require.ErrorIs(t, neighbor.BuildCutoff(s, 0), neighbor.ErrInvalidCutoff)

	b, list, err := lattice.Generate(lattice.FCC, lattice.WithRepetitions(3, 3, 3))
	require.NoError(t, err)
	small := atoms.NewSystem(atoms.WithBox(b), atoms.WithCapacity(4))
	small.Set(list)
	require.ErrorIs(t, neighbor.BuildCutoff(small, 0.8), atoms.ErrCapacityExceeded)
}

func TestBuildByNumber(t *testing.T) {
	s := fcc(t, lattice.WithNoise(0.02), lattice.WithSeed(5))
	require.NoError(t, neighbor.BuildByNumber(s, 12, neighbor.WithPrefactor(1.5)))
	for i := 0; i < s.Len(); i++ {
		a := s.At(i)
		require.Equal(t, 12, a.Neighbors.Len())
		// sorted ascending and cutoff equals the 12th distance
		e := a.Neighbors.Entries()
		for k := 1; k < len(e); k++ {
			assert.LessOrEqual(t, e[k-1].Distance, e[k].Distance)
		}
		assert.Equal(t, e[11].Distance, a.Cutoff)
	}
}

func TestBuildByNumber_Insufficient(t *testing.T) {
	s := fcc(t)
	err := neighbor.BuildByNumber(s, 14)
	require.ErrorIs(t, err, neighbor.ErrInsufficientNeighbors)
	// the failing first atom commits nothing
	assert.Equal(t, 0, s.At(0).Neighbors.Len())

	require.ErrorIs(t, neighbor.BuildByNumber(s, 0), neighbor.ErrInvalidCount)
}

func TestBuildSANN(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.BuildSANN(s, neighbor.WithPrefactor(2)))
	for i := 0; i < s.Len(); i++ {
		a := s.At(i)
		require.Equal(t, 12, a.Neighbors.Len())
		assert.InDelta(t, 12/math.Sqrt2/10, a.Cutoff, 1e-9)
	}
}

func TestBuildSANN_NotConverged(t *testing.T) {
	s := fcc(t)
	err := neighbor.BuildSANN(s)
	require.ErrorIs(t, err, neighbor.ErrNotConverged)
}

func TestBuildAdaptive(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.BuildAdaptive(s))
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, 12, s.At(i).Neighbors.Len())
		assert.InDelta(t, 1.2/math.Sqrt2, s.At(i).Cutoff, 1e-9)
	}
}

func TestBuild_Dispatch(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.Build(s, neighbor.WithMethod(neighbor.MethodCutoff), neighbor.WithCutoff(0.8)))
	assert.Equal(t, 12, s.At(0).Neighbors.Len())

	// a rebuild fully resets the table
	require.NoError(t, neighbor.Build(s, neighbor.WithMethod(neighbor.MethodNumber), neighbor.WithCount(6)))
	assert.Equal(t, 6, s.At(0).Neighbors.Len())

	require.ErrorIs(t, neighbor.Build(s, neighbor.WithMethod(neighbor.Method(42))), neighbor.ErrUnknownMethod)
}

func TestFilter(t *testing.T) {
	s := fcc(t)
	for i := 0; i < s.Len(); i++ {
		s.At(i).Type = 1 + i%2
	}
	require.NoError(t, neighbor.BuildCutoff(s, 0.8, neighbor.WithFilter(neighbor.FilterSameType)))
	for i := 0; i < s.Len(); i++ {
		for _, n := range s.At(i).Neighbors.Entries() {
			assert.Equal(t, s.At(i).Type, s.At(n.Index).Type)
		}
	}
	require.NoError(t, neighbor.BuildCutoff(s, 0.8, neighbor.WithFilter(neighbor.FilterCrossType)))
	for i := 0; i < s.Len(); i++ {
		for _, n := range s.At(i).Neighbors.Entries() {
			assert.NotEqual(t, s.At(i).Type, s.At(n.Index).Type)
		}
	}
}

func TestFilter_StagedStrategies(t *testing.T) {
	builds := map[string]func(*atoms.System, ...neighbor.Option) error{
		"number":   func(s *atoms.System, o ...neighbor.Option) error { return neighbor.BuildByNumber(s, 12, o...) },
		"sann":     neighbor.BuildSANN,
		"adaptive": neighbor.BuildAdaptive,
	}
	for name, build := range builds {
		t.Run(name, func(t *testing.T) {
			mixed := func() *atoms.System {
				s := fcc(t)
				for i := 0; i < s.Len(); i++ {
					s.At(i).Type = 1 + i%2
				}
				return s
			}
			all, same := mixed(), mixed()
			require.NoError(t, build(all, neighbor.WithPrefactor(2)))
			require.NoError(t, build(same, neighbor.WithPrefactor(2), neighbor.WithFilter(neighbor.FilterSameType)))

			// selection runs on every species, the filter trims the result
			for i := 0; i < all.Len(); i++ {
				var want []int
				for _, j := range all.At(i).Neighbors.Indices() {
					if all.At(j).Type == all.At(i).Type {
						want = append(want, j)
					}
				}
				sort.Ints(want)
				got := same.At(i).Neighbors.Indices()
				sort.Ints(got)
				assert.Equal(t, want, got, "atom %d", i)
				assert.InDelta(t, all.At(i).Cutoff, same.At(i).Cutoff, 1e-12, "atom %d", i)
			}
		})
	}
}

func TestSymmetrize(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.BuildByNumber(s, 12, neighbor.WithAtoms([]int{0})))
	require.Equal(t, 12, s.At(0).Neighbors.Len())
	first := s.At(0).Neighbors.At(0).Index
	require.Equal(t, 0, s.At(first).Neighbors.Len())

	require.NoError(t, neighbor.Symmetrize(s))
	assert.True(t, s.At(first).Neighbors.Contains(0))
	assert.Equal(t, 1, s.At(first).Neighbors.Len())
}

func TestStage_HostOnlyMatchesFull(t *testing.T) {
	full := fcc(t, lattice.WithNoise(0.02), lattice.WithSeed(9))
	host := fcc(t, lattice.WithNoise(0.02), lattice.WithSeed(9))
	require.NoError(t, neighbor.Stage(full, neighbor.WithPrefactor(2)))
	require.NoError(t, neighbor.Stage(host, neighbor.WithPrefactor(2), neighbor.WithAtoms([]int{3}), neighbor.WithCells(true)))
	require.Equal(t, len(full.At(3).Staged), len(host.At(3).Staged))
	for k := range full.At(3).Staged {
		assert.Equal(t, full.At(3).Staged[k].Index, host.At(3).Staged[k].Index)
	}
}

func TestBuildVoronoi(t *testing.T) {
	b, err := box.Orthogonal(4, 4, 4)
	require.NoError(t, err)
	s := atoms.NewSystem(atoms.WithBox(b))
	s.Set([]atoms.Atom{
		{Position: r3.Vec{X: 1, Y: 1, Z: 1}},
		{Position: r3.Vec{X: 2, Y: 1, Z: 1}},
		{Position: r3.Vec{X: 1, Y: 2, Z: 1}},
	})
	cells := voronoi.Fixed{
		{Volume: 8, Faces: []voronoi.Face{{Neighbor: 1, Area: 1, Perimeter: 4, Vertices: 4}, {Neighbor: 2, Area: 3, Perimeter: 7, Vertices: 5}, {Neighbor: -1, Area: 9}},
			Vertices: []r3.Vec{{X: 1}}},
		{Volume: 4, Faces: []voronoi.Face{{Neighbor: 0, Area: 2}}},
		{Volume: 6, Faces: []voronoi.Face{{Neighbor: 0, Area: 1}, {Neighbor: 0, Area: 1}}},
	}
	require.NoError(t, neighbor.BuildVoronoi(s, neighbor.WithTessellator(cells)))
	assert.Equal(t, atoms.AreaNormalized, s.Normalization())

	a := s.At(0)
	require.Equal(t, 2, a.Neighbors.Len())
	assert.InDelta(t, 0.25, a.Neighbors.At(0).Weight, 1e-12)
	assert.InDelta(t, 0.75, a.Neighbors.At(1).Weight, 1e-12)
	assert.Equal(t, 5, a.Neighbors.At(1).FaceVertices)
	assert.InDelta(t, math.Cbrt(3*8/(4*math.Pi)), a.Cutoff, 1e-12)
	assert.InDelta(t, 2.0, a.Vertices[0].X, 1e-12)
	assert.InDelta(t, 6.0, a.AvgVolume, 1e-12) // (8+4+6)/3

	// duplicate faces are merged
	require.Equal(t, 1, s.At(2).Neighbors.Len())
	assert.InDelta(t, 2.0, s.At(2).Neighbors.At(0).FaceArea, 1e-12)
	assert.InDelta(t, 1.0, s.At(2).Neighbors.At(0).Weight, 1e-12)

	// a following cutoff build restores count normalization
	require.NoError(t, neighbor.BuildCutoff(s, 1.5))
	assert.Equal(t, atoms.CountNormalized, s.Normalization())
}

func TestBuildVoronoi_Errors(t *testing.T) {
	s := fcc(t)
	require.ErrorIs(t, neighbor.BuildVoronoi(s), neighbor.ErrNoTessellator)

	bad := voronoi.TessellatorFunc(func(*box.Box, []r3.Vec) ([]voronoi.Cell, error) {
		return nil, assert.AnError
	})
	require.ErrorIs(t, neighbor.BuildVoronoi(s, neighbor.WithTessellator(bad)), neighbor.ErrExternal)

	short := voronoi.Fixed{{}}
	require.ErrorIs(t, neighbor.BuildVoronoi(s, neighbor.WithTessellator(short)), neighbor.ErrExternal)
}

func TestResetCutoffs(t *testing.T) {
	s := fcc(t)
	require.NoError(t, neighbor.BuildCutoff(s, 0.8))
	neighbor.ResetCutoffs(s, 2)
	assert.InDelta(t, 2/math.Sqrt2, s.At(0).Cutoff, 1e-9)
}
