// SPDX-License-Identifier: MIT

package neighbor

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
)

// cellList bins atoms into a periodic grid whose cells are at least rc wide
// along every face normal, so all neighbors within rc live in the 27
// surrounding cells. Grids thinner than three cells collapse duplicates.
type cellList struct {
	n         [3]int
	members   [][]int // flat cell index → atom handles
	of        []int   // atom handle → flat cell index
	neighbors [][]int // flat cell index → distinct surrounding cells
}

func newCellList(b *box.Box, list []atoms.Atom, rc float64) *cellList {
	h := b.Heights()
	cl := &cellList{}
	for k := 0; k < 3; k++ {
		cl.n[k] = int(math.Max(1, math.Floor(h[k]/rc)))
	}
	total := cl.n[0] * cl.n[1] * cl.n[2]
	cl.members = make([][]int, total)
	cl.of = make([]int, len(list))

	// Stage 1: bin every atom by its fractional coordinate
	for i := range list {
		f := b.ToFractional(b.Remap(list[i].Position))
		c := cl.flat(bin(f.X, cl.n[0]), bin(f.Y, cl.n[1]), bin(f.Z, cl.n[2]))
		cl.of[i] = c
		cl.members[c] = append(cl.members[c], i)
	}

	// Stage 2: periodic 3×3×3 neighborhoods, deduplicated
	cl.neighbors = make([][]int, total)
	for x := 0; x < cl.n[0]; x++ {
		for y := 0; y < cl.n[1]; y++ {
			for z := 0; z < cl.n[2]; z++ {
				seen := make(map[int]struct{}, 27)
				var around []int
				for dx := -1; dx <= 1; dx++ {
					for dy := -1; dy <= 1; dy++ {
						for dz := -1; dz <= 1; dz++ {
							c := cl.flat(mod(x+dx, cl.n[0]), mod(y+dy, cl.n[1]), mod(z+dz, cl.n[2]))
							if _, ok := seen[c]; ok {
								continue
							}
							seen[c] = struct{}{}
							around = append(around, c)
						}
					}
				}
				sort.Ints(around)
				cl.neighbors[cl.flat(x, y, z)] = around
			}
		}
	}
	return cl
}

func (cl *cellList) flat(x, y, z int) int { return (x*cl.n[1]+y)*cl.n[2] + z }

// candidates lists every atom sharing a neighborhood with atom i.
func (cl *cellList) candidates(i int, fn func(j int)) {
	for _, c := range cl.neighbors[cl.of[i]] {
		for _, j := range cl.members[c] {
			fn(j)
		}
	}
}

func bin(f float64, n int) int {
	k := int(f * float64(n))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return k
}

func mod(a, n int) int { return ((a % n) + n) % n }

// pairFunc receives an unordered pair i < j with the displacement i→j.
type pairFunc func(i, j int, d r3.Vec, r float64) error

// forEachPair visits every unordered pair with r < rc exactly once.
// Complexity: brute O(N²), cells O(N·ρ·rc³).
func forEachPair(b *box.Box, list []atoms.Atom, rc float64, useCells bool, filter Filter, fn pairFunc) error {
	visit := func(i, j int) error {
		if !filter.accept(list[i].Type, list[j].Type) {
			return nil
		}
		d, r := b.Distance(list[i].Position, list[j].Position)
		if r < rc {
			return fn(i, j, d, r)
		}
		return nil
	}

	if !useCells {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if err := visit(i, j); err != nil {
					return err
				}
			}
		}
		return nil
	}

	cl := newCellList(b, list, rc)
	var err error
	for i := 0; i < len(list) && err == nil; i++ {
		cl.candidates(i, func(j int) {
			if err != nil || j <= i {
				return
			}
			err = visit(i, j)
		})
	}
	return err
}
