// SPDX-License-Identifier: MIT

package neighbor

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
)

// GuessRadius is prefactor·(V/N)^(1/3), the staging radius for N atoms.
func GuessRadius(b *box.Box, n int, prefactor float64) float64 {
	if n == 0 {
		return 0
	}
	return prefactor * math.Cbrt(b.Volume()/float64(n))
}

// Stage clears and refills the staged candidate list of every host atom
// with all atoms inside the guess radius, sorted by distance. Tables are
// not touched. The species filter is ignored here; staged builds apply it
// when committing.
func Stage(sys *atoms.System, opts ...Option) error {
	o := resolve(opts)
	b, err := sys.Box()
	if err != nil {
		return err
	}
	_, err = stage(sys, b, o)
	return err
}

// stage returns the host handles it filled.
//
// Stage 1: clear staged lists.
// Stage 2: symmetric half loop for all atoms, host-only scan otherwise.
// Stage 3: sort each host list by distance.
func stage(sys *atoms.System, b *box.Box, o Options) ([]int, error) {
	list := sys.Atoms()
	for i := range list {
		list[i].Staged = list[i].Staged[:0]
	}
	radius := GuessRadius(b, len(list), o.Prefactor)

	hosts := o.Atoms
	if hosts == nil {
		hosts = make([]int, len(list))
		for i := range hosts {
			hosts[i] = i
		}
		err := forEachPair(b, list, radius, o.Cells, FilterNone, func(i, j int, d r3.Vec, r float64) error {
			list[i].Staged = append(list[i].Staged, atoms.NewNeighbor(j, d, r))
			list[j].Staged = append(list[j].Staged, atoms.NewNeighbor(i, r3.Scale(-1, d), r))
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		var cl *cellList
		if o.Cells {
			cl = newCellList(b, list, radius)
		}
		for _, i := range hosts {
			if i < 0 || i >= len(list) {
				return nil, errors.Wrapf(atoms.ErrIndexOutOfRange, "host %d", i)
			}
			collect := func(j int) {
				if j == i {
					return
				}
				d, r := b.Distance(list[i].Position, list[j].Position)
				if r < radius {
					list[i].Staged = append(list[i].Staged, atoms.NewNeighbor(j, d, r))
				}
			}
			if cl != nil {
				cl.candidates(i, collect)
				continue
			}
			for j := range list {
				collect(j)
			}
		}
	}

	for _, i := range hosts {
		staged := list[i].Staged
		sort.SliceStable(staged, func(a, c int) bool { return staged[a].Distance < staged[c].Distance })
	}
	return hosts, nil
}
