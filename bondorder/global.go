// SPDX-License-Identifier: MIT

package bondorder

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// Bond is one unique neighbor pair i < j.
type Bond struct {
	I, J     int
	Mid      r3.Vec // folded midpoint
	Vec      r3.Vec // position i minus position j, minimum image
	Polar    float64
	Azimuth  float64
	Harmonic map[int][]complex128 // ℓ → Y_ℓm(bond direction), filled by Global
}

// Bonds collects every committed pair (i, j) with i < j from the host atoms
// hosts (nil means all atoms) whose Condition flags agree.
func Bonds(sys *atoms.System, hosts []int) ([]Bond, error) {
	b, err := sys.Box()
	if err != nil {
		return nil, err
	}
	list := sys.Atoms()
	if hosts == nil {
		hosts = make([]int, len(list))
		for i := range hosts {
			hosts[i] = i
		}
	}
	var out []Bond
	for _, i := range hosts {
		if i < 0 || i >= len(list) {
			return nil, errors.Wrapf(atoms.ErrIndexOutOfRange, "host %d", i)
		}
		for _, n := range list[i].Neighbors.Entries() {
			if n.Index <= i || list[n.Index].Condition != list[i].Condition {
				continue
			}
			v := r3.Scale(-1, n.Offset)
			nb := atoms.NewNeighbor(n.Index, v, n.Distance)
			out = append(out, Bond{
				I:       i,
				J:       n.Index,
				Mid:     b.Remap(r3.Add(list[i].Position, r3.Scale(0.5, n.Offset))),
				Vec:     v,
				Polar:   nb.Polar,
				Azimuth: nb.Azimuth,
			})
		}
	}
	return out, nil
}

// GlobalResult holds the system-wide invariants per ℓ.
type GlobalResult struct {
	Qlm map[int][]complex128
	Q   map[int]float64
	W   map[int]float64
	WN  map[int]float64
}

// Global averages Y_ℓm over all bonds and returns the invariants. Each
// bond's harmonics are stored on the bond for later correlation runs.
func Global(bonds []Bond, ls []int, opts ...Option) (*GlobalResult, error) {
	o := resolve(opts)
	if err := checkL(ls); err != nil {
		return nil, err
	}
	if len(bonds) == 0 {
		return nil, ErrNoBonds
	}
	fillHarmonics(bonds, ls)

	res := &GlobalResult{
		Qlm: map[int][]complex128{},
		Q:   map[int]float64{},
		W:   map[int]float64{},
		WN:  map[int]float64{},
	}
	inv := complex(1/float64(len(bonds)), 0)
	for _, l := range ls {
		q := make([]complex128, 2*l+1)
		for k := range bonds {
			for m, y := range bonds[k].Harmonic[l] {
				q[m] += y
			}
		}
		for m := range q {
			q[m] *= inv
		}
		res.Qlm[l] = q
		res.Q[l] = qInvariant(l, q)
		res.W[l], res.WN[l] = wInvariant(l, q, o.ThreeJ)
	}
	return res, nil
}

func fillHarmonics(bonds []Bond, ls []int) {
	for k := range bonds {
		if bonds[k].Harmonic == nil {
			bonds[k].Harmonic = map[int][]complex128{}
		}
		for _, l := range ls {
			if _, ok := bonds[k].Harmonic[l]; ok {
				continue
			}
			y := make([]complex128, 2*l+1)
			for m := -l; m <= l; m++ {
				y[m+l] = Ylm(l, m, bonds[k].Polar, bonds[k].Azimuth)
			}
			bonds[k].Harmonic[l] = y
		}
	}
}
