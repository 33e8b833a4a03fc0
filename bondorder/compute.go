// SPDX-License-Identifier: MIT

package bondorder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// Compute fills Qlm, Q, W and WN for every ℓ in ls on every atom.
//
// Stage 1: validate ℓ.
// Stage 2: per atom, weighted sum of Y_ℓm over eligible neighbors.
// Stage 3: normalize by the weight sum unless the table is area normalized.
// Stage 4: rotational invariants.
//
// A real atom with zero contributing weight stops the computation with
// ErrNoNeighbors. Ghost atoms without neighbors get zero coefficients.
func Compute(sys *atoms.System, ls []int, opts ...Option) error {
	o := resolve(opts)
	if err := checkL(ls); err != nil {
		return err
	}
	list := sys.Atoms()
	area := sys.Normalization() == atoms.AreaNormalized

	for i := range list {
		a := &list[i]
		for _, l := range ls {
			qlm := make([]complex128, 2*l+1)
			var wsum float64
			for _, n := range a.Neighbors.Entries() {
				if o.ConditionFilter && list[n.Index].Condition != a.Condition {
					continue
				}
				wsum += n.Weight
				w := complex(n.Weight, 0)
				for m := -l; m <= l; m++ {
					qlm[m+l] += w * Ylm(l, m, n.Polar, n.Azimuth)
				}
			}
			if wsum == 0 && !a.Ghost {
				return errors.Wrapf(ErrNoNeighbors, "atom %d (id %d)", i, a.ID)
			}
			if !area && wsum > 0 {
				inv := complex(1/wsum, 0)
				for m := range qlm {
					qlm[m] *= inv
				}
			}
			a.Qlm[l] = qlm
			a.Q[l] = qInvariant(l, qlm)
			a.W[l], a.WN[l] = wInvariant(l, qlm, o.ThreeJ)
		}
	}
	return nil
}

// Average fills AQlm, AQ, AW and AWN: each atom's q_ℓm is averaged with the
// q_ℓm of its eligible neighbors over 1 + count.
func Average(sys *atoms.System, ls []int, opts ...Option) error {
	o := resolve(opts)
	if err := checkL(ls); err != nil {
		return err
	}
	list := sys.Atoms()
	for _, l := range ls {
		for i := range list {
			if _, ok := list[i].Qlm[l]; !ok {
				return errors.Wrapf(ErrNotComputed, "l=%d atom %d", l, i)
			}
		}
		for i := range list {
			a := &list[i]
			aqlm := append([]complex128(nil), a.Qlm[l]...)
			count := 1
			for _, n := range a.Neighbors.Entries() {
				b := &list[n.Index]
				if o.ConditionFilter && b.Condition != a.Condition {
					continue
				}
				for m := range aqlm {
					aqlm[m] += b.Qlm[l][m]
				}
				count++
			}
			inv := complex(1/float64(count), 0)
			for m := range aqlm {
				aqlm[m] *= inv
			}
			a.AQlm[l] = aqlm
			a.AQ[l] = qInvariant(l, aqlm)
			a.AW[l], a.AWN[l] = wInvariant(l, aqlm, o.ThreeJ)
		}
	}
	return nil
}

func checkL(ls []int) error {
	for _, l := range ls {
		if l < 0 {
			return errors.Wrapf(ErrInvalidL, "l=%d", l)
		}
	}
	return nil
}
