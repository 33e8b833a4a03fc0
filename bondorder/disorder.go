// SPDX-License-Identifier: MIT

package bondorder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// Disorder sets, for each atom, the mean over its neighbors of
// s_ii + s_jj − 2·s_ij, where s_ij is the normalized q_ℓ·q_ℓ product.
// Compute must have run for l.
func Disorder(sys *atoms.System, l int) error {
	list := sys.Atoms()
	if err := requireL(list, l); err != nil {
		return err
	}
	for i := range list {
		a := &list[i]
		n := a.Neighbors.Len()
		if n == 0 {
			if a.Ghost {
				continue
			}
			return errors.Wrapf(ErrNoNeighbors, "atom %d (id %d)", i, a.ID)
		}
		sii := similarity(a.Qlm[l], a.Qlm[l])
		var sum float64
		for _, nb := range a.Neighbors.Entries() {
			q := list[nb.Index].Qlm[l]
			sum += sii + similarity(q, q) - 2*similarity(a.Qlm[l], q)
		}
		a.Disorder = sum / float64(n)
	}
	return nil
}

// AverageDisorder sets AvgDisorder = (own + Σ neighbors) / (n+1).
func AverageDisorder(sys *atoms.System) {
	list := sys.Atoms()
	for i := range list {
		sum := list[i].Disorder
		for _, nb := range list[i].Neighbors.Entries() {
			sum += list[nb.Index].Disorder
		}
		list[i].AvgDisorder = sum / float64(list[i].Neighbors.Len()+1)
	}
}

func requireL(list []atoms.Atom, l int) error {
	for i := range list {
		if _, ok := list[i].Qlm[l]; !ok {
			return errors.Wrapf(ErrNotComputed, "l=%d atom %d", l, i)
		}
	}
	return nil
}
