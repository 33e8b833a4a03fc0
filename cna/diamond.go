// SPDX-License-Identifier: MIT

package cna

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/neighbor"
)

// ClassifyDiamond labels cubic and hexagonal diamond and their first and
// second neighbor shells, returning counts indexed by Structure (11 slots).
//
// Stage 1: first shell = 4 nearest candidates.
// Stage 2: the first shells of those 4, minus the center, form a 12-atom
// shell; its fcc or hcp signature means cubic or hexagonal diamond.
// Stage 3: unlabeled atoms next to a diamond atom become 1NN.
// Stage 4: unlabeled atoms in a diamond atom's 12-shell become 2NN.
func ClassifyDiamond(sys *atoms.System) (Counts, error) {
	if err := neighbor.Stage(sys, neighbor.WithPrefactor(stagingPrefactor)); err != nil {
		return nil, errors.Wrap(err, "cna: stage")
	}
	list := sys.Atoms()
	for i := range list {
		list[i].Structure = int(Unknown)
		list[i].FirstShell = list[i].FirstShell[:0]
		if len(list[i].Staged) >= 4 {
			for _, n := range list[i].Staged[:4] {
				list[i].FirstShell = append(list[i].FirstShell, n.Index)
			}
		}
	}

	second := make([][]atoms.Neighbor, sys.RealCount())
	for i := range second {
		second[i] = secondShell(list, i)
		if len(second[i]) != 12 {
			continue
		}
		rc := adaptiveFactor * meanDistance(second[i])
		switch match(Signatures(second[i], rc), templates12) {
		case FCC:
			list[i].Structure = int(CubicDiamond)
		case HCP:
			list[i].Structure = int(HexDiamond)
		}
	}

	snapshot := make([]int, len(list))
	for i := range list {
		snapshot[i] = list[i].Structure
	}
	for i := range second {
		if snapshot[i] != int(Unknown) {
			continue
		}
		list[i].Structure = int(propagate(snapshot, list[i].FirstShell, CubicDiamond1NN, HexDiamond1NN))
	}
	for i := range second {
		if list[i].Structure != int(Unknown) {
			continue
		}
		idx := make([]int, len(second[i]))
		for k, n := range second[i] {
			idx[k] = n.Index
		}
		list[i].Structure = int(propagate(snapshot, idx, CubicDiamond2NN, HexDiamond2NN))
	}

	return count(sys, int(HexDiamond2NN)+1), nil
}

// secondShell walks center → first neighbor → its first neighbors, keeping
// accumulated offsets and dropping the center and repeats.
func secondShell(list []atoms.Atom, i int) []atoms.Neighbor {
	if len(list[i].Staged) < 4 {
		return nil
	}
	seen := map[int]bool{i: true}
	var out []atoms.Neighbor
	for _, first := range list[i].Staged[:4] {
		j := first.Index
		if len(list[j].Staged) < 4 {
			return nil
		}
		for _, nb := range list[j].Staged[:4] {
			if seen[nb.Index] {
				continue
			}
			seen[nb.Index] = true
			off := r3.Add(first.Offset, nb.Offset)
			out = append(out, atoms.NewNeighbor(nb.Index, off, r3.Norm(off)))
		}
	}
	return out
}

// propagate returns cd if any listed atom is cubic diamond, else hd if any
// is hexagonal diamond, else Unknown.
func propagate(labels []int, idx []int, cd, hd Structure) Structure {
	for _, j := range idx {
		if labels[j] == int(CubicDiamond) {
			return cd
		}
	}
	for _, j := range idx {
		if labels[j] == int(HexDiamond) {
			return hd
		}
	}
	return Unknown
}
