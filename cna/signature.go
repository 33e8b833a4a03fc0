// SPDX-License-Identifier: MIT

package cna

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// Signatures computes one Signature per shell member. Distances between
// members come from their offsets to the central atom, so periodic images
// never need to be resolved again.
//
//	Stage 1: common neighbors of (center, j): other members within cutoff of j.
//	Stage 2: bonds among common neighbors within cutoff.
//	Stage 3: per common neighbor bond counts → max/min.
//
// Complexity: O(n³) for a shell of n.
func Signatures(shell []atoms.Neighbor, cutoff float64) []Signature {
	n := len(shell)
	near := make([][]bool, n)
	for a := range near {
		near[a] = make([]bool, n)
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if r3.Norm(r3.Sub(shell[a].Offset, shell[b].Offset)) <= cutoff {
				near[a][b], near[b][a] = true, true
			}
		}
	}

	out := make([]Signature, n)
	common := make([]int, 0, n)
	for j := 0; j < n; j++ {
		common = common[:0]
		for k := 0; k < n; k++ {
			if k != j && near[j][k] {
				common = append(common, k)
			}
		}
		sig := Signature{Common: len(common), MaxBonds: 0, MinBonds: 8}
		per := make([]int, len(common))
		for x := 0; x < len(common); x++ {
			for y := x + 1; y < len(common); y++ {
				if near[common[x]][common[y]] {
					sig.Bonds++
					per[x]++
					per[y]++
				}
			}
		}
		for _, c := range per {
			sig.MaxBonds = max(sig.MaxBonds, c)
			sig.MinBonds = min(sig.MinBonds, c)
		}
		if len(common) == 0 {
			sig.MinBonds = 0
		}
		out[j] = sig
	}
	return out
}
