// SPDX-License-Identifier: MIT

package bondorder

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// Centrosymmetry sets the centrosymmetry parameter from the n nearest
// entries of each table: the n/2 smallest |r_i + r_j|² over all neighbor
// pairs are summed. A perfect centrosymmetric environment scores zero.
// Complexity: O(N·n² log n).
func Centrosymmetry(sys *atoms.System, n int) error {
	if n < 2 || n%2 != 0 {
		return errors.Wrapf(ErrOddNeighborCount, "n=%d", n)
	}
	list := sys.Atoms()
	pairs := make([]float64, 0, n*(n-1)/2)
	for i := range list {
		a := &list[i]
		if a.Neighbors.Len() < n {
			if a.Ghost {
				continue
			}
			return errors.Wrapf(ErrTooFewNeighbors, "atom %d has %d of %d", i, a.Neighbors.Len(), n)
		}
		near := append([]atoms.Neighbor(nil), a.Neighbors.Entries()...)
		sort.SliceStable(near, func(x, y int) bool { return near[x].Distance < near[y].Distance })
		near = near[:n]

		pairs = pairs[:0]
		for x := 0; x < n; x++ {
			for y := x + 1; y < n; y++ {
				s := r3.Add(near[x].Offset, near[y].Offset)
				pairs = append(pairs, r3.Dot(s, s))
			}
		}
		sort.Float64s(pairs)
		var csp float64
		for k := 0; k < n/2; k++ {
			csp += pairs[k]
		}
		a.Centrosymmetry = csp
	}
	return nil
}
