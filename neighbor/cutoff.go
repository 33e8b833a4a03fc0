// SPDX-License-Identifier: MIT

package neighbor

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// BuildCutoff makes every pair closer than rc mutual neighbors and sets each
// atom's cutoff to rc. WithCells selects the cell-list search.
// Complexity: O(N²) brute, O(N·ρ·rc³) with cells.
func BuildCutoff(sys *atoms.System, rc float64, opts ...Option) error {
	o := resolve(opts)
	if rc <= 0 {
		return errors.Wrapf(ErrInvalidCutoff, "cutoff %g", rc)
	}
	b, err := sys.Box()
	if err != nil {
		return err
	}
	sys.ResetNeighbors()

	list := sys.Atoms()
	for i := range list {
		list[i].Cutoff = rc
	}
	return forEachPair(b, list, rc, o.Cells, o.Filter, func(i, j int, d r3.Vec, r float64) error {
		return sys.AddPair(i, j, d, r)
	})
}
