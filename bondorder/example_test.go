// SPDX-License-Identifier: MIT

package bondorder_test

import (
	"fmt"

	"github.com/katalvlaran/atomlath/bondorder"
	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/neighbor"
)

// ExampleCompute prints the Steinhardt invariants of a perfect fcc crystal.
func ExampleCompute() {
	s, _ := lattice.System(lattice.FCC, lattice.WithRepetitions(3, 3, 3))
	_ = neighbor.BuildCutoff(s, 0.8)
	_ = bondorder.Compute(s, []int{4, 6})

	a := s.At(0)
	fmt.Printf("q4=%.3f q6=%.3f w6=%.4f\n", a.Q[4], a.Q[6], a.WN[6])
	// Output: q4=0.191 q6=0.575 w6=-0.0132
}
