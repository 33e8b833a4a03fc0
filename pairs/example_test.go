// SPDX-License-Identifier: MIT

package pairs_test

import (
	"fmt"

	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/pairs"
)

func ExampleDistances() {
	sys, _ := lattice.System(lattice.FCC, lattice.WithRepetitions(4, 4, 4))
	h, _ := pairs.Distances(sys, pairs.Options{Cut: 1.2, Low: 0.6, Bins: 2, Workers: 4})
	fmt.Println(h.Counts, h.HalfTimes)
	// Output: [1536 768] true
}
