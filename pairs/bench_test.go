// SPDX-License-Identifier: MIT

package pairs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/pairs"
)

// BenchmarkDistances measures worker scaling on 4000 atoms.
func BenchmarkDistances(b *testing.B) {
	s, err := lattice.System(lattice.FCC, lattice.WithRepetitions(10, 10, 10))
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := pairs.Distances(s, pairs.Options{Cut: 3, Bins: 100, Workers: w}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
