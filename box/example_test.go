// SPDX-License-Identifier: MIT

package box_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/box"
)

// ExampleBox_Distance shows the minimum-image convention across a face.
func ExampleBox_Distance() {
	b, _ := box.Orthogonal(10, 10, 10)
	d, r := b.Distance(r3.Vec{X: 0.5}, r3.Vec{X: 9.5})
	fmt.Printf("dx=%.1f r=%.1f\n", d.X, r)
	// Output: dx=-1.0 r=1.0
}
