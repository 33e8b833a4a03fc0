// SPDX-License-Identifier: MIT

package pairs

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// Angles histograms, for every real atom, the angle (radians) between each
// unordered pair of its committed neighbors. Angles outside [low, high] are
// dropped.
func Angles(sys *atoms.System, low, high float64, bins int) ([]int, error) {
	if high <= low {
		return nil, errors.Wrapf(ErrBadRange, "low %g high %g", low, high)
	}
	if bins < 1 {
		return nil, errors.Wrapf(ErrBadBins, "bins %d", bins)
	}
	counts := make([]int, bins)
	bn := newBinner(low, high, bins)
	for i := 0; i < sys.RealCount(); i++ {
		nb := sys.At(i).Neighbors.Entries()
		for j := 0; j < len(nb); j++ {
			for k := j + 1; k < len(nb); k++ {
				bn.add(counts, angle(nb[j].Offset, nb[k].Offset))
			}
		}
	}
	return counts, nil
}

func angle(a, b r3.Vec) float64 {
	c := r3.Dot(a, b) / (r3.Norm(a) * r3.Norm(b))
	return math.Acos(math.Max(-1, math.Min(1, c)))
}
