// SPDX-License-Identifier: MIT

package pairs

import (
	"math"

	"github.com/cockroachdb/errors"
)

// RDF converts a distance histogram into the radial distribution function
// g(r) = counts / (centers · density · shell volume). Unordered counts are
// doubled first. It returns g and the bin centers.
func RDF(h Histogram, density float64, centers int) (g, r []float64, err error) {
	if density <= 0 || centers <= 0 {
		return nil, nil, errors.Wrapf(ErrBadDensity, "density %g centers %d", density, centers)
	}
	w := h.Width()
	g = make([]float64, len(h.Counts))
	r = h.Centers()
	scale := 1.0
	if !h.Ordered {
		scale = 2
	}
	for k, c := range h.Counts {
		r1 := h.Low + float64(k)*w
		r2 := r1 + w
		shell := 4.0 / 3.0 * math.Pi * (r2*r2*r2 - r1*r1*r1)
		g[k] = scale * float64(c) / (float64(centers) * density * shell)
	}
	return g, r, nil
}
