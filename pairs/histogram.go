// SPDX-License-Identifier: MIT

package pairs

// Histogram is the result of Distances.
type Histogram struct {
	Counts    []int
	Low, Cut  float64
	HalfTimes bool // scanned through the minimum image
	Ordered   bool // ordered pairs were counted (Partial)
}

// Width returns the bin width.
func (h Histogram) Width() float64 {
	if len(h.Counts) == 0 {
		return 0
	}
	return (h.Cut - h.Low) / float64(len(h.Counts))
}

// Centers returns the bin centers.
func (h Histogram) Centers() []float64 {
	w := h.Width()
	out := make([]float64, len(h.Counts))
	for i := range out {
		out[i] = h.Low + (float64(i)+0.5)*w
	}
	return out
}

// Total is the sum of all counts.
func (h Histogram) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// binner maps a value in [low, high] to one of n bins; high lands in the
// last bin.
type binner struct {
	low, high, width float64
	n                int
}

func newBinner(low, high float64, n int) binner {
	return binner{low: low, high: high, width: (high - low) / float64(n), n: n}
}

func (b binner) index(v float64) (int, bool) {
	if v < b.low || v > b.high {
		return 0, false
	}
	k := int((v - b.low) / b.width)
	if k >= b.n {
		k = b.n - 1
	}
	return k, true
}

func (b binner) add(counts []int, v float64) {
	if k, ok := b.index(v); ok {
		counts[k]++
	}
}
