// SPDX-License-Identifier: MIT

package pairs

import (
	"math"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
)

// Options configures Distances.
type Options struct {
	Cut  float64
	Low  float64
	Bins int

	// Partial restricts centers to CenterType and partners to SecondType.
	Partial    bool
	CenterType int
	SecondType int

	// Workers is the number of goroutines; values below 1 mean 1.
	Workers int

	// ForceImages disables the minimum-image shortcut.
	ForceImages bool
}

// DefaultBins is used by callers that leave Bins unset.
const DefaultBins = 100

func (o Options) validate() error {
	if o.Low < 0 || o.Cut <= o.Low {
		return errors.Wrapf(ErrBadRange, "low %g cut %g", o.Low, o.Cut)
	}
	if o.Bins < 1 {
		return errors.Wrapf(ErrBadBins, "bins %d", o.Bins)
	}
	return nil
}

// scan holds the read-only inputs shared by all workers.
type scan struct {
	b        *box.Box
	vectors  [3]r3.Vec
	heights  [3]float64
	pos      []r3.Vec // folded into the primary cell
	frac     []r3.Vec
	types    []int
	o        Options
	bins     binner
	halfTime bool
}

// Distances histograms pair distances of the real atoms of sys.
//
// Stage 1: validate and fold positions into the primary cell.
// Stage 2: pick minimum-image or explicit-image scanning.
// Stage 3: run one goroutine per chunk of centers, join, merge.
func Distances(sys *atoms.System, o Options) (Histogram, error) {
	if err := o.validate(); err != nil {
		return Histogram{}, err
	}
	b, err := sys.Box()
	if err != nil {
		return Histogram{}, err
	}

	n := sys.RealCount()
	s := &scan{
		b:       b,
		vectors: b.Vectors(),
		heights: b.Heights(),
		pos:     make([]r3.Vec, n),
		frac:    make([]r3.Vec, n),
		types:   make([]int, n),
		o:       o,
		bins:    newBinner(o.Low, o.Cut, o.Bins),
	}
	for i := 0; i < n; i++ {
		a := sys.At(i)
		f := b.ToFractional(a.Position)
		f = r3.Vec{X: f.X - math.Floor(f.X), Y: f.Y - math.Floor(f.Y), Z: f.Z - math.Floor(f.Z)}
		s.frac[i] = f
		s.pos[i] = b.FromFractional(f)
		s.types[i] = a.Type
	}

	s.halfTime = !o.Partial && !o.ForceImages
	for _, h := range s.heights {
		if o.Cut >= 0.5*h {
			s.halfTime = false
		}
	}

	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	parts := make([][]int, workers)
	var g errgroup.Group
	for w, r := range chunks(n, workers) {
		parts[w] = make([]int, o.Bins)
		w, r := w, r
		g.Go(func() error {
			s.run(r[0], r[1], parts[w])
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Histogram{}, err
	}

	h := Histogram{Counts: make([]int, o.Bins), Low: o.Low, Cut: o.Cut, HalfTimes: s.halfTime, Ordered: o.Partial}
	for _, p := range parts {
		for k, c := range p {
			h.Counts[k] += c
		}
	}
	return h, nil
}

// chunks splits [0, n) into w ranges whose sizes differ by at most one;
// the first n mod w ranges take the extra element.
func chunks(n, w int) [][2]int {
	out := make([][2]int, w)
	per, extra := n/w, n%w
	start := 0
	for i := range out {
		size := per
		if i < extra {
			size++
		}
		out[i] = [2]int{start, start + size}
		start += size
	}
	return out
}

func (s *scan) run(from, to int, counts []int) {
	if s.halfTime {
		for i := from; i < to; i++ {
			for j := i + 1; j < len(s.pos); j++ {
				_, d := s.b.Distance(s.pos[i], s.pos[j])
				s.bins.add(counts, d)
			}
		}
		return
	}
	for i := from; i < to; i++ {
		if s.o.Partial && s.types[i] != s.o.CenterType {
			continue
		}
		lo, hi := s.imageRange(i)
		first := 0
		if !s.o.Partial {
			first = i
		}
		for j := first; j < len(s.pos); j++ {
			if s.o.Partial && s.types[j] != s.o.SecondType {
				continue
			}
			s.images(i, j, lo, hi, counts)
		}
	}
}

// imageRange returns, per lattice direction, the image indices whose cells
// intersect the cutoff sphere around atom i.
func (s *scan) imageRange(i int) (lo, hi [3]int) {
	f := [3]float64{s.frac[i].X, s.frac[i].Y, s.frac[i].Z}
	for k := 0; k < 3; k++ {
		reach := s.o.Cut / s.heights[k]
		lo[k] = int(math.Floor(f[k] - reach))
		hi[k] = int(math.Ceil(f[k] + reach - 1))
	}
	return lo, hi
}

// images bins every periodic image of j seen from i. For unordered
// counting a self pair keeps only one image of each ± couple.
func (s *scan) images(i, j int, lo, hi [3]int, counts []int) {
	cut2, low2 := s.o.Cut*s.o.Cut, s.o.Low*s.o.Low
	self := i == j
	for a := lo[0]; a <= hi[0]; a++ {
		for b := lo[1]; b <= hi[1]; b++ {
			for c := lo[2]; c <= hi[2]; c++ {
				if self {
					if a == 0 && b == 0 && c == 0 {
						continue
					}
					if !s.o.Partial && !positive(a, b, c) {
						continue
					}
				}
				shift := r3.Add(r3.Add(r3.Scale(float64(a), s.vectors[0]), r3.Scale(float64(b), s.vectors[1])), r3.Scale(float64(c), s.vectors[2]))
				d := r3.Sub(r3.Add(s.pos[j], shift), s.pos[i])
				d2 := r3.Dot(d, d)
				if d2 > cut2 || d2 < low2 {
					continue
				}
				s.bins.add(counts, math.Sqrt(d2))
			}
		}
	}
}

// positive reports whether (a, b, c) is lexicographically above zero.
func positive(a, b, c int) bool {
	if a != 0 {
		return a > 0
	}
	if b != 0 {
		return b > 0
	}
	return c > 0
}
