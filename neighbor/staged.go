// SPDX-License-Identifier: MIT

package neighbor

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// BuildByNumber commits the k nearest staged candidates of each host atom.
// The atom cutoff becomes the k-th distance.
//
// An atom with fewer than k candidates stops the build with
// ErrInsufficientNeighbors; it commits nothing, earlier hosts keep theirs.
func BuildByNumber(sys *atoms.System, k int, opts ...Option) error {
	if k < 1 {
		return errors.Wrapf(ErrInvalidCount, "k=%d", k)
	}
	return buildStaged(sys, opts, func(i int, staged []atoms.Neighbor, _ Options) (int, float64, error) {
		if len(staged) < k {
			return 0, 0, errors.Wrapf(ErrInsufficientNeighbors, "atom %d: %d of %d", i, len(staged), k)
		}
		return k, staged[k-1].Distance, nil
	})
}

// BuildSANN commits the solid-angle nearest neighbors of each host atom:
// starting at m = 3, the shell radius R = Σd/(m−2) over the m nearest is
// grown while R still reaches the next candidate.
//
// ErrNotConverged is returned when the candidates run out first.
func BuildSANN(sys *atoms.System, opts ...Option) error {
	return buildStaged(sys, opts, func(i int, staged []atoms.Neighbor, _ Options) (int, float64, error) {
		if len(staged) < 3 {
			return 0, 0, errors.Wrapf(ErrInsufficientNeighbors, "atom %d: %d of 3", i, len(staged))
		}
		m := 3
		var sum float64
		for k := 0; k < m; k++ {
			sum += staged[k].Distance
		}
		for {
			if m == len(staged) {
				return 0, 0, errors.Wrapf(ErrNotConverged, "atom %d after %d candidates", i, m)
			}
			r := sum / float64(m-2)
			if r < staged[m].Distance {
				return m, r, nil
			}
			sum += staged[m].Distance
			m++
		}
	})
}

// BuildAdaptive commits every staged candidate closer than
// padding · mean(first nlimit distances).
func BuildAdaptive(sys *atoms.System, opts ...Option) error {
	return buildStaged(sys, opts, func(i int, staged []atoms.Neighbor, o Options) (int, float64, error) {
		if len(staged) < o.NLimit {
			return 0, 0, errors.Wrapf(ErrInsufficientNeighbors, "atom %d: %d of %d", i, len(staged), o.NLimit)
		}
		var mean float64
		for k := 0; k < o.NLimit; k++ {
			mean += staged[k].Distance
		}
		rc := o.Padding * mean / float64(o.NLimit)
		n := 0
		for n < len(staged) && staged[n].Distance < rc {
			n++
		}
		return n, rc, nil
	})
}

// selector decides how many leading candidates to commit and the cutoff.
type selector func(i int, staged []atoms.Neighbor, o Options) (n int, cutoff float64, err error)

// buildStaged resets, stages, and commits the selected prefix of each host.
// Selection sees every species; the filter only drops entries of the prefix.
func buildStaged(sys *atoms.System, opts []Option, pick selector) error {
	o := resolve(opts)
	b, err := sys.Box()
	if err != nil {
		return err
	}
	sys.ResetNeighbors()
	hosts, err := stage(sys, b, o)
	if err != nil {
		return err
	}

	list := sys.Atoms()
	for _, i := range hosts {
		n, rc, err := pick(i, list[i].Staged, o)
		if err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			c := list[i].Staged[k]
			if !o.Filter.accept(list[i].Type, list[c.Index].Type) {
				continue
			}
			if err := sys.AddNeighbor(i, c.Index, c.Offset, c.Distance); err != nil {
				return err
			}
		}
		list[i].Cutoff = rc
	}
	return nil
}
