// SPDX-License-Identifier: MIT

package neighbor

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
)

// Build dispatches on WithMethod.
func Build(sys *atoms.System, opts ...Option) error {
	o := resolve(opts)
	switch o.Method {
	case MethodCutoff:
		return BuildCutoff(sys, o.Cutoff, opts...)
	case MethodNumber:
		return BuildByNumber(sys, o.Count, opts...)
	case MethodSANN:
		return BuildSANN(sys, opts...)
	case MethodAdaptive:
		return BuildAdaptive(sys, opts...)
	case MethodVoronoi:
		return BuildVoronoi(sys, opts...)
	}
	return errors.Wrapf(ErrUnknownMethod, "%v", o.Method)
}

// Symmetrize adds j→i for every committed i→j that lacks its reverse.
func Symmetrize(sys *atoms.System) error {
	type edge struct {
		from, to int
		d        r3.Vec
		r        float64
	}
	list := sys.Atoms()
	var missing []edge
	for i := range list {
		for _, n := range list[i].Neighbors.Entries() {
			if !list[n.Index].Neighbors.Contains(i) {
				missing = append(missing, edge{from: n.Index, to: i, d: r3.Scale(-1, n.Offset), r: n.Distance})
			}
		}
	}
	for _, e := range missing {
		if list[e.from].Neighbors.Contains(e.to) {
			continue
		}
		if err := sys.AddNeighbor(e.from, e.to, e.d, e.r); err != nil {
			return err
		}
	}
	return nil
}

// ResetCutoffs sets each atom cutoff to factor × its mean neighbor distance.
func ResetCutoffs(sys *atoms.System, factor float64) {
	list := sys.Atoms()
	for i := range list {
		list[i].Cutoff = factor * list[i].Neighbors.MeanDistance()
	}
}
