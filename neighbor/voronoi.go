// SPDX-License-Identifier: MIT

package neighbor

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/voronoi"
)

// BuildVoronoi turns the faces of an external tessellation into weighted
// neighbors. Weights are area^α normalized to one per atom, so the table is
// flagged atoms.AreaNormalized. Each atom also receives its cell volume,
// absolute vertices, the equivalent-sphere cutoff (3V/4π)^(1/3) and the
// neighbor-averaged volume.
//
// Faces shared with the same neighbor more than once (small periodic
// boxes) are merged by summing area and perimeter.
func BuildVoronoi(sys *atoms.System, opts ...Option) error {
	o := resolve(opts)
	if o.Tessellator == nil {
		return ErrNoTessellator
	}
	b, err := sys.Box()
	if err != nil {
		return err
	}
	sys.ResetNeighbors()
	list := sys.Atoms()

	// Stage 1: tessellate folded positions
	pos := make([]r3.Vec, len(list))
	for i := range list {
		pos[i] = b.Remap(list[i].Position)
	}
	cells, err := o.Tessellator.Tessellate(b, pos)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "neighbor: tessellate"), ErrExternal)
	}
	if len(cells) != len(list) {
		return errors.Wrapf(ErrExternal, "%d cells for %d atoms", len(cells), len(list))
	}

	// Stage 2: commit merged faces with normalized weights
	for i := range list {
		faces := mergeFaces(cells[i].Faces, len(list))
		var total float64
		kept := faces[:0]
		for _, f := range faces {
			if !o.Filter.accept(list[i].Type, list[f.Neighbor].Type) {
				continue
			}
			kept = append(kept, f)
			total += math.Pow(f.Area, o.Alpha)
		}
		for _, f := range kept {
			d, r := b.Distance(list[i].Position, list[f.Neighbor].Position)
			if err := sys.AddNeighbor(i, f.Neighbor, d, r); err != nil {
				return err
			}
			k := list[i].Neighbors.Len() - 1
			if total > 0 {
				list[i].Neighbors.SetWeight(k, math.Pow(f.Area, o.Alpha)/total)
			} else {
				list[i].Neighbors.SetWeight(k, 0)
			}
			list[i].Neighbors.SetFace(k, f.Area, f.Perimeter, f.Vertices)
		}

		list[i].Volume = cells[i].Volume
		list[i].Cutoff = math.Cbrt(3 * cells[i].Volume / (4 * math.Pi))
		list[i].Vertices = make([]r3.Vec, len(cells[i].Vertices))
		for k, v := range cells[i].Vertices {
			list[i].Vertices[k] = r3.Add(list[i].Position, v)
		}
	}
	sys.SetNormalization(atoms.AreaNormalized)

	AverageVolume(sys)
	return nil
}

// AverageVolume sets AvgVolume = (V_i + Σ V_j) / (n+1) over each table.
func AverageVolume(sys *atoms.System) {
	list := sys.Atoms()
	for i := range list {
		sum := list[i].Volume
		for _, n := range list[i].Neighbors.Entries() {
			sum += list[n.Index].Volume
		}
		list[i].AvgVolume = sum / float64(list[i].Neighbors.Len()+1)
	}
}

// mergeFaces drops walls and out-of-range ids, sums duplicate neighbors and
// returns faces ordered by neighbor handle.
func mergeFaces(in []voronoi.Face, n int) []voronoi.Face {
	byID := make(map[int]*voronoi.Face, len(in))
	for _, f := range in {
		if f.Neighbor < 0 || f.Neighbor >= n {
			continue
		}
		if m, ok := byID[f.Neighbor]; ok {
			m.Area += f.Area
			m.Perimeter += f.Perimeter
			m.Vertices += f.Vertices
			continue
		}
		c := f
		byID[f.Neighbor] = &c
	}
	out := make([]voronoi.Face, 0, len(byID))
	for _, f := range byID {
		out = append(out, *f)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Neighbor < out[b].Neighbor })
	return out
}
