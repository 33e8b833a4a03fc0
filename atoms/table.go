// SPDX-License-Identifier: MIT

package atoms

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultCapacity is the neighbor cap used when none is configured.
const DefaultCapacity = 100

// Normalization selects how bond-order sums are normalized.
type Normalization int

const (
	// CountNormalized divides weighted sums by the total neighbor weight.
	CountNormalized Normalization = iota
	// AreaNormalized uses Voronoi weights that already sum to one.
	AreaNormalized
)

func (n Normalization) String() string {
	if n == AreaNormalized {
		return "area"
	}
	return "count"
}

// Neighbor is one entry of a neighbor table, or a staged candidate.
type Neighbor struct {
	Index    int     // handle of the neighboring atom
	Distance float64 // minimum-image distance
	Offset   r3.Vec  // displacement from host to neighbor
	Polar    float64 // acos(z/r)
	Azimuth  float64 // atan2(y, x)
	Weight   float64 // 1 unless set by a Voronoi build

	FaceArea      float64
	FacePerimeter float64
	FaceVertices  int
}

// NewNeighbor fills the spherical angles of an offset.
func NewNeighbor(index int, offset r3.Vec, dist float64) Neighbor {
	n := Neighbor{Index: index, Distance: dist, Offset: offset, Weight: 1}
	if dist > 0 {
		n.Polar = math.Acos(clamp(offset.Z / dist))
	}
	n.Azimuth = math.Atan2(offset.Y, offset.X)
	return n
}

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Table is a capped, dynamically sized neighbor list.
type Table struct {
	entries  []Neighbor
	capacity int
}

// NewTable returns an empty table; capacity <= 0 means DefaultCapacity.
func NewTable(capacity int) Table {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return Table{capacity: capacity}
}

// Len is the number of committed neighbors.
func (t *Table) Len() int { return len(t.entries) }

// Cap is the maximum number of neighbors.
func (t *Table) Cap() int {
	if t.capacity <= 0 {
		return DefaultCapacity
	}
	return t.capacity
}

// At returns entry k.
func (t *Table) At(k int) Neighbor { return t.entries[k] }

// Entries exposes the committed entries; callers must not append to it.
func (t *Table) Entries() []Neighbor { return t.entries }

// Contains reports whether idx is already a neighbor.
func (t *Table) Contains(idx int) bool {
	for i := range t.entries {
		if t.entries[i].Index == idx {
			return true
		}
	}
	return false
}

// Add appends n, failing when the table is full or n is already present.
func (t *Table) Add(n Neighbor) error {
	if err := t.admits(n.Index); err != nil {
		return err
	}
	t.entries = append(t.entries, n)
	return nil
}

// admits reports why index could not be added, or nil.
func (t *Table) admits(index int) error {
	if t.Contains(index) {
		return errors.Wrapf(ErrDuplicateNeighbor, "neighbor %d", index)
	}
	if len(t.entries) >= t.Cap() {
		return errors.Wrapf(ErrCapacityExceeded, "cap %d", t.Cap())
	}
	return nil
}

// SetWeight overrides the weight of entry k.
func (t *Table) SetWeight(k int, w float64) { t.entries[k].Weight = w }

// SetFace records Voronoi face data for entry k.
func (t *Table) SetFace(k int, area, perimeter float64, vertices int) {
	t.entries[k].FaceArea = area
	t.entries[k].FacePerimeter = perimeter
	t.entries[k].FaceVertices = vertices
}

// Reset drops all entries and keeps the cap.
func (t *Table) Reset() { t.entries = t.entries[:0] }

// Indices lists neighbor handles in insertion order.
func (t *Table) Indices() []int {
	out := make([]int, len(t.entries))
	for i := range t.entries {
		out[i] = t.entries[i].Index
	}
	return out
}

// MeanDistance averages the neighbor distances; 0 for an empty table.
func (t *Table) MeanDistance() float64 {
	if len(t.entries) == 0 {
		return 0
	}
	var s float64
	for i := range t.entries {
		s += t.entries[i].Distance
	}
	return s / float64(len(t.entries))
}
