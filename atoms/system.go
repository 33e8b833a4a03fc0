// SPDX-License-Identifier: MIT

package atoms

import (
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/box"
)

// System is the atom arena bound to an optional periodic box.
type System struct {
	box      *box.Box
	atoms    []Atom
	nReal    int
	capacity int
	norm     Normalization
}

// Option configures a System.
type Option func(*System)

// WithBox binds the periodic box at construction.
func WithBox(b *box.Box) Option {
	return func(s *System) { s.box = b }
}

// WithCapacity sets the per-atom neighbor cap. Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("atoms: WithCapacity(n<1)")
	}
	return func(s *System) { s.capacity = n }
}

// NewSystem returns an empty arena.
func NewSystem(opts ...Option) *System {
	s := &System{capacity: DefaultCapacity}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SetBox replaces the periodic box.
func (s *System) SetBox(b *box.Box) { s.box = b }

// Box returns the bound box or ErrBoxUnset.
func (s *System) Box() (*box.Box, error) {
	if s.box == nil {
		return nil, ErrBoxUnset
	}
	return s.box, nil
}

// Capacity is the neighbor cap handed to every atom.
func (s *System) Capacity() int { return s.capacity }

// Set replaces the whole arena. Real atoms are moved ahead of ghosts with
// their relative order kept.
// Complexity: O(N log N).
func (s *System) Set(list []Atom) {
	s.atoms = make([]Atom, len(list))
	copy(s.atoms, list)
	s.partition()
}

// Append adds atoms and re-partitions real before ghost. Handles change and
// derived state is reset, as with Set.
func (s *System) Append(list []Atom) {
	s.atoms = append(s.atoms, list...)
	s.partition()
}

func (s *System) partition() {
	sort.SliceStable(s.atoms, func(i, j int) bool {
		return !s.atoms[i].Ghost && s.atoms[j].Ghost
	})
	s.nReal = 0
	for i := range s.atoms {
		s.atoms[i].prepare(s.capacity)
		if !s.atoms[i].Ghost {
			s.nReal++
		}
	}
	s.norm = CountNormalized
}

// Len is the number of atoms, ghosts included.
func (s *System) Len() int { return len(s.atoms) }

// RealCount is the number of non-ghost atoms; they occupy [0, RealCount()).
func (s *System) RealCount() int { return s.nReal }

// GhostCount is the number of ghost atoms.
func (s *System) GhostCount() int { return len(s.atoms) - s.nReal }

// At returns the atom with handle i. The pointer is valid until the next
// Set or Append.
func (s *System) At(i int) *Atom { return &s.atoms[i] }

// Atoms exposes the arena slice; the same lifetime rule as At applies.
func (s *System) Atoms() []Atom { return s.atoms }

// RealAtoms returns deep copies of the real atoms.
func (s *System) RealAtoms() []Atom {
	out := make([]Atom, s.nReal)
	for i := 0; i < s.nReal; i++ {
		out[i] = s.atoms[i].clone()
	}
	return out
}

// Collect evaluates fn on every real atom.
func (s *System) Collect(fn func(*Atom) float64) []float64 {
	out := make([]float64, s.nReal)
	for i := 0; i < s.nReal; i++ {
		out[i] = fn(&s.atoms[i])
	}
	return out
}

// CollectInt is Collect for integer-valued properties.
func (s *System) CollectInt(fn func(*Atom) int) []int {
	out := make([]int, s.nReal)
	for i := 0; i < s.nReal; i++ {
		out[i] = fn(&s.atoms[i])
	}
	return out
}

// Normalization is the mode set by the last neighbor build.
func (s *System) Normalization() Normalization { return s.norm }

// SetNormalization records the mode of the neighbor table just built.
func (s *System) SetNormalization(n Normalization) { s.norm = n }

// ResetNeighbors clears tables and staged candidates of every atom and
// restores count normalization.
func (s *System) ResetNeighbors() {
	for i := range s.atoms {
		s.atoms[i].Neighbors.Reset()
		s.atoms[i].Staged = s.atoms[i].Staged[:0]
	}
	s.norm = CountNormalized
}

// Distance is the minimum-image displacement from atom i to atom j.
func (s *System) Distance(i, j int) (r3.Vec, float64, error) {
	if s.box == nil {
		return r3.Vec{}, 0, ErrBoxUnset
	}
	if err := s.check(i); err != nil {
		return r3.Vec{}, 0, err
	}
	if err := s.check(j); err != nil {
		return r3.Vec{}, 0, err
	}
	d, r := s.box.Distance(s.atoms[i].Position, s.atoms[j].Position)
	return d, r, nil
}

func (s *System) check(i int) error {
	if i < 0 || i >= len(s.atoms) {
		return errors.Wrapf(ErrIndexOutOfRange, "handle %d of %d", i, len(s.atoms))
	}
	return nil
}

// AddNeighbor commits j as a neighbor of i only.
func (s *System) AddNeighbor(i, j int, offset r3.Vec, dist float64) error {
	if err := s.atoms[i].Neighbors.Add(NewNeighbor(j, offset, dist)); err != nil {
		return errors.Wrapf(err, "atom %d", i)
	}
	return nil
}

// AddPair commits i and j as mutual neighbors. Both tables are checked
// first, so a failure leaves neither side changed.
func (s *System) AddPair(i, j int, offset r3.Vec, dist float64) error {
	if err := s.atoms[j].Neighbors.admits(i); err != nil {
		return errors.Wrapf(err, "atom %d", j)
	}
	if err := s.AddNeighbor(i, j, offset, dist); err != nil {
		return err
	}
	return s.AddNeighbor(j, i, r3.Scale(-1, offset), dist)
}
