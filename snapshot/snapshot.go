// SPDX-License-Identifier: MIT

// Package snapshot reads and writes single-frame YAML structure files:
//
//	box:
//	  - [4, 0, 0]
//	  - [0, 4, 0]
//	  - [0, 0, 4]
//	atoms:
//	  - {id: 1, type: 1, pos: [0, 0, 0]}
//	  - {id: 2, type: 1, pos: [2, 2, 0], ghost: true}
//
// It is the ingestion boundary of the command line tool, not a trajectory
// parser.
package snapshot

import (
	"io"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/box"
)

// ErrDecode wraps YAML syntax and shape errors.
var ErrDecode = errors.New("snapshot: decode failed")

// Snapshot is the on-disk document.
type Snapshot struct {
	Box       [3][3]float64 `yaml:"box"`
	Triclinic bool          `yaml:"triclinic,omitempty"`
	Atoms     []Atom        `yaml:"atoms"`
}

// Atom is one document entry.
type Atom struct {
	ID    int        `yaml:"id"`
	Type  int        `yaml:"type"`
	Pos   [3]float64 `yaml:"pos,flow"`
	Ghost bool       `yaml:"ghost,omitempty"`
}

// Read decodes a snapshot from r.
func Read(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "snapshot: decode"), ErrDecode)
	}
	return &s, nil
}

// Write encodes s to w.
func Write(w io.Writer, s *Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "snapshot: encode")
	}
	return errors.Wrap(enc.Close(), "snapshot: flush")
}

// ToSystem builds the box and loads the atoms into a fresh arena.
func (s *Snapshot) ToSystem(opts ...atoms.Option) (*atoms.System, error) {
	var bopts []box.Option
	if s.Triclinic {
		bopts = append(bopts, box.WithTriclinic())
	}
	b, err := box.New(s.Box, bopts...)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot: box")
	}
	list := make([]atoms.Atom, len(s.Atoms))
	for i, a := range s.Atoms {
		list[i] = atoms.Atom{
			ID:       a.ID,
			Type:     a.Type,
			Position: r3.Vec{X: a.Pos[0], Y: a.Pos[1], Z: a.Pos[2]},
			Ghost:    a.Ghost,
		}
	}
	sys := atoms.NewSystem(append([]atoms.Option{atoms.WithBox(b)}, opts...)...)
	sys.Set(list)
	return sys, nil
}

// FromSystem captures the box and every atom of sys, ghosts included.
func FromSystem(sys *atoms.System) (*Snapshot, error) {
	b, err := sys.Box()
	if err != nil {
		return nil, err
	}
	s := &Snapshot{Triclinic: b.Triclinic(), Atoms: make([]Atom, sys.Len())}
	for i, v := range b.Vectors() {
		s.Box[i] = [3]float64{v.X, v.Y, v.Z}
	}
	for i := range s.Atoms {
		a := sys.At(i)
		s.Atoms[i] = Atom{ID: a.ID, Type: a.Type, Pos: [3]float64{a.Position.X, a.Position.Y, a.Position.Z}, Ghost: a.Ghost}
	}
	return s, nil
}
