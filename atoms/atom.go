// SPDX-License-Identifier: MIT

package atoms

import "gonum.org/v1/gonum/spatial/r3"

// Unassigned marks an atom that belongs to no cluster.
const Unassigned = -1

// Atom is one particle plus everything derived for it.
//
// Identity fields (ID, Position, Type, Ghost, Condition, Solid, Cutoff) are
// kept on ingestion; everything else is reset.
type Atom struct {
	ID       int
	Position r3.Vec
	Type     int
	Ghost    bool

	// Condition is the eligibility flag shared by bond-order averaging,
	// global bonds and clustering.
	Condition bool
	Solid     bool
	Surface   bool
	InLargest bool

	Cutoff    float64    // neighbor cutoff in effect for this atom
	Neighbors Table      // committed neighbors
	Staged    []Neighbor // sorted candidates from the last staging pass

	Qlm  map[int][]complex128 // ℓ → 2ℓ+1 coefficients, index m+ℓ
	AQlm map[int][]complex128
	Q    map[int]float64
	W    map[int]float64
	WN   map[int]float64 // normalized W
	AQ   map[int]float64
	AW   map[int]float64
	AWN  map[int]float64

	Structure int
	Cluster   int

	Centrosymmetry float64
	Entropy        float64
	AvgEntropy     float64
	Disorder       float64
	AvgDisorder    float64

	Volume    float64
	AvgVolume float64
	Vertices  []r3.Vec

	Connections   []float64 // per-neighbor normalized q·q
	FrenkelNumber int
	AvgConnection float64

	FirstShell []int // diamond 4-neighbor shell
}

// prepare keeps identity fields and resets every derived one.
func (a *Atom) prepare(capacity int) {
	*a = Atom{
		ID:        a.ID,
		Position:  a.Position,
		Type:      a.Type,
		Ghost:     a.Ghost,
		Condition: a.Condition,
		Solid:     a.Solid,
		Cutoff:    a.Cutoff,
		Neighbors: NewTable(capacity),
		Cluster:   Unassigned,
	}
	a.ResetOrder()
}

// ResetOrder clears every bond-order map.
func (a *Atom) ResetOrder() {
	a.Qlm = map[int][]complex128{}
	a.AQlm = map[int][]complex128{}
	a.Q = map[int]float64{}
	a.W = map[int]float64{}
	a.WN = map[int]float64{}
	a.AQ = map[int]float64{}
	a.AW = map[int]float64{}
	a.AWN = map[int]float64{}
}

// clone deep-copies slices and maps so callers cannot alias the arena.
func (a *Atom) clone() Atom {
	c := *a
	c.Neighbors.entries = append([]Neighbor(nil), a.Neighbors.entries...)
	c.Staged = append([]Neighbor(nil), a.Staged...)
	c.Vertices = append([]r3.Vec(nil), a.Vertices...)
	c.Connections = append([]float64(nil), a.Connections...)
	c.FirstShell = append([]int(nil), a.FirstShell...)
	c.Qlm = cloneComplex(a.Qlm)
	c.AQlm = cloneComplex(a.AQlm)
	c.Q = cloneReal(a.Q)
	c.W = cloneReal(a.W)
	c.WN = cloneReal(a.WN)
	c.AQ = cloneReal(a.AQ)
	c.AW = cloneReal(a.AW)
	c.AWN = cloneReal(a.AWN)
	return c
}

func cloneComplex(m map[int][]complex128) map[int][]complex128 {
	out := make(map[int][]complex128, len(m))
	for k, v := range m {
		out[k] = append([]complex128(nil), v...)
	}
	return out
}

func cloneReal(m map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
