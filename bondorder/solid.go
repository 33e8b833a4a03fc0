// SPDX-License-Identifier: MIT

package bondorder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// Criterion selects how connections decide solidity.
type Criterion int

const (
	// CriterionAbsolute requires more than MinConnections solid bonds.
	CriterionAbsolute Criterion = iota
	// CriterionFraction requires the solid-bond fraction to exceed MinConnections.
	CriterionFraction
)

// Compare selects the direction of the bond and mean-connection tests.
type Compare int

const (
	CompareGreater Compare = iota // s_ij > Threshold
	CompareLess                   // s_ij < Threshold
)

// pass applies the comparison to a value and its threshold.
func (c Compare) pass(v, threshold float64) bool {
	if c == CompareLess {
		return v < threshold
	}
	return v > threshold
}

// SolidOptions configures FindSolids.
type SolidOptions struct {
	L              int
	Threshold      float64 // per-bond connection threshold
	AvgThreshold   float64 // mean connection threshold, same direction as Compare
	MinConnections float64 // count, or fraction for CriterionFraction
	Criterion      Criterion
	Compare        Compare
}

// DefaultSolidOptions is ℓ=6, threshold 0.5, mean 0.6, more than 6 bonds.
func DefaultSolidOptions() SolidOptions {
	return SolidOptions{L: 6, Threshold: 0.5, AvgThreshold: 0.6, MinConnections: 6}
}

// Connection is the normalized q_ℓ·q_ℓ product of two atoms.
func Connection(a, b *atoms.Atom, l int) float64 {
	return similarity(a.Qlm[l], b.Qlm[l])
}

// FindSolids labels atoms with enough solid-like connections. It fills
// Connections, FrenkelNumber and AvgConnection, sets Solid, and copies
// Solid into Condition so clustering and averaging follow the labels.
// Returns the number of solid real atoms.
func FindSolids(sys *atoms.System, o SolidOptions) (int, error) {
	list := sys.Atoms()
	if err := requireL(list, o.L); err != nil {
		return 0, err
	}
	count := 0
	for i := range list {
		a := &list[i]
		n := a.Neighbors.Len()
		a.Connections = a.Connections[:0]
		a.FrenkelNumber = 0
		a.AvgConnection = 0
		for _, nb := range a.Neighbors.Entries() {
			s := Connection(a, &list[nb.Index], o.L)
			a.Connections = append(a.Connections, s)
			a.AvgConnection += s
			if o.Compare.pass(s, o.Threshold) {
				a.FrenkelNumber++
			}
		}
		if n == 0 {
			if !a.Ghost {
				return count, errors.Wrapf(ErrNoNeighbors, "atom %d (id %d)", i, a.ID)
			}
			a.Solid, a.Condition = false, false
			continue
		}
		a.AvgConnection /= float64(n)

		enough := float64(a.FrenkelNumber) > o.MinConnections
		if o.Criterion == CriterionFraction {
			enough = float64(a.FrenkelNumber)/float64(n) > o.MinConnections
		}
		a.Solid = enough && o.Compare.pass(a.AvgConnection, o.AvgThreshold)
		a.Condition = a.Solid
		if a.Solid && !a.Ghost {
			count++
		}
	}
	return count, nil
}
