// SPDX-License-Identifier: MIT

package cna

import "fmt"

// Structure is a per-atom label.
type Structure int

const (
	Unknown Structure = iota
	FCC
	HCP
	BCC
	ICO
	CubicDiamond
	CubicDiamond1NN
	CubicDiamond2NN
	HexDiamond
	HexDiamond1NN
	HexDiamond2NN
)

var structureNames = [...]string{
	"unknown", "fcc", "hcp", "bcc", "ico",
	"cubic diamond", "cubic diamond 1NN", "cubic diamond 2NN",
	"hex diamond", "hex diamond 1NN", "hex diamond 2NN",
}

func (s Structure) String() string {
	if s >= 0 && int(s) < len(structureNames) {
		return structureNames[s]
	}
	return fmt.Sprintf("Structure(%d)", int(s))
}

// Signature is the CNA triplet of one bond plus the per-atom bond extremes:
// common neighbors, bonds among them, most and fewest bonds on one of them.
type Signature struct {
	Common   int
	Bonds    int
	MaxBonds int
	MinBonds int
}

type template struct {
	label Structure
	want  map[Signature]int
}

var (
	sigFCC  = Signature{4, 2, 1, 1}
	sigHCP  = Signature{4, 2, 2, 0}
	sigICO  = Signature{5, 5, 2, 2}
	sigBCC4 = Signature{4, 4, 2, 2}
	sigBCC6 = Signature{6, 6, 2, 2}

	templates12 = []template{
		{FCC, map[Signature]int{sigFCC: 12}},
		{HCP, map[Signature]int{sigFCC: 6, sigHCP: 6}},
		{ICO, map[Signature]int{sigICO: 12}},
	}
	templates14 = []template{
		{BCC, map[Signature]int{sigBCC4: 6, sigBCC6: 8}},
	}
)

// match returns the first template whose counts equal sigs exactly.
func match(sigs []Signature, ts []template) Structure {
	got := make(map[Signature]int, len(sigs))
	for _, s := range sigs {
		got[s]++
	}
	for _, t := range ts {
		if len(got) != len(t.want) {
			continue
		}
		ok := true
		for s, n := range t.want {
			if got[s] != n {
				ok = false
				break
			}
		}
		if ok {
			return t.label
		}
	}
	return Unknown
}
