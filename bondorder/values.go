// SPDX-License-Identifier: MIT

package bondorder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// QValues returns q_ℓ (or the averaged q̄_ℓ) of every real atom.
func QValues(sys *atoms.System, l int, averaged bool) ([]float64, error) {
	pick := func(a *atoms.Atom) map[int]float64 { return a.Q }
	if averaged {
		pick = func(a *atoms.Atom) map[int]float64 { return a.AQ }
	}
	return values(sys, l, pick)
}

// WValues returns w_ℓ, or ŵ_ℓ when normalized, optionally averaged.
func WValues(sys *atoms.System, l int, averaged, normalized bool) ([]float64, error) {
	pick := func(a *atoms.Atom) map[int]float64 {
		switch {
		case averaged && normalized:
			return a.AWN
		case averaged:
			return a.AW
		case normalized:
			return a.WN
		}
		return a.W
	}
	return values(sys, l, pick)
}

func values(sys *atoms.System, l int, pick func(*atoms.Atom) map[int]float64) ([]float64, error) {
	out := make([]float64, sys.RealCount())
	for i := range out {
		v, ok := pick(sys.At(i))[l]
		if !ok {
			return nil, errors.Wrapf(ErrNotComputed, "l=%d atom %d", l, i)
		}
		out[i] = v
	}
	return out, nil
}
